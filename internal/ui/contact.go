package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mealdeck/internal/form"
	"mealdeck/internal/render"
	"mealdeck/internal/util"
)

const contactAck = "Form submitted successfully!"

// ContactModel is the contact section: one text input per form field backed by a form.Form.
type ContactModel struct {
	form         *form.Form
	inputs       []textinput.Model
	focusedField int
	keys         FormKeyMap
	error        string
}

// NewContactModel creates an empty contact form.
func NewContactModel() ContactModel {
	inputs := make([]textinput.Model, len(form.Fields))

	inputs[form.FieldName] = newInput("Your name", 64)
	inputs[form.FieldEmail] = newInput("you@example.com", 128)
	inputs[form.FieldPhone] = newInput("10-15 digits", 20)
	inputs[form.FieldAge] = newInput("18 or older", 8)
	inputs[form.FieldPassword] = newInput("at least 8 characters", 64)
	inputs[form.FieldPassword].EchoMode = textinput.EchoPassword
	inputs[form.FieldPassword].EchoCharacter = '•'

	return ContactModel{
		form:   form.New(),
		inputs: inputs,
		keys:   DefaultFormKeyMap(),
	}
}

// newInput returns a text input with a steady cursor.
func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Cursor.SetMode(cursor.CursorStatic)
	return in
}

// Focus puts the cursor in the current field.
func (m *ContactModel) Focus() tea.Cmd {
	return m.inputs[m.focusedField].Focus()
}

// Blur removes the cursor from every field.
func (m *ContactModel) Blur() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// Form exposes the validation state.
func (m ContactModel) Form() *form.Form {
	return m.form
}

// Update handles keys while the form is in insert mode. Esc is handled by the caller.
func (m ContactModel) Update(msg tea.Msg) (ContactModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Submit):
		return m.submit()
	case key.Matches(keyMsg, m.keys.NextField):
		cmd := m.moveFocus(1)
		return m, cmd
	case key.Matches(keyMsg, m.keys.PrevField):
		cmd := m.moveFocus(-1)
		return m, cmd
	case key.Matches(keyMsg, m.keys.Confirm):
		if m.focusedField == len(m.inputs)-1 {
			return m.submit()
		}
		cmd := m.moveFocus(1)
		return m, cmd
	}

	field := form.Fields[m.focusedField]
	before := m.inputs[m.focusedField].Value()
	var cmd tea.Cmd
	m.inputs[m.focusedField], cmd = m.inputs[m.focusedField].Update(keyMsg)
	if value := m.inputs[m.focusedField].Value(); value != before {
		m.form.Input(field, value)
		m.error = ""
	}
	return m, cmd
}

func (m ContactModel) submit() (ContactModel, tea.Cmd) {
	if !m.form.Submit() {
		m.error = "Complete every field before submitting"
		return m, nil
	}
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.error = ""
	return m, contactSubmittedCmd
}

func (m *ContactModel) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focusedField].Blur()
	m.focusedField = (m.focusedField + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focusedField].Focus()
}

// View renders the form with a mark next to every field the user has touched.
func (m ContactModel) View(width, height int) string {
	var b strings.Builder
	b.WriteString(render.LabelStyle.Render("Contact us"))
	b.WriteString("\n\n")

	for i, field := range form.Fields {
		label := util.Title(field.String())
		if i == m.focusedField {
			label = "› " + label
		} else {
			label = "  " + label
		}
		b.WriteString(render.LabelStyle.Render(label))
		b.WriteString("\n  ")
		b.WriteString(render.InputStyle.Render(m.inputs[i].View()))
		switch m.form.Mark(field) {
		case form.MarkValid:
			b.WriteString(" " + render.ValidStyle.Render("✓"))
		case form.MarkInvalid:
			b.WriteString(" " + render.InvalidStyle.Render("✗ "+field.Hint()))
		}
		b.WriteString("\n\n")
	}

	if m.form.SubmitEnabled() {
		b.WriteString(render.ActiveCardStyle.Render("Submit (ctrl+s)"))
	} else {
		b.WriteString(render.CardStyle.Foreground(render.ColorMuted).Render("Submit (complete all fields)"))
	}
	if m.error != "" {
		b.WriteString("\n" + render.ErrorStyle.Render(m.error))
	}

	return lipgloss.NewStyle().Width(width).MaxHeight(height).Padding(0, 2).Render(b.String())
}
