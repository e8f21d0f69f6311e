package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	h.processCmd(h.update(msg))
}

// Hold routes a message but returns its command instead of running it, so tests
// can deliver responses in any order.
func (h *Harness) Hold(msg tea.Msg) tea.Cmd {
	return h.update(msg)
}

// Run executes a command and feeds the resulting messages back into the model.
func (h *Harness) Run(cmd tea.Cmd) {
	h.processCmd(cmd)
}

// Press sends each key in order.
func (h *Harness) Press(keys ...string) {
	for _, k := range keys {
		h.Send(keyPress(k))
	}
}

// Type sends text one rune at a time.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *Harness) update(msg tea.Msg) tea.Cmd {
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(Model); ok {
		h.model = updated
	}
	return cmd
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, c := range msg {
			h.processCmd(c)
		}
	case spinner.TickMsg:
		// animation only
	default:
		h.Send(msg)
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() Model {
	return h.model
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}
