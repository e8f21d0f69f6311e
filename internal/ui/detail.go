package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mealdeck/internal/render"
)

// refreshDetail re-renders the painted meal into the detail viewport.
func (m *Model) refreshDetail() {
	if !m.detail.Loaded() {
		return
	}
	m.viewport.Width = m.width
	m.viewport.Height = m.bodyHeight()
	m.viewport.SetContent(render.Detail(m.detail.Value(), m.width, m.thumb))
}

func (m Model) handleDetailNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Left) {
		m.nav.CloseDetail()
		m.thumb = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
