package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mealdeck/internal/nav"
	"mealdeck/internal/render"
	"mealdeck/internal/util"
)

const sidebarWidth = 22

func (m Model) handleSidebarNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Sidebar), key.Matches(msg, m.keys.Back):
		m.nav.CloseSidebar()
	case key.Matches(msg, m.keys.Down):
		if m.sidebarCursor < len(nav.Sections)-1 {
			m.sidebarCursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.sidebarCursor > 0 {
			m.sidebarCursor--
		}
	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Right):
		cmd := m.navigate(nav.Sections[m.sidebarCursor])
		return m, cmd
	case key.Matches(msg, m.keys.Section):
		cmd := m.navigate(sectionForKey(msg.String()))
		return m, cmd
	}
	return m, nil
}

func (m Model) sidebarView(height int) string {
	var lines []string
	for i, section := range nav.Sections {
		label := fmt.Sprintf("%d  %s", i+1, util.Title(section.String()))
		switch {
		case i == m.sidebarCursor:
			lines = append(lines, render.SelectedRowStyle.Width(sidebarWidth-6).Render(label))
		case section == m.nav.Active():
			lines = append(lines, render.BreadcrumbActiveStyle.Render(label))
		default:
			lines = append(lines, render.NormalRowStyle.Render(label))
		}
	}
	return render.SidebarStyle.Width(sidebarWidth).Height(height).Render(strings.Join(lines, "\n"))
}

// sectionForKey maps the digit keys 1-6 to sections.
func sectionForKey(k string) nav.Section {
	if len(k) == 1 && k[0] >= '1' && int(k[0]-'1') < len(nav.Sections) {
		return nav.Sections[k[0]-'1']
	}
	return nav.SectionHome
}
