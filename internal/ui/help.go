package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mealdeck/internal/render"
)

// helpContext selects which footer hints apply to the current screen state.
type helpContext int

const (
	helpBrowse helpContext = iota
	helpFacet
	helpSearch
	helpContact
	helpDetail
	helpSidebar
	helpInsert
	helpFormInsert
)

// RenderHelp renders context-sensitive help footer.
func RenderHelp(ctx helpContext, width int) string {
	switch ctx {
	case helpFacet:
		return renderHelpLine([]string{
			helpKey("hjkl", "move"),
			helpKey("enter", "open"),
			helpKey("tab", "switch pane"),
			helpKey("/", "filter"),
			helpKey("1-6", "sections"),
			helpKey("m", "menu"),
			helpKey("?", "help"),
		}, width)
	case helpSearch:
		return renderHelpLine([]string{
			helpKey("n", "search name"),
			helpKey("f", "first letter"),
			helpKey("hjkl", "move"),
			helpKey("enter", "open"),
			helpKey("m", "menu"),
			helpKey("?", "help"),
		}, width)
	case helpContact:
		return renderHelpLine([]string{
			helpKey("i", "edit form"),
			helpKey("1-6", "sections"),
			helpKey("m", "menu"),
			helpKey("q", "quit"),
		}, width)
	case helpDetail:
		return renderHelpLine([]string{
			helpKey("j/k", "scroll"),
			helpKey("b/esc", "close"),
		}, width)
	case helpSidebar:
		return renderHelpLine([]string{
			helpKey("j/k", "navigate"),
			helpKey("enter", "go"),
			helpKey("m/esc", "close menu"),
		}, width)
	case helpInsert:
		return renderHelpLine([]string{
			helpKey("enter", "confirm"),
			helpKey("esc", "cancel"),
		}, width)
	case helpFormInsert:
		return renderHelpLine([]string{
			helpKey("tab", "next field"),
			helpKey("shift+tab", "prev field"),
			helpKey("ctrl+s", "submit"),
			helpKey("esc", "done"),
		}, width)
	default:
		return renderHelpLine([]string{
			helpKey("hjkl", "move"),
			helpKey("enter", "open"),
			helpKey("1-6", "sections"),
			helpKey("m", "menu"),
			helpKey("?", "help"),
			helpKey("q", "quit"),
		}, width)
	}
}

func helpKey(key, desc string) string {
	return render.HelpKeyStyle.Render(key) + " " + render.HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return render.FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	sections := []string{
		titleSection("Navigation"),
		helpSection([]helpItem{
			{"1 - 6", "Home, Search, Category, Area, Ingredient, Contact"},
			{"m", "Toggle the menu"},
			{"h j k l / arrows", "Move between cards"},
			{"enter", "Open a meal or list meals for a value"},
			{"b / esc", "Close detail / back to the list pane"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}),
		titleSection("Browse by Category, Area or Ingredient"),
		helpSection([]helpItem{
			{"tab", "Switch between the list and its meals"},
			{"/", "Fuzzy filter the list"},
		}),
		titleSection("Search"),
		helpSection([]helpItem{
			{"n", "Search meals by name"},
			{"f", "List meals by first letter"},
		}),
		titleSection("Contact form"),
		helpSection([]helpItem{
			{"i / enter", "Edit the form"},
			{"tab / shift+tab", "Next / previous field"},
			{"ctrl+s", "Submit once every field is valid"},
			{"esc", "Stop editing"},
		}),
	}

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		render.TitleStyle.Width(width).Render("Help"),
		helpText,
		render.FooterStyle.Width(width).Render(render.HelpKeyStyle.Render("esc")+" "+render.HelpDescStyle.Render("close help")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func titleSection(title string) string {
	return render.LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+render.HelpKeyStyle.Render(item.key)+" - "+render.HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}
