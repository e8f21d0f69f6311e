package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"mealdeck/internal/catalog"
	"mealdeck/internal/model"
	"mealdeck/internal/render"
)

// searchInputs holds the two search boxes of the search section.
type searchInputs struct {
	name   textinput.Model
	letter textinput.Model
}

func newSearchInputs() searchInputs {
	name := newInput("Meal name, e.g. Arrabiata", 64)
	name.Width = 30

	letter := newInput("a", 1)
	letter.Width = 3

	return searchInputs{name: name, letter: letter}
}

// query builds the catalog query for the box being edited.
func (s searchInputs) query(target inputTarget) catalog.Query {
	if target == targetSearchLetter {
		return catalog.Query{Kind: catalog.KindSearchLetter, Param: s.letter.Value()}
	}
	return catalog.Query{Kind: catalog.KindSearchName, Param: s.name.Value()}
}

func (m Model) searchView(width, height int) string {
	boxes := lipgloss.JoinHorizontal(lipgloss.Center,
		render.LabelStyle.Render("Name (n) "),
		render.InputStyle.Render(m.search.name.View()),
		"   ",
		render.LabelStyle.Render("First letter (f) "),
		render.InputStyle.Render(m.search.letter.View()),
	)

	slot := m.grids[model.RegionSearchResults]
	if !slot.Loaded() && !slot.Pending() {
		hint := render.EmptyStateStyle.Render("Press n to search by name or f to list meals by first letter")
		return boxes + "\n\n" + hint
	}
	return boxes + "\n\n" + m.paneView("Search results", model.RegionSearchResults, width, height-2, true)
}
