package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"mealdeck/internal/catalog"
	"mealdeck/internal/model"
	"mealdeck/internal/nav"
	"mealdeck/internal/render"
	"mealdeck/internal/util"
)

// facet describes a browse-by section: a list of values and the meals matching the chosen one.
type facet struct {
	list       model.RegionKey
	meals      model.RegionKey
	listKind   catalog.Kind
	filterKind catalog.Kind
	noun       string
}

var facets = map[nav.Section]facet{
	nav.SectionCategory: {
		list:       model.RegionCategories,
		meals:      model.RegionCategoryMeals,
		listKind:   catalog.KindCategories,
		filterKind: catalog.KindFilterCategory,
		noun:       "category",
	},
	nav.SectionArea: {
		list:       model.RegionAreas,
		meals:      model.RegionAreaMeals,
		listKind:   catalog.KindAreas,
		filterKind: catalog.KindFilterArea,
		noun:       "area",
	},
	nav.SectionIngredient: {
		list:       model.RegionIngredients,
		meals:      model.RegionIngredientMeals,
		listKind:   catalog.KindIngredients,
		filterKind: catalog.KindFilterIngredient,
		noun:       "ingredient",
	},
}

const (
	paneList = iota
	paneMeals
)

// focusedRegion returns the grid region that receives cursor keys in the active section.
func (m Model) focusedRegion() model.RegionKey {
	regions := m.nav.Active().Regions()
	if len(regions) == 0 {
		return ""
	}
	idx := m.focus[m.nav.Active()]
	if idx >= len(regions) {
		idx = 0
	}
	return regions[idx]
}

// visibleGrid returns the painted grid for a region with the fuzzy filter applied.
func (m Model) visibleGrid(key model.RegionKey) render.Grid {
	slot, ok := m.grids[key]
	if !ok {
		return render.Grid{}
	}
	grid := slot.Value()
	query := strings.TrimSpace(m.filters[key])
	if query == "" {
		return grid
	}
	return filterGrid(grid, query)
}

// filterGrid keeps the cards whose titles fuzzy-match query, best matches first.
func filterGrid(grid render.Grid, query string) render.Grid {
	labels := make([]string, len(grid.Cards))
	for i, card := range grid.Cards {
		labels[i] = card.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	sort.Stable(ranks)

	filtered := render.Grid{Placeholder: render.NoResultsText}
	for _, rank := range ranks {
		filtered.Cards = append(filtered.Cards, grid.Cards[rank.OriginalIndex])
	}
	return filtered
}

func (m *Model) moveCursor(delta int) {
	key := m.focusedRegion()
	if key == "" {
		return
	}
	count := len(m.visibleGrid(key).Cards)
	if count == 0 {
		return
	}
	next := m.cursors[key] + delta
	if next < 0 {
		next = 0
	}
	if next >= count {
		next = count - 1
	}
	m.cursors[key] = next
}

func (m *Model) moveRow(direction int) {
	m.moveCursor(direction * render.Columns(m.contentWidth()))
}

func (m *Model) switchPane() {
	section := m.nav.Active()
	if _, ok := facets[section]; !ok {
		return
	}
	if m.focus[section] == paneList {
		m.focus[section] = paneMeals
	} else {
		m.focus[section] = paneList
	}
}

// activate triggers the action carried by the card under the cursor.
func (m *Model) activate() tea.Cmd {
	key := m.focusedRegion()
	if key == "" {
		return nil
	}
	grid := m.visibleGrid(key)
	idx := m.cursors[key]
	if idx < 0 || idx >= len(grid.Cards) {
		return nil
	}

	action := grid.Cards[idx].Action
	switch action.Kind {
	case render.ActionOpenDetail:
		return m.load(model.RegionDetail, catalog.Query{Kind: catalog.KindLookup, Param: action.Key})
	case render.ActionFilterCategory, render.ActionFilterArea, render.ActionFilterIngredient:
		section := m.nav.Active()
		f, ok := facets[section]
		if !ok {
			return nil
		}
		m.selected[section] = action.Key
		m.focus[section] = paneMeals
		m.cursors[f.meals] = 0
		return m.load(f.meals, catalog.Query{Kind: f.filterKind, Param: action.Key})
	}
	return nil
}

// paneView renders one grid region with a title line.
func (m Model) paneView(title string, key model.RegionKey, width, height int, focused bool) string {
	slot := m.grids[key]
	grid := m.visibleGrid(key)

	heading := render.LabelStyle.Render(title)
	if slot.Loaded() {
		heading += " " + render.CardSubtitleStyle.Render(util.FormatCount(len(grid.Cards), "result"))
	}
	if q := m.filters[key]; q != "" {
		heading += " " + render.BreadcrumbStyle.Render(fmt.Sprintf("filter: %s", q))
	}
	if slot.Pending() {
		heading += " " + m.spinner.View()
	}

	bodyHeight := height - 2
	var body string
	switch {
	case slot.Loaded():
		body = grid.View(width, bodyHeight, m.cursors[key], focused)
	case slot.Pending():
		body = render.EmptyStateStyle.Render(m.spinner.View() + " Loading...")
	default:
		body = render.EmptyStateStyle.Render("Nothing loaded yet")
	}
	return heading + "\n\n" + body
}

func (m Model) homeView(width, height int) string {
	return m.paneView("Random meals", model.RegionMeals, width, height, true)
}

func (m Model) facetView(width, height int) string {
	section := m.nav.Active()
	f := facets[section]
	listHeight := height / 2
	mealsHeight := height - listHeight

	list := m.paneView(util.Title(f.noun)+" list", f.list, width, listHeight, m.focus[section] == paneList)

	var meals string
	if chosen := m.selected[section]; chosen != "" {
		meals = m.paneView("Meals in "+render.Line(chosen), f.meals, width, mealsHeight, m.focus[section] == paneMeals)
	} else {
		meals = render.EmptyStateStyle.Render(fmt.Sprintf("Pick a %s and press enter to see its meals", f.noun))
	}
	return list + "\n" + meals
}
