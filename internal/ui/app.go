package ui

import (
	"context"
	"errors"
	"image"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"mealdeck/internal/catalog"
	"mealdeck/internal/logging"
	"mealdeck/internal/model"
	"mealdeck/internal/nav"
	"mealdeck/internal/region"
	"mealdeck/internal/render"
	"mealdeck/internal/util"
)

// Catalog is the read-only recipe source the UI pulls from.
type Catalog interface {
	Query(ctx context.Context, q catalog.Query) (catalog.Result, error)
	Image(ctx context.Context, rawURL string) (image.Image, error)
}

// Options configures the root model.
type Options struct {
	Thumbnails bool
	Logger     *log.Logger
}

type mode int

const (
	modeNav mode = iota
	modeInsert
)

// inputTarget is the text input receiving keys in insert mode.
type inputTarget int

const (
	targetNone inputTarget = iota
	targetSearchName
	targetSearchLetter
	targetFilter
	targetContact
)

// chrome is the header and footer height, borders included.
const chrome = 4

// Model is the root Bubble Tea model.
type Model struct {
	catalog    Catalog
	logger     *log.Logger
	thumbnails bool

	nav    nav.State
	mode   mode
	target inputTarget

	width  int
	height int

	error       string
	info        string
	showingHelp bool

	// Display regions, each with a single writer.
	grids  map[model.RegionKey]*region.Slot[render.Grid]
	detail *region.Slot[model.Meal]

	cursors  map[model.RegionKey]int
	filters  map[model.RegionKey]string
	focus    map[nav.Section]int
	selected map[nav.Section]string

	search        searchInputs
	filterInput   textinput.Model
	contact       ContactModel
	viewport      viewport.Model
	thumb         string
	sidebarCursor int
	spinner       spinner.Model
	spinning      bool

	keys KeyMap
}

// New creates a new root model.
func New(c Catalog, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	grids := make(map[model.RegionKey]*region.Slot[render.Grid])
	for _, section := range nav.Sections {
		for _, key := range section.Regions() {
			grids[key] = &region.Slot[render.Grid]{}
		}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(render.ColorAccent)

	filter := newInput("filter...", 32)
	filter.Prompt = "/ "

	return Model{
		catalog:     c,
		logger:      logger,
		thumbnails:  opts.Thumbnails,
		nav:         nav.New(),
		mode:        modeNav,
		grids:       grids,
		detail:      &region.Slot[model.Meal]{},
		cursors:     make(map[model.RegionKey]int),
		filters:     make(map[model.RegionKey]string),
		focus:       make(map[nav.Section]int),
		selected:    make(map[nav.Section]string),
		search:      newSearchInputs(),
		filterInput: filter,
		contact:     NewContactModel(),
		viewport:    viewport.New(0, 0),
		spinner:     sp,
		spinning:    true,
		keys:        DefaultKeyMap(),
	}
}

// Init loads the landing sample and the three facet lists in parallel.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.load(model.RegionMeals, catalog.Query{Kind: catalog.KindSample}),
		m.load(model.RegionCategories, catalog.Query{Kind: catalog.KindCategories}),
		m.load(model.RegionAreas, catalog.Query{Kind: catalog.KindAreas}),
		m.load(model.RegionIngredients, catalog.Query{Kind: catalog.KindIngredients}),
		m.spinner.Tick,
	)
}

// load issues a new ticket for a region and returns the command fetching its data.
func (m *Model) load(key model.RegionKey, q catalog.Query) tea.Cmd {
	var ticket uint64
	if key == model.RegionDetail {
		ticket = m.detail.Request()
	} else {
		ticket = m.grids[key].Request()
	}
	m.logger.WithFields(log.Fields{
		"region": string(key),
		"ticket": ticket,
		"kind":   q.Kind.String(),
	}).Debug("region request issued")

	cmd := fetchCmd(m.catalog, key, ticket, q)
	if m.spinning {
		return cmd
	}
	m.spinning = true
	return tea.Batch(cmd, m.spinner.Tick)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refreshDetail()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == modeInsert {
			return m.handleInsertMode(msg)
		}

		if key.Matches(msg, m.keys.Help) {
			m.showingHelp = !m.showingHelp
			return m, nil
		}
		if m.showingHelp {
			if msg.String() == "esc" {
				m.showingHelp = false
			}
			return m, nil
		}
		return m.handleNavMode(msg)

	case spinner.TickMsg:
		if !m.anyPending() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case model.MealsLoadedMsg:
		slot, ok := m.grids[msg.Region]
		if !ok {
			return m, nil
		}
		if !slot.Paint(msg.Ticket, render.Meals(msg.Meals)) {
			m.logStale(msg.Region, msg.Ticket)
			return m, nil
		}
		m.cursors[msg.Region] = 0
		return m, nil

	case model.CategoriesLoadedMsg:
		m.paintFacet(model.RegionCategories, msg.Ticket, render.Categories(msg.Categories))
		return m, nil

	case model.AreasLoadedMsg:
		m.paintFacet(model.RegionAreas, msg.Ticket, render.Areas(msg.Areas))
		return m, nil

	case model.IngredientsLoadedMsg:
		m.paintFacet(model.RegionIngredients, msg.Ticket, render.Ingredients(msg.Ingredients))
		return m, nil

	case model.MealDetailLoadedMsg:
		if !m.detail.Paint(msg.Ticket, msg.Meal) {
			m.logStale(model.RegionDetail, msg.Ticket)
			return m, nil
		}
		m.nav.OpenDetail()
		m.thumb = ""
		m.viewport.GotoTop()
		m.refreshDetail()
		if m.thumbnails && render.SafeURL(msg.Meal.Thumb) != "" {
			return m, thumbnailCmd(m.catalog, msg.Meal.ID, msg.Meal.Thumb)
		}
		return m, nil

	case model.ThumbnailLoadedMsg:
		if !m.nav.DetailOpen() || m.detail.Value().ID != msg.MealID {
			return m, nil
		}
		m.thumb = renderThumbnail(msg.Image, thumbWidth, thumbHeight)
		m.refreshDetail()
		return m, nil

	case thumbnailFailedMsg:
		m.logger.WithError(msg.err).WithField("meal_id", msg.mealID).Debug("thumbnail unavailable")
		return m, nil

	case model.FetchFailedMsg:
		m.handleFetchFailed(msg)
		return m, nil

	case contactSubmittedMsg:
		m.info = contactAck
		m.error = ""
		m.logger.Info("contact form submitted")
		return m, nil
	}

	return m, nil
}

func (m *Model) paintFacet(key model.RegionKey, ticket uint64, grid render.Grid) {
	if !m.grids[key].Paint(ticket, grid) {
		m.logStale(key, ticket)
		return
	}
	m.cursors[key] = 0
}

func (m *Model) handleFetchFailed(msg model.FetchFailedMsg) {
	entry := m.logger.WithError(msg.Err).WithFields(log.Fields{
		"region": string(msg.Region),
		"ticket": msg.Ticket,
	})

	var stale bool
	if msg.Region == model.RegionDetail {
		stale = m.detail.Stale(msg.Ticket)
		m.detail.Fail(msg.Ticket)
	} else if slot, ok := m.grids[msg.Region]; ok {
		stale = slot.Stale(msg.Ticket)
		slot.Fail(msg.Ticket)
	}
	if stale {
		entry.Debug("discarded stale failure")
		return
	}

	entry.Warn("region left unchanged after failed request")
	switch {
	case errors.Is(msg.Err, catalog.ErrInvalidQuery):
		if msg.Region == model.RegionSearchResults {
			m.error = "Enter a meal name, or a single letter for the letter search"
		} else {
			m.error = msg.Err.Error()
		}
	case errors.Is(msg.Err, catalog.ErrNotFound):
		m.error = "That meal is no longer in the catalog"
	default:
		m.error = "Could not reach the recipe catalog"
	}
}

func (m Model) logStale(key model.RegionKey, ticket uint64) {
	m.logger.WithFields(log.Fields{
		"region": string(key),
		"ticket": ticket,
	}).Debug("discarded stale response")
}

// anyPending reports whether a visible region is still waiting for data.
func (m Model) anyPending() bool {
	for _, key := range m.nav.VisibleRegions() {
		if slot, ok := m.grids[key]; ok && slot.Pending() {
			return true
		}
	}
	return m.detail.Pending()
}

// navigate applies a section transition and issues the loads it needs.
func (m *Model) navigate(target nav.Section) tea.Cmd {
	refresh := m.nav.Navigate(target)
	m.error = ""
	m.info = ""

	var cmds []tea.Cmd
	if refresh {
		cmds = append(cmds, m.load(model.RegionMeals, catalog.Query{Kind: catalog.KindSample}))
	}
	if f, ok := facets[target]; ok {
		if slot := m.grids[f.list]; !slot.Loaded() && !slot.Pending() {
			cmds = append(cmds, m.load(f.list, catalog.Query{Kind: f.listKind}))
		}
	}
	if target == nav.SectionContact {
		cmds = append(cmds, m.startInsert(targetContact))
	}
	return tea.Batch(cmds...)
}

// handleNavMode handles navigation mode input.
func (m Model) handleNavMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Sidebar) {
		if !m.nav.SidebarOpen() {
			m.sidebarCursor = indexOfSection(m.nav.Active())
		}
		m.nav.ToggleSidebar()
		return m, nil
	}
	if m.nav.SidebarOpen() {
		return m.handleSidebarNav(msg)
	}
	if m.nav.DetailOpen() {
		return m.handleDetailNav(msg)
	}
	if key.Matches(msg, m.keys.Section) {
		cmd := m.navigate(sectionForKey(msg.String()))
		return m, cmd
	}

	section := m.nav.Active()
	switch section {
	case nav.SectionContact:
		if key.Matches(msg, m.keys.EditForm) {
			cmd := m.startInsert(targetContact)
			return m, cmd
		}
		return m, nil
	case nav.SectionSearch:
		switch {
		case key.Matches(msg, m.keys.SearchName):
			cmd := m.startInsert(targetSearchName)
			return m, cmd
		case key.Matches(msg, m.keys.SearchLetter):
			cmd := m.startInsert(targetSearchLetter)
			return m, cmd
		}
	case nav.SectionCategory, nav.SectionArea, nav.SectionIngredient:
		switch {
		case key.Matches(msg, m.keys.SwitchPane):
			m.switchPane()
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			if m.focus[section] == paneList {
				cmd := m.startInsert(targetFilter)
				return m, cmd
			}
			return m, nil
		case key.Matches(msg, m.keys.Back):
			if m.focus[section] == paneMeals {
				m.focus[section] = paneList
			} else {
				m.filters[facets[section].list] = ""
			}
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveRow(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveRow(1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Select):
		cmd := m.activate()
		return m, cmd
	case key.Matches(msg, m.keys.Back):
		m.error = ""
		m.info = ""
	}
	return m, nil
}

// startInsert moves keyboard focus into a text input.
func (m *Model) startInsert(target inputTarget) tea.Cmd {
	m.mode = modeInsert
	m.target = target
	switch target {
	case targetSearchName:
		return m.search.name.Focus()
	case targetSearchLetter:
		return m.search.letter.Focus()
	case targetFilter:
		m.filterInput.SetValue(m.filters[m.focusedRegion()])
		m.filterInput.CursorEnd()
		return m.filterInput.Focus()
	case targetContact:
		return m.contact.Focus()
	}
	return nil
}

func (m *Model) stopInsert() {
	m.mode = modeNav
	m.target = targetNone
	m.search.name.Blur()
	m.search.letter.Blur()
	m.filterInput.Blur()
	m.contact.Blur()
}

// handleInsertMode routes keys to the focused text input.
func (m Model) handleInsertMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.target {
	case targetContact:
		if msg.String() == "esc" {
			m.stopInsert()
			return m, nil
		}
		m.contact, cmd = m.contact.Update(msg)
		return m, cmd

	case targetFilter:
		list := m.focusedRegion()
		switch msg.String() {
		case "esc":
			m.filters[list] = ""
			m.cursors[list] = 0
			m.stopInsert()
			return m, nil
		case "enter":
			m.stopInsert()
			return m, nil
		}
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.filters[list] = m.filterInput.Value()
		m.cursors[list] = 0
		return m, cmd

	case targetSearchName, targetSearchLetter:
		switch msg.String() {
		case "esc":
			m.stopInsert()
			return m, nil
		case "enter":
			q := m.search.query(m.target)
			m.stopInsert()
			m.error = ""
			m.cursors[model.RegionSearchResults] = 0
			cmd := m.load(model.RegionSearchResults, q)
			return m, cmd
		}
		if m.target == targetSearchName {
			m.search.name, cmd = m.search.name.Update(msg)
		} else {
			m.search.letter, cmd = m.search.letter.Update(msg)
		}
		return m, cmd
	}

	m.stopInsert()
	return m, nil
}

func (m Model) contentWidth() int {
	if m.nav.SidebarOpen() {
		return m.width - sidebarWidth - 3
	}
	return m.width
}

func (m Model) bodyHeight() int {
	h := m.height - chrome
	if h < 1 {
		h = 1
	}
	return h
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	header := renderHeader(m.breadcrumb(), m.headerStatus(), m.width)
	footer := RenderHelp(m.helpContext(), m.width)

	var banners []string
	if m.error != "" {
		banners = append(banners, render.ErrorStyle.Width(m.width).Render("Error: "+m.error))
	}
	if m.info != "" {
		banners = append(banners, render.SuccessStyle.Width(m.width).Render(m.info))
	}
	if m.mode == modeInsert && m.target == targetFilter {
		banners = append(banners, render.StatusBarStyle.Render(m.filterInput.View()))
	}

	contentHeight := m.bodyHeight() - len(banners)
	if contentHeight < 1 {
		contentHeight = 1
	}
	width := m.contentWidth()

	var content string
	switch {
	case m.nav.DetailOpen():
		content = m.viewport.View()
	case m.nav.Active() == nav.SectionHome:
		content = m.homeView(width, contentHeight)
	case m.nav.Active() == nav.SectionSearch:
		content = m.searchView(width, contentHeight)
	case m.nav.Active() == nav.SectionContact:
		content = m.contact.View(width, contentHeight)
	default:
		content = m.facetView(width, contentHeight)
	}

	content = lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)
	if m.nav.SidebarOpen() {
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(contentHeight), content)
	}

	parts := []string{header}
	parts = append(parts, banners...)
	parts = append(parts, content, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) breadcrumb() []string {
	section := m.nav.Active()
	parts := []string{util.Title(section.String())}
	if _, ok := facets[section]; ok && m.selected[section] != "" {
		parts = append(parts, render.Line(m.selected[section]))
	}
	if m.nav.DetailOpen() {
		parts = append(parts, render.Line(m.detail.Value().Name))
	}
	return parts
}

func (m Model) headerStatus() string {
	if m.anyPending() {
		return m.spinner.View() + " loading"
	}
	return ""
}

func (m Model) helpContext() helpContext {
	if m.mode == modeInsert {
		if m.target == targetContact {
			return helpFormInsert
		}
		return helpInsert
	}
	switch {
	case m.nav.SidebarOpen():
		return helpSidebar
	case m.nav.DetailOpen():
		return helpDetail
	}
	switch m.nav.Active() {
	case nav.SectionSearch:
		return helpSearch
	case nav.SectionContact:
		return helpContact
	case nav.SectionCategory, nav.SectionArea, nav.SectionIngredient:
		return helpFacet
	}
	return helpBrowse
}

func renderHeader(breadcrumbParts []string, status string, width int) string {
	title := render.HeaderStyle.Render("mealdeck")

	var breadcrumb string
	if len(breadcrumbParts) > 0 {
		separator := render.BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(breadcrumbParts))
		for i, part := range breadcrumbParts {
			if i == len(breadcrumbParts)-1 {
				parts[i] = render.BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = render.BreadcrumbStyle.Render(part)
			}
		}
		breadcrumb = separator + strings.Join(parts, separator)
	}

	left := "  " + title + breadcrumb
	right := render.BreadcrumbStyle.Render(status) + "  "

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	return render.TitleStyle.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}

func indexOfSection(s nav.Section) int {
	for i, section := range nav.Sections {
		if section == s {
			return i
		}
	}
	return 0
}
