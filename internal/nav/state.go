// Package nav tracks which section of the browser is visible.
//
// State is an owned value: the UI controller holds the only copy and mutates it
// through the transition methods. Nothing here is global or persisted.
package nav

import "mealdeck/internal/model"

// Section is one of the mutually exclusive top-level views.
type Section int

const (
	SectionHome Section = iota
	SectionSearch
	SectionCategory
	SectionArea
	SectionIngredient
	SectionContact
)

// Sections lists every section in sidebar order.
var Sections = []Section{
	SectionHome,
	SectionSearch,
	SectionCategory,
	SectionArea,
	SectionIngredient,
	SectionContact,
}

func (s Section) String() string {
	switch s {
	case SectionHome:
		return "home"
	case SectionSearch:
		return "search"
	case SectionCategory:
		return "category"
	case SectionArea:
		return "area"
	case SectionIngredient:
		return "ingredient"
	case SectionContact:
		return "contact"
	}
	return "unknown"
}

// Regions returns the display regions owned by a section.
func (s Section) Regions() []model.RegionKey {
	switch s {
	case SectionHome:
		return []model.RegionKey{model.RegionMeals}
	case SectionSearch:
		return []model.RegionKey{model.RegionSearchResults}
	case SectionCategory:
		return []model.RegionKey{model.RegionCategories, model.RegionCategoryMeals}
	case SectionArea:
		return []model.RegionKey{model.RegionAreas, model.RegionAreaMeals}
	case SectionIngredient:
		return []model.RegionKey{model.RegionIngredients, model.RegionIngredientMeals}
	}
	return nil
}

// State is the navigation state machine.
type State struct {
	active  Section
	detail  bool
	sidebar bool
}

// New returns the initial state: home, detail hidden, sidebar closed.
func New() State {
	return State{active: SectionHome}
}

// Active returns the recorded active section. It is unchanged while the detail overlay is open.
func (s State) Active() Section { return s.active }

// DetailOpen reports whether the detail overlay is shown.
func (s State) DetailOpen() bool { return s.detail }

// SidebarOpen reports whether the sidebar is shown.
func (s State) SidebarOpen() bool { return s.sidebar }

// Navigate hides every section and the detail overlay, then shows target.
// It always closes the sidebar and reports whether the landing sample must be refetched.
func (s *State) Navigate(target Section) (refreshLanding bool) {
	s.active = target
	s.detail = false
	s.sidebar = false
	return target == SectionHome
}

// OpenDetail shows the detail overlay over the active section.
func (s *State) OpenDetail() {
	s.detail = true
}

// CloseDetail hides the detail overlay and re-shows the active section.
func (s *State) CloseDetail() {
	s.detail = false
}

func (s *State) OpenSidebar()   { s.sidebar = true }
func (s *State) CloseSidebar()  { s.sidebar = false }
func (s *State) ToggleSidebar() { s.sidebar = !s.sidebar }

// Visible reports whether a region is currently shown.
func (s State) Visible(region model.RegionKey) bool {
	if s.detail {
		return region == model.RegionDetail
	}
	for _, r := range s.active.Regions() {
		if r == region {
			return true
		}
	}
	return false
}

// VisibleRegions returns the regions currently shown.
func (s State) VisibleRegions() []model.RegionKey {
	if s.detail {
		return []model.RegionKey{model.RegionDetail}
	}
	return s.active.Regions()
}
