package nav

import (
	"testing"

	"mealdeck/internal/model"
)

func TestNewStartsAtHome(t *testing.T) {
	s := New()
	if s.Active() != SectionHome {
		t.Fatalf("expected home, got %s", s.Active())
	}
	if s.DetailOpen() || s.SidebarOpen() {
		t.Fatalf("expected detail and sidebar closed")
	}
	if !s.Visible(model.RegionMeals) {
		t.Fatalf("expected landing grid visible")
	}
}

func TestNavigateRefreshesOnlyHome(t *testing.T) {
	for _, section := range Sections {
		s := New()
		got := s.Navigate(section)
		if want := section == SectionHome; got != want {
			t.Fatalf("navigate(%s): expected refresh %v, got %v", section, want, got)
		}
		if s.Active() != section {
			t.Fatalf("expected active %s, got %s", section, s.Active())
		}
	}
}

func TestNavigateClosesSidebarAndDetail(t *testing.T) {
	s := New()
	s.OpenSidebar()
	s.OpenDetail()
	s.Navigate(SectionArea)
	if s.SidebarOpen() {
		t.Fatalf("expected sidebar closed after navigate")
	}
	if s.DetailOpen() {
		t.Fatalf("expected detail hidden after navigate")
	}
}

func TestDetailRoundTripRestoresCategory(t *testing.T) {
	s := New()
	s.Navigate(SectionCategory)
	// selecting "Seafood" fills a region but is not a transition
	s.OpenDetail()
	if s.Active() != SectionCategory {
		t.Fatalf("expected active section unchanged while detail open, got %s", s.Active())
	}
	if s.Visible(model.RegionCategories) || s.Visible(model.RegionMeals) {
		t.Fatalf("expected section and home regions hidden under detail")
	}
	if !s.Visible(model.RegionDetail) {
		t.Fatalf("expected detail region visible")
	}

	s.CloseDetail()
	if s.Active() != SectionCategory {
		t.Fatalf("expected category restored, got %s", s.Active())
	}
	if !s.Visible(model.RegionCategories) || !s.Visible(model.RegionCategoryMeals) {
		t.Fatalf("expected category regions visible after close")
	}
	if s.Visible(model.RegionDetail) {
		t.Fatalf("expected detail hidden after close")
	}
}

func TestVisibleRegionsFollowSection(t *testing.T) {
	s := New()
	s.Navigate(SectionContact)
	if got := s.VisibleRegions(); len(got) != 0 {
		t.Fatalf("expected no grid regions for contact, got %v", got)
	}
	s.Navigate(SectionIngredient)
	got := s.VisibleRegions()
	if len(got) != 2 || got[0] != model.RegionIngredients || got[1] != model.RegionIngredientMeals {
		t.Fatalf("unexpected ingredient regions: %v", got)
	}
}

func TestToggleSidebar(t *testing.T) {
	s := New()
	s.ToggleSidebar()
	if !s.SidebarOpen() {
		t.Fatalf("expected sidebar open")
	}
	s.ToggleSidebar()
	if s.SidebarOpen() {
		t.Fatalf("expected sidebar closed")
	}
}
