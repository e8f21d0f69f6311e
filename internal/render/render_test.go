package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"mealdeck/internal/model"
)

func TestEmptyCollectionsRenderPlaceholder(t *testing.T) {
	grids := map[string]Grid{
		"meals nil":         Meals(nil),
		"meals empty":       Meals([]model.Meal{}),
		"categories nil":    Categories(nil),
		"categories empty":  Categories([]model.Category{}),
		"areas nil":         Areas(nil),
		"areas empty":       Areas([]model.Area{}),
		"ingredients nil":   Ingredients(nil),
		"ingredients empty": Ingredients([]model.Ingredient{}),
	}
	for name, g := range grids {
		if !g.Empty() {
			t.Fatalf("%s: expected empty grid", name)
		}
		out := ansi.Strip(g.View(80, 20, 0, true))
		if !strings.Contains(out, g.Placeholder) || strings.TrimSpace(out) == "" {
			t.Fatalf("%s: expected placeholder %q, got %q", name, g.Placeholder, out)
		}
	}
	if Meals(nil).Placeholder != NoMealsText {
		t.Fatalf("expected meals placeholder %q", NoMealsText)
	}
}

func TestCardsCarryRecordActions(t *testing.T) {
	meals := Meals([]model.Meal{{ID: "52772", Name: "Teriyaki Chicken Casserole"}})
	if len(meals.Cards) != 1 || meals.Cards[0].Action != (Action{Kind: ActionOpenDetail, Key: "52772"}) {
		t.Fatalf("unexpected meal cards: %+v", meals.Cards)
	}

	categories := Categories([]model.Category{{Name: "Seafood", Description: "Fish and shellfish. Caught fresh."}})
	if categories.Cards[0].Action != (Action{Kind: ActionFilterCategory, Key: "Seafood"}) {
		t.Fatalf("unexpected category action: %+v", categories.Cards[0].Action)
	}
	if categories.Cards[0].Subtitle != "Fish and shellfish." {
		t.Fatalf("expected first sentence subtitle, got %q", categories.Cards[0].Subtitle)
	}

	areas := Areas([]model.Area{{Name: "Canadian"}, {Name: "Thai"}})
	if len(areas.Cards) != 2 || areas.Cards[1].Action != (Action{Kind: ActionFilterArea, Key: "Thai"}) {
		t.Fatalf("unexpected area cards: %+v", areas.Cards)
	}

	ingredients := Ingredients([]model.Ingredient{{Name: "Chicken"}})
	if ingredients.Cards[0].Action != (Action{Kind: ActionFilterIngredient, Key: "Chicken"}) {
		t.Fatalf("unexpected ingredient action: %+v", ingredients.Cards[0].Action)
	}
}

func TestGridViewShowsOneCardPerRecord(t *testing.T) {
	g := Meals([]model.Meal{{ID: "1", Name: "Arrabiata"}, {ID: "2", Name: "Bakewell tart"}, {ID: "3", Name: "Corba"}})
	out := ansi.Strip(g.View(200, 40, 1, true))
	for _, name := range []string{"Arrabiata", "Bakewell tart", "Corba"} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %q in grid, got %q", name, out)
		}
	}
}

func TestGridViewScrollsToCursor(t *testing.T) {
	var meals []model.Meal
	for _, name := range []string{"Alpha", "Bravo", "Charlie", "Delta"} {
		meals = append(meals, model.Meal{ID: name, Name: name})
	}
	g := Meals(meals)
	// one column, one visible row
	out := ansi.Strip(g.View(CardWidth+4, cardHeight, 3, true))
	if !strings.Contains(out, "Delta") || strings.Contains(out, "Alpha") {
		t.Fatalf("expected only the cursor card visible, got %q", out)
	}
}

func mealWithSlots(ingredients ...string) model.Meal {
	var m model.Meal
	for i, ing := range ingredients {
		m.Ingredients[i] = ing
		m.Measures[i] = "1 tsp"
	}
	return m
}

func TestIngredientLinesStopAtFirstGap(t *testing.T) {
	tests := []struct {
		name  string
		slots []string
		want  int
	}{
		{"none", nil, 0},
		{"contiguous", []string{"salt", "pepper", "oil"}, 3},
		{"gap then populated", []string{"salt", "", "oil", "garlic"}, 1},
		{"first empty", []string{"", "pepper"}, 0},
	}
	for _, tt := range tests {
		lines := IngredientLines(mealWithSlots(tt.slots...))
		if len(lines) != tt.want {
			t.Fatalf("%s: expected %d lines, got %d (%+v)", tt.name, tt.want, len(lines), lines)
		}
	}

	var full model.Meal
	for i := range full.Ingredients {
		full.Ingredients[i] = "x"
	}
	if got := len(IngredientLines(full)); got != model.MaxIngredients {
		t.Fatalf("expected %d lines for a full record, got %d", model.MaxIngredients, got)
	}
}

func TestTags(t *testing.T) {
	if tags := Tags(model.Meal{}); tags == nil || len(tags) != 0 {
		t.Fatalf("expected empty non-nil tag list, got %#v", tags)
	}
	tags := Tags(model.Meal{Tags: "a,b,c"})
	if len(tags) != 3 || tags[0] != "a" || tags[1] != "b" || tags[2] != "c" {
		t.Fatalf("unexpected tags: %#v", tags)
	}
	if tags := Tags(model.Meal{Tags: "Meat, Casserole"}); tags[1] != " Casserole" {
		t.Fatalf("expected segments kept as-is, got %#v", tags)
	}
}

func TestDetailOptionalBlocks(t *testing.T) {
	base := model.Meal{
		Name:         "Corba",
		Category:     "Side",
		Area:         "Turkish",
		Instructions: "Pick through your lentils.",
	}
	base.Ingredients[0], base.Measures[0] = "Lentils", "1 cup"

	out := ansi.Strip(Detail(base, 80, ""))
	for _, want := range []string{"Corba", "Turkish", "Lentils - 1 cup", "Instructions"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in detail, got %q", want, out)
		}
	}
	for _, absent := range []string{"Tags:", "Watch on YouTube", "View Source"} {
		if strings.Contains(out, absent) {
			t.Fatalf("expected no %q block, got %q", absent, out)
		}
	}

	full := base
	full.Tags = "Soup,Lentils"
	full.YouTube = "https://www.youtube.com/watch?v=VVnZd8A84z4"
	full.Source = "https://findingtimeforcooking.com/main-dishes/red-lentil-soup-corba/"
	out = ansi.Strip(Detail(full, 140, ""))
	for _, want := range []string{"Tags:", "Soup, Lentils", "Watch on YouTube", "View Source"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in detail, got %q", want, out)
		}
	}
}

func TestDetailRendersUntrustedTextInert(t *testing.T) {
	meal := model.Meal{
		Name:         "Evil\x1b]0;pwned\x07Pie",
		Category:     "\x1b[31mRed\x1b[0m",
		Instructions: "Bake\x1b[2J well.",
		YouTube:      "javascript:alert(1)",
	}
	out := Detail(meal, 80, "")
	if strings.Contains(out, "pwned\x07") || strings.Contains(out, "\x1b]0;") || strings.Contains(out, "\x1b[2J") {
		t.Fatalf("expected escape sequences stripped, got %q", out)
	}
	if strings.Contains(out, "Watch on YouTube") {
		t.Fatalf("expected non-http video link dropped")
	}
	if !strings.Contains(ansi.Strip(out), "Bake well.") {
		t.Fatalf("expected instructions text kept, got %q", ansi.Strip(out))
	}
}

func TestText(t *testing.T) {
	got := Text("a\x1b[31mb\x1b[0m\tc\r\nd\x00")
	if got != "ab c\nd" {
		t.Fatalf("expected sanitized text, got %q", got)
	}
	if got := Line("  Beef \n Wellington "); got != "Beef Wellington" {
		t.Fatalf("expected collapsed line, got %q", got)
	}
}

func TestSafeURL(t *testing.T) {
	tests := map[string]string{
		"https://www.youtube.com/watch?v=1": "https://www.youtube.com/watch?v=1",
		"javascript:alert(1)":               "",
		"":                                  "",
		"ftp://example.com/x":               "",
	}
	for in, want := range tests {
		if got := SafeURL(in); got != want {
			t.Fatalf("SafeURL(%q): expected %q, got %q", in, want, got)
		}
	}
}
