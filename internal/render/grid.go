package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mealdeck/internal/model"
	"mealdeck/internal/util"
)

const (
	// CardWidth is the inner width of a card, borders and padding excluded.
	CardWidth  = 24
	cardHeight = 4 // border + title + subtitle + border
	cardGap    = 1

	NoMealsText   = "No meals found"
	NoResultsText = "No results"
)

// ActionKind enumerates what activating a card does.
type ActionKind int

const (
	ActionOpenDetail ActionKind = iota
	ActionFilterCategory
	ActionFilterArea
	ActionFilterIngredient
)

// Action is the transition or query a card triggers, keyed by its record.
type Action struct {
	Kind ActionKind
	Key  string
}

// Card is one clickable record in a grid.
type Card struct {
	Title    string
	Subtitle string
	Action   Action
}

// Grid is the rendered contents of a list region.
type Grid struct {
	Cards       []Card
	Placeholder string
}

// Empty reports whether the grid shows only its placeholder.
func (g Grid) Empty() bool {
	return len(g.Cards) == 0
}

// Meals maps meal records to cards opening their detail view.
func Meals(meals []model.Meal) Grid {
	g := Grid{Placeholder: NoMealsText}
	for _, m := range meals {
		var sub []string
		if m.Category != "" {
			sub = append(sub, Line(m.Category))
		}
		if m.Area != "" {
			sub = append(sub, Line(m.Area))
		}
		g.Cards = append(g.Cards, Card{
			Title:    Line(m.Name),
			Subtitle: strings.Join(sub, " · "),
			Action:   Action{Kind: ActionOpenDetail, Key: m.ID},
		})
	}
	return g
}

// Categories maps categories to cards filtering meals by category.
func Categories(categories []model.Category) Grid {
	g := Grid{Placeholder: NoResultsText}
	for _, c := range categories {
		g.Cards = append(g.Cards, Card{
			Title:    Line(c.Name),
			Subtitle: firstSentence(Line(c.Description)),
			Action:   Action{Kind: ActionFilterCategory, Key: c.Name},
		})
	}
	return g
}

// Areas maps areas to cards filtering meals by area.
func Areas(areas []model.Area) Grid {
	g := Grid{Placeholder: NoResultsText}
	for _, a := range areas {
		g.Cards = append(g.Cards, Card{
			Title:  Line(a.Name),
			Action: Action{Kind: ActionFilterArea, Key: a.Name},
		})
	}
	return g
}

// Ingredients maps ingredients to cards filtering meals by main ingredient.
func Ingredients(ingredients []model.Ingredient) Grid {
	g := Grid{Placeholder: NoResultsText}
	for _, i := range ingredients {
		g.Cards = append(g.Cards, Card{
			Title:  Line(i.Name),
			Action: Action{Kind: ActionFilterIngredient, Key: i.Name},
		})
	}
	return g
}

// Columns returns how many cards fit side by side in width cells.
func Columns(width int) int {
	cols := (width + cardGap) / (CardWidth + 4 + cardGap)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// View lays the cards out row by row, scrolled so the cursor card is visible.
// An empty grid renders its placeholder instead of an empty container.
func (g Grid) View(width, height, cursor int, focused bool) string {
	if g.Empty() {
		placeholder := g.Placeholder
		if placeholder == "" {
			placeholder = NoResultsText
		}
		return EmptyStateStyle.Render(placeholder)
	}

	cols := Columns(width)
	rows := (len(g.Cards) + cols - 1) / cols
	visibleRows := height / cardHeight
	if visibleRows < 1 {
		visibleRows = 1
	}
	start := 0
	if cursor >= 0 {
		if cursorRow := cursor / cols; cursorRow >= visibleRows {
			start = cursorRow - visibleRows + 1
		}
	}
	end := start + visibleRows
	if end > rows {
		end = rows
	}

	var lines []string
	for r := start; r < end; r++ {
		var cells []string
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			if idx >= len(g.Cards) {
				break
			}
			if c > 0 {
				cells = append(cells, strings.Repeat(" ", cardGap))
			}
			cells = append(cells, g.Cards[idx].view(focused && idx == cursor))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}

func (c Card) view(selected bool) string {
	style := CardStyle
	title := CardTitleStyle
	if selected {
		style = ActiveCardStyle
		title = title.Foreground(ColorAccent)
	}
	body := title.Render(util.TruncateString(c.Title, CardWidth)) + "\n" +
		CardSubtitleStyle.Render(util.TruncateString(c.Subtitle, CardWidth))
	return style.Width(CardWidth + 2).Render(body)
}

func firstSentence(s string) string {
	if i := strings.Index(s, ". "); i >= 0 {
		return s[:i+1]
	}
	return s
}
