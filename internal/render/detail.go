package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mealdeck/internal/model"
)

// wideDetailWidth is the width from which the detail view uses two columns.
const wideDetailWidth = 100

// IngredientLines derives a meal's ingredient list. Slots are scanned from the
// first and the scan stops at the first empty ingredient, even if later slots
// are populated.
func IngredientLines(meal model.Meal) []model.IngredientLine {
	var lines []model.IngredientLine
	for i := 0; i < model.MaxIngredients; i++ {
		if meal.Ingredients[i] == "" {
			break
		}
		lines = append(lines, model.IngredientLine{
			Ingredient: meal.Ingredients[i],
			Measure:    meal.Measures[i],
		})
	}
	return lines
}

// Tags splits the raw tag field on commas. Segments are not trimmed and a literal
// comma inside a tag cannot be told apart from a separator.
func Tags(meal model.Meal) []string {
	if meal.Tags == "" {
		return []string{}
	}
	return strings.Split(meal.Tags, ",")
}

// Detail renders a full meal record. thumb is an optional pre-rendered preview
// placed above the title. Optional blocks only appear when their field is set.
func Detail(meal model.Meal, width int, thumb string) string {
	if width < 20 {
		width = 20
	}
	colWidth := width
	if width >= wideDetailWidth {
		colWidth = width/2 - 2
	}

	var info []string
	if thumb != "" {
		info = append(info, thumb)
	}
	info = append(info, HeaderStyle.Padding(0).Render(Line(meal.Name)))
	info = append(info, field("Category", meal.Category))
	info = append(info, field("Area", meal.Area))
	if tags := Tags(meal); len(tags) > 0 {
		clean := make([]string, len(tags))
		for i, t := range tags {
			clean[i] = Line(t)
		}
		info = append(info, field("Tags", strings.Join(clean, ", ")))
	}

	var body []string
	body = append(body, LabelStyle.Render("Instructions"))
	body = append(body, lipgloss.NewStyle().Width(colWidth).Render(Text(meal.Instructions)))
	body = append(body, "", LabelStyle.Render("Ingredients"))
	for _, line := range IngredientLines(meal) {
		body = append(body, NormalRowStyle.Render("• "+Line(line.Ingredient)+" - "+Line(line.Measure)))
	}
	if link := Link("Watch on YouTube", meal.YouTube); link != "" {
		body = append(body, "", LabelStyle.Render("Video Recipe"), link)
	}
	if link := Link("View Source", meal.Source); link != "" {
		body = append(body, "", link)
	}

	left := lipgloss.NewStyle().Width(colWidth).Render(strings.Join(info, "\n"))
	right := lipgloss.NewStyle().Width(colWidth).Render(strings.Join(body, "\n"))
	if width >= wideDetailWidth {
		return lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
	}
	return lipgloss.JoinVertical(lipgloss.Left, left, "", right)
}

func field(label, value string) string {
	return LabelStyle.Render(label+":") + " " + NormalRowStyle.Render(Line(value))
}
