package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"mealdeck/internal/catalog"
	"mealdeck/internal/model"
)

type thumbnailFailedMsg struct {
	mealID string
	err    error
}

type contactSubmittedMsg struct{}

// fetchCmd runs one catalog query for a region and tags the result with its ticket.
func fetchCmd(c Catalog, key model.RegionKey, ticket uint64, q catalog.Query) tea.Cmd {
	return func() tea.Msg {
		res, err := c.Query(context.Background(), q)
		if err != nil {
			return model.FetchFailedMsg{Region: key, Ticket: ticket, Err: err}
		}

		switch q.Kind {
		case catalog.KindCategories:
			return model.CategoriesLoadedMsg{Ticket: ticket, Categories: res.Categories}
		case catalog.KindAreas:
			return model.AreasLoadedMsg{Ticket: ticket, Areas: res.Areas}
		case catalog.KindIngredients:
			return model.IngredientsLoadedMsg{Ticket: ticket, Ingredients: res.Ingredients}
		case catalog.KindLookup:
			if len(res.Meals) == 0 {
				return model.FetchFailedMsg{
					Region: key,
					Ticket: ticket,
					Err:    fmt.Errorf("%w: id %s", catalog.ErrNotFound, q.Param),
				}
			}
			return model.MealDetailLoadedMsg{Ticket: ticket, Meal: res.Meals[0]}
		default:
			return model.MealsLoadedMsg{Region: key, Ticket: ticket, Meals: res.Meals}
		}
	}
}

func thumbnailCmd(c Catalog, mealID, thumb string) tea.Cmd {
	return func() tea.Msg {
		img, err := c.Image(context.Background(), thumbnailURL(thumb))
		if err != nil {
			return thumbnailFailedMsg{mealID: mealID, err: err}
		}
		return model.ThumbnailLoadedMsg{MealID: mealID, Image: img}
	}
}

func contactSubmittedCmd() tea.Msg {
	return contactSubmittedMsg{}
}
