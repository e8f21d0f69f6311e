package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"mealdeck/internal/model"
)

// API response types

type envelope struct {
	Meals      []record `json:"meals"`
	Categories []record `json:"categories"`
}

// record is one upstream object. Values are strings or null; numbers are tolerated.
type record map[string]interface{}

func (r record) str(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func toMeal(r record) model.Meal {
	meal := model.Meal{
		ID:           r.str("idMeal"),
		Name:         r.str("strMeal"),
		Thumb:        r.str("strMealThumb"),
		Category:     r.str("strCategory"),
		Area:         r.str("strArea"),
		Instructions: r.str("strInstructions"),
		Tags:         r.str("strTags"),
		YouTube:      r.str("strYoutube"),
		Source:       r.str("strSource"),
	}
	for i := 0; i < model.MaxIngredients; i++ {
		meal.Ingredients[i] = r.str(fmt.Sprintf("strIngredient%d", i+1))
		meal.Measures[i] = r.str(fmt.Sprintf("strMeasure%d", i+1))
	}
	return meal
}

func toMeals(records []record) []model.Meal {
	if records == nil {
		return nil
	}
	meals := make([]model.Meal, 0, len(records))
	for _, r := range records {
		meals = append(meals, toMeal(r))
	}
	return meals
}

func toCategories(records []record) []model.Category {
	if records == nil {
		return nil
	}
	categories := make([]model.Category, 0, len(records))
	for _, r := range records {
		categories = append(categories, model.Category{
			Name:        r.str("strCategory"),
			Thumb:       r.str("strCategoryThumb"),
			Description: strings.TrimSpace(r.str("strCategoryDescription")),
		})
	}
	return categories
}

func toAreas(records []record) []model.Area {
	if records == nil {
		return nil
	}
	areas := make([]model.Area, 0, len(records))
	for _, r := range records {
		areas = append(areas, model.Area{Name: r.str("strArea")})
	}
	return areas
}

func toIngredients(records []record) []model.Ingredient {
	if records == nil {
		return nil
	}
	ingredients := make([]model.Ingredient, 0, len(records))
	for _, r := range records {
		ingredients = append(ingredients, model.Ingredient{Name: r.str("strIngredient")})
	}
	return ingredients
}
