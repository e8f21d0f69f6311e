package model

import "image"

// Bubble Tea message types

// RegionKey identifies a named display region.
type RegionKey string

// Display regions written by the UI.
const (
	RegionMeals           RegionKey = "meals"
	RegionSearchResults   RegionKey = "search-results"
	RegionCategories      RegionKey = "categories"
	RegionCategoryMeals   RegionKey = "category-meals"
	RegionAreas           RegionKey = "areas"
	RegionAreaMeals       RegionKey = "area-meals"
	RegionIngredients     RegionKey = "ingredients"
	RegionIngredientMeals RegionKey = "ingredient-meals"
	RegionDetail          RegionKey = "detail"
)

// MealsLoadedMsg is sent when a meal collection for a region arrives.
// A nil Meals slice means the catalog answered with no results.
type MealsLoadedMsg struct {
	Region RegionKey
	Ticket uint64
	Meals  []Meal
}

// CategoriesLoadedMsg is sent when the category list arrives.
type CategoriesLoadedMsg struct {
	Ticket     uint64
	Categories []Category
}

// AreasLoadedMsg is sent when the area list arrives.
type AreasLoadedMsg struct {
	Ticket uint64
	Areas  []Area
}

// IngredientsLoadedMsg is sent when the ingredient list arrives.
type IngredientsLoadedMsg struct {
	Ticket      uint64
	Ingredients []Ingredient
}

// MealDetailLoadedMsg is sent when a full meal record arrives.
type MealDetailLoadedMsg struct {
	Ticket uint64
	Meal   Meal
}

// ThumbnailLoadedMsg is sent when a detail thumbnail has been fetched.
type ThumbnailLoadedMsg struct {
	MealID string
	Image  image.Image
}

// FetchFailedMsg is sent when a catalog request fails. The region keeps its prior content.
type FetchFailedMsg struct {
	Region RegionKey
	Ticket uint64
	Err    error
}
