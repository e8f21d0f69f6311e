package model

// MaxIngredients is the number of ingredient/measure slots a catalog record carries.
const MaxIngredients = 20

// Meal represents a catalog recipe record.
// Filter endpoints only populate ID, Name and Thumb.
type Meal struct {
	ID           string
	Name         string
	Thumb        string
	Category     string
	Area         string
	Instructions string
	Ingredients  [MaxIngredients]string // raw upstream slots 1..20
	Measures     [MaxIngredients]string
	Tags         string // comma-separated, may be empty
	YouTube      string
	Source       string
}

// IngredientLine is one derived (ingredient, measure) pair of a meal.
type IngredientLine struct {
	Ingredient string
	Measure    string
}

// Category represents a recipe category facet.
type Category struct {
	Name        string
	Thumb       string
	Description string
}

// Area represents a regional cuisine facet.
type Area struct {
	Name string
}

// Ingredient represents an ingredient facet.
type Ingredient struct {
	Name string
}
