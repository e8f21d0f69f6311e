package catalog

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"mealdeck/internal/model"
)

// Kind enumerates the read queries the catalog supports.
type Kind int

const (
	KindSample Kind = iota
	KindSearchName
	KindSearchLetter
	KindFilterCategory
	KindFilterArea
	KindFilterIngredient
	KindCategories
	KindAreas
	KindIngredients
	KindLookup
)

var kindNames = map[Kind]string{
	KindSample:           "sample",
	KindSearchName:       "search-name",
	KindSearchLetter:     "search-letter",
	KindFilterCategory:   "filter-category",
	KindFilterArea:       "filter-area",
	KindFilterIngredient: "filter-ingredient",
	KindCategories:       "categories",
	KindAreas:            "areas",
	KindIngredients:      "ingredients",
	KindLookup:           "lookup",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Query is one parameterized catalog read.
type Query struct {
	Kind  Kind
	Param string
}

// Result holds the normalized collection for a query. Only the collection matching
// the query kind is populated; nil means the catalog reported no matches.
type Result struct {
	Meals       []model.Meal
	Categories  []model.Category
	Areas       []model.Area
	Ingredients []model.Ingredient
}

// Empty reports whether the result carries no records.
func (r Result) Empty() bool {
	return len(r.Meals) == 0 && len(r.Categories) == 0 && len(r.Areas) == 0 && len(r.Ingredients) == 0
}

// endpoint maps a query onto its API path and query string.
func (q Query) endpoint() (string, url.Values, error) {
	params := url.Values{}
	param := strings.TrimSpace(q.Param)

	switch q.Kind {
	case KindSample:
		params.Set("s", "")
		return "search.php", params, nil
	case KindSearchName:
		if param == "" {
			return "", nil, fmt.Errorf("%w: empty search term", ErrInvalidQuery)
		}
		params.Set("s", param)
		return "search.php", params, nil
	case KindSearchLetter:
		if utf8.RuneCountInString(param) != 1 {
			return "", nil, fmt.Errorf("%w: first-letter search needs exactly one character, got %q", ErrInvalidQuery, param)
		}
		params.Set("f", param)
		return "search.php", params, nil
	case KindFilterCategory, KindFilterArea, KindFilterIngredient:
		if param == "" {
			return "", nil, fmt.Errorf("%w: empty %s filter", ErrInvalidQuery, q.Kind)
		}
		key := map[Kind]string{KindFilterCategory: "c", KindFilterArea: "a", KindFilterIngredient: "i"}[q.Kind]
		params.Set(key, param)
		return "filter.php", params, nil
	case KindCategories:
		return "categories.php", params, nil
	case KindAreas:
		params.Set("a", "list")
		return "list.php", params, nil
	case KindIngredients:
		params.Set("i", "list")
		return "list.php", params, nil
	case KindLookup:
		if param == "" {
			return "", nil, fmt.Errorf("%w: empty meal id", ErrInvalidQuery)
		}
		params.Set("i", param)
		return "lookup.php", params, nil
	}
	return "", nil, fmt.Errorf("%w: unknown kind %s", ErrInvalidQuery, q.Kind)
}
