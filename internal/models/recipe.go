package models

// Prep stations a recipe can be assigned to
const (
	StationGrill    = "Grill"
	StationFryer    = "Fryer"
	StationColdPrep = "Cold Prep"
	StationOven     = "Oven"
	StationSmoker   = "Smoker"
	StationSteam    = "Steam"

	// StationAll is the filter sentinel matching every station
	StationAll = "all"
)

// Stations lists the station vocabulary in the order the add form offers it
var Stations = []string{StationGrill, StationFryer, StationColdPrep, StationOven, StationSmoker, StationSteam}

// IsStation reports whether s belongs to the station vocabulary
func IsStation(s string) bool {
	for _, station := range Stations {
		if station == s {
			return true
		}
	}
	return false
}

// Ingredient is a single costed ingredient owned by its recipe
type Ingredient struct {
	ID     string  `json:"id" validate:"required"`
	Name   string  `json:"name" validate:"required"`
	Cost   float64 `json:"cost" validate:"gte=0"`
	Unit   string  `json:"unit"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

// Recipe represents a menu recipe with its ingredient costs
type Recipe struct {
	ID          string       `json:"id" validate:"required"`
	Name        string       `json:"name" validate:"required"`
	Description string       `json:"description"`
	Ingredients []Ingredient `json:"ingredients" validate:"dive"`
	PrepStation string       `json:"prepStation" validate:"required,station"`
	DietaryTags []string     `json:"dietaryTags"`
	Servings    int          `json:"servings" validate:"gt=0"`
	PrepTime    int          `json:"prepTime" validate:"gte=0"`
	ImageURL    string       `json:"imageUrl,omitempty"`
}

// RecipeView is a recipe together with its derived cost figures
type RecipeView struct {
	Recipe
	CostPerServing float64 `json:"costPerServing"`
	SuggestedPrice float64 `json:"suggestedPrice"`
	Margin         float64 `json:"margin"`
}
