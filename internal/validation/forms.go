// Package validation checks recipe and invoice submissions and turns valid
// ones into entities.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/truckplate-api/internal/models"
)

// Default values for optional recipe fields
const (
	DefaultStation  = models.StationGrill
	DefaultPrepTime = 30
)

// Text is a form value. It decodes from a JSON string or a bare number so
// API clients may send either.
type Text string

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*t = Text(n.String())
	return nil
}

func (t Text) trimmed() string {
	return strings.TrimSpace(string(t))
}

// IngredientForm is one ingredient line of a recipe submission
type IngredientForm struct {
	Name   string `json:"name" form:"name" validate:"required"`
	Cost   Text   `json:"cost" form:"cost" validate:"nonnegnum"`
	Unit   string `json:"unit" form:"unit"`
	Amount Text   `json:"amount" form:"amount" validate:"nonnegnum"`
}

// RecipeForm is a new recipe as submitted by a user
type RecipeForm struct {
	Name        string           `json:"name" form:"name" validate:"required"`
	Description string           `json:"description" form:"description" validate:"required"`
	Station     string           `json:"prepStation" form:"prepStation" validate:"omitempty,station"`
	Servings    Text             `json:"servings" form:"servings" validate:"posint"`
	PrepTime    Text             `json:"prepTime" form:"prepTime" validate:"omitempty,nonnegint"`
	DietaryTags []string         `json:"dietaryTags" form:"dietaryTags"`
	ImageURL    string           `json:"imageUrl" form:"imageUrl"`
	Ingredients []IngredientForm `json:"ingredients" validate:"dive"`
}

// InvoiceForm is a supplier invoice as submitted by a user
type InvoiceForm struct {
	Supplier string `json:"supplier" form:"supplier" validate:"required"`
	Amount   Text   `json:"amount" form:"amount" validate:"posnum"`
	Date     string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Items    string `json:"items" form:"items" validate:"required"`
}

// normalize trims every free text value so blank input counts as missing
func (f RecipeForm) normalize() RecipeForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Station = strings.TrimSpace(f.Station)
	f.Servings = Text(f.Servings.trimmed())
	f.PrepTime = Text(f.PrepTime.trimmed())
	f.ImageURL = strings.TrimSpace(f.ImageURL)
	ingredients := make([]IngredientForm, len(f.Ingredients))
	for i, in := range f.Ingredients {
		ingredients[i] = IngredientForm{
			Name:   strings.TrimSpace(in.Name),
			Cost:   Text(in.Cost.trimmed()),
			Unit:   strings.TrimSpace(in.Unit),
			Amount: Text(in.Amount.trimmed()),
		}
	}
	f.Ingredients = ingredients
	return f
}

func (f InvoiceForm) normalize() InvoiceForm {
	f.Supplier = strings.TrimSpace(f.Supplier)
	f.Amount = Text(f.Amount.trimmed())
	f.Date = strings.TrimSpace(f.Date)
	f.Items = strings.TrimSpace(f.Items)
	return f
}

// ToRecipe builds a recipe from a form that passed ValidateRecipe. The id
// is left empty for the store to assign.
func (f RecipeForm) ToRecipe() models.Recipe {
	f = f.normalize()

	station := f.Station
	if station == "" {
		station = DefaultStation
	}
	prepTime := DefaultPrepTime
	if f.PrepTime != "" {
		prepTime, _ = strconv.Atoi(string(f.PrepTime))
	}
	servings, _ := strconv.Atoi(string(f.Servings))

	ingredients := make([]models.Ingredient, 0, len(f.Ingredients))
	for _, in := range f.Ingredients {
		cost, _ := strconv.ParseFloat(string(in.Cost), 64)
		amount, _ := strconv.ParseFloat(string(in.Amount), 64)
		ingredients = append(ingredients, models.Ingredient{
			Name:   in.Name,
			Cost:   cost,
			Unit:   in.Unit,
			Amount: amount,
		})
	}

	tags := make([]string, 0, len(f.DietaryTags))
	seen := make(map[string]bool, len(f.DietaryTags))
	for _, tag := range f.DietaryTags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	return models.Recipe{
		Name:        f.Name,
		Description: f.Description,
		Ingredients: ingredients,
		PrepStation: station,
		DietaryTags: tags,
		Servings:    servings,
		PrepTime:    prepTime,
		ImageURL:    f.ImageURL,
	}
}

// ToInvoice builds a pending invoice from a form that passed
// ValidateInvoice. Item descriptions are split on commas and newlines.
func (f InvoiceForm) ToInvoice() models.Invoice {
	f = f.normalize()
	total, _ := strconv.ParseFloat(string(f.Amount), 64)
	return models.Invoice{
		Supplier: f.Supplier,
		Date:     f.Date,
		Total:    total,
		Items:    SplitItems(f.Items),
		Status:   models.InvoicePending,
	}
}

// SplitItems turns a free text item description into line items with
// quantity 1 and no price
func SplitItems(desc string) []models.LineItem {
	parts := strings.FieldsFunc(desc, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	items := make([]models.LineItem, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		items = append(items, models.LineItem{Name: p, Quantity: 1})
	}
	return items
}
