package persistence

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/franciscosanchezn/truckplate-api/internal/models"
	"github.com/go-playground/validator/v10"
)

var errNullCollection = errors.New("collection is null")

// newValidator returns a validator that also knows the "station" tag
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// only fails on a programming error in the tag name
	_ = v.RegisterValidation("station", func(fl validator.FieldLevel) bool {
		return models.IsStation(fl.Field().String())
	})
	return v
}

// decodeRecipes parses the stored recipe array record by record. Records
// that can be repaired are, the rest are dropped with a warning.
func (a *Adapter) decodeRecipes(raw string, warn func(string, ...any)) ([]models.Recipe, error) {
	records, err := splitArray(raw)
	if err != nil {
		return nil, err
	}

	out := make([]models.Recipe, 0, len(records))
	for i, rec := range records {
		var r models.Recipe
		if err := json.Unmarshal(rec, &r); err != nil {
			warn("dropping recipe %d: %v", i, err)
			continue
		}
		a.repairRecipe(&r, warn)
		if err := a.validate.Struct(r); err != nil {
			warn("dropping recipe %d (%s): %v", i, r.ID, err)
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// decodeInvoices is decodeRecipes for the invoice array
func (a *Adapter) decodeInvoices(raw string, warn func(string, ...any)) ([]models.Invoice, error) {
	records, err := splitArray(raw)
	if err != nil {
		return nil, err
	}

	out := make([]models.Invoice, 0, len(records))
	for i, rec := range records {
		var inv models.Invoice
		if err := json.Unmarshal(rec, &inv); err != nil {
			warn("dropping invoice %d: %v", i, err)
			continue
		}
		repairInvoice(&inv, warn)
		if err := a.validate.Struct(inv); err != nil {
			warn("dropping invoice %d (%s): %v", i, inv.ID, err)
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}

func splitArray(raw string) ([]json.RawMessage, error) {
	var records []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, err
	}
	if records == nil {
		return nil, errNullCollection
	}
	return records, nil
}

func (a *Adapter) repairRecipe(r *models.Recipe, warn func(string, ...any)) {
	if strings.TrimSpace(r.ID) == "" {
		r.ID = a.newID()
		warn("recipe %q had no id, assigned %s", r.Name, r.ID)
	}
	if r.Ingredients == nil {
		r.Ingredients = []models.Ingredient{}
	}
	for i := range r.Ingredients {
		if r.Ingredients[i].ID == "" {
			r.Ingredients[i].ID = a.newID()
		}
	}
	r.DietaryTags = dedupeTags(r.DietaryTags)
}

func repairInvoice(inv *models.Invoice, warn func(string, ...any)) {
	if !inv.Status.Valid() {
		if inv.Status != "" {
			warn("invoice %s had unknown status %q, reset to pending", inv.ID, inv.Status)
		}
		inv.Status = models.InvoicePending
	}
	if inv.Items == nil {
		inv.Items = []models.LineItem{}
	}
}

// dedupeTags drops blank and repeated tags, keeping first occurrences
func dedupeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
