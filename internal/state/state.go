// Package state holds the application state container: an immutable State
// value, the actions that change it and a pure Reduce function.
package state

import "github.com/franciscosanchezn/truckplate-api/internal/models"

// State is the full application state
type State struct {
	Recipes     []models.Recipe
	Invoices    []models.Invoice
	DisplayName string
	DarkMode    bool
	Loaded      bool
}

// Action is a state transition request
type Action interface {
	isAction()
}

// Hydrate replaces collections with data read from storage and marks the state loaded
type Hydrate struct {
	Recipes     []models.Recipe
	Invoices    []models.Invoice
	DisplayName string
}

// AddRecipe prepends a recipe whose id is already assigned
type AddRecipe struct{ Recipe models.Recipe }

// RemoveRecipe removes the recipe with ID, if present
type RemoveRecipe struct{ ID string }

// AddInvoice prepends an invoice whose id is already assigned
type AddInvoice struct{ Invoice models.Invoice }

// RemoveInvoice removes the invoice with ID, if present
type RemoveInvoice struct{ ID string }

// SetDisplayName changes the user display name
type SetDisplayName struct{ Name string }

// ToggleDarkMode flips the dark mode flag
type ToggleDarkMode struct{}

// SetDarkMode sets the dark mode flag to On
type SetDarkMode struct{ On bool }

func (Hydrate) isAction()        {}
func (AddRecipe) isAction()      {}
func (RemoveRecipe) isAction()   {}
func (AddInvoice) isAction()     {}
func (RemoveInvoice) isAction()  {}
func (SetDisplayName) isAction() {}
func (ToggleDarkMode) isAction() {}
func (SetDarkMode) isAction()    {}

// Initial returns the state before hydration
func Initial() State {
	return State{
		Recipes:     []models.Recipe{},
		Invoices:    []models.Invoice{},
		DisplayName: models.DefaultDisplayName,
		DarkMode:    true,
	}
}

// Reduce computes the next state. It never mutates s; slices that change
// are rebuilt, slices that do not are shared.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case Hydrate:
		s.Recipes = append([]models.Recipe{}, a.Recipes...)
		s.Invoices = append([]models.Invoice{}, a.Invoices...)
		if a.DisplayName != "" {
			s.DisplayName = a.DisplayName
		}
		s.Loaded = true
	case AddRecipe:
		s.Recipes = append([]models.Recipe{a.Recipe}, s.Recipes...)
	case RemoveRecipe:
		s.Recipes = removeWhere(s.Recipes, func(r models.Recipe) bool { return r.ID == a.ID })
	case AddInvoice:
		s.Invoices = append([]models.Invoice{a.Invoice}, s.Invoices...)
	case RemoveInvoice:
		s.Invoices = removeWhere(s.Invoices, func(i models.Invoice) bool { return i.ID == a.ID })
	case SetDisplayName:
		s.DisplayName = a.Name
	case ToggleDarkMode:
		s.DarkMode = !s.DarkMode
	case SetDarkMode:
		s.DarkMode = a.On
	}
	return s
}

// removeWhere returns items without the matches. The original slice is
// returned unchanged when nothing matches so callers can detect a no-op.
func removeWhere[T any](items []T, match func(T) bool) []T {
	idx := -1
	for i, it := range items {
		if match(it) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return items
	}
	out := make([]T, 0, len(items)-1)
	for _, it := range items {
		if !match(it) {
			out = append(out, it)
		}
	}
	return out
}
