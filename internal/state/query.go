package state

import (
	"sort"
	"strings"

	"github.com/franciscosanchezn/truckplate-api/internal/costing"
	"github.com/franciscosanchezn/truckplate-api/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort criteria
const (
	SortByName = "name"
	SortByCost = "cost"
)

// Filter returns the recipes whose name or description contains query,
// ignoring case, and whose station equals station. An empty station or
// "all" matches every station.
func Filter(recipes []models.Recipe, query, station string) []models.Recipe {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query))

	out := make([]models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if station != "" && station != models.StationAll && r.PrepStation != station {
			continue
		}
		if needle != "" &&
			!strings.Contains(fold.String(r.Name), needle) &&
			!strings.Contains(fold.String(r.Description), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Sort returns a sorted copy of recipes. Ties keep their input order and an
// unknown criterion returns the recipes unchanged.
func Sort(recipes []models.Recipe, criterion string) []models.Recipe {
	out := make([]models.Recipe, len(recipes))
	copy(out, recipes)

	switch criterion {
	case SortByName:
		col := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortByCost:
		type costed struct {
			recipe models.Recipe
			cost   float64
		}
		keyed := make([]costed, len(out))
		for i, r := range out {
			keyed[i] = costed{recipe: r, cost: costing.CostPerServing(r)}
		}
		sort.SliceStable(keyed, func(i, j int) bool {
			return keyed[i].cost < keyed[j].cost
		})
		for i, k := range keyed {
			out[i] = k.recipe
		}
	}
	return out
}

// Stations returns "all" followed by each distinct station in first seen order
func Stations(recipes []models.Recipe) []string {
	out := []string{models.StationAll}
	seen := make(map[string]bool)
	for _, r := range recipes {
		if seen[r.PrepStation] {
			continue
		}
		seen[r.PrepStation] = true
		out = append(out, r.PrepStation)
	}
	return out
}
