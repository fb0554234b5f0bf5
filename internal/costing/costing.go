// Package costing derives per-recipe cost figures and dashboard aggregates.
package costing

import (
	"sort"
	"time"

	"github.com/franciscosanchezn/truckplate-api/internal/models"
)

// MarkupMultiplier is applied to the cost per serving to get a suggested menu price
const MarkupMultiplier = 3.5

// RecentInvoiceCount is how many invoices the dashboard lists
const RecentInvoiceCount = 3

// CostPerServing returns the ingredient cost of one serving.
// Recipes with no positive servings count as zero cost.
func CostPerServing(r models.Recipe) float64 {
	if r.Servings <= 0 {
		return 0
	}
	var total float64
	for _, i := range r.Ingredients {
		total += i.Cost * i.Amount
	}
	return total / float64(r.Servings)
}

// SuggestedPrice is the cost per serving times the markup multiplier
func SuggestedPrice(r models.Recipe) float64 {
	return CostPerServing(r) * MarkupMultiplier
}

// Margin returns the profit share of the suggested price as a percentage.
// With a fixed multiplier this is (3.5-1)/3.5*100 for every recipe with a
// positive cost.
func Margin(r models.Recipe) float64 {
	cost := CostPerServing(r)
	price := cost * MarkupMultiplier
	if price == 0 {
		return 0
	}
	return (price - cost) / price * 100
}

// View attaches the derived figures to a recipe
func View(r models.Recipe) models.RecipeView {
	return models.RecipeView{
		Recipe:         r,
		CostPerServing: CostPerServing(r),
		SuggestedPrice: SuggestedPrice(r),
		Margin:         Margin(r),
	}
}

// Views maps View over a list of recipes
func Views(recipes []models.Recipe) []models.RecipeView {
	out := make([]models.RecipeView, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, View(r))
	}
	return out
}

// AverageMargin is the mean margin across recipes, 0 when there are none
func AverageMargin(recipes []models.Recipe) float64 {
	if len(recipes) == 0 {
		return 0
	}
	var sum float64
	for _, r := range recipes {
		sum += Margin(r)
	}
	return sum / float64(len(recipes))
}

// TotalSpent sums the invoice totals
func TotalSpent(invoices []models.Invoice) float64 {
	var sum float64
	for _, inv := range invoices {
		sum += inv.Total
	}
	return sum
}

// RecentInvoices returns up to n invoices, newest date first.
// The input slice is left untouched.
func RecentInvoices(invoices []models.Invoice, n int) []models.Invoice {
	if n <= 0 || len(invoices) == 0 {
		return []models.Invoice{}
	}
	sorted := make([]models.Invoice, len(invoices))
	copy(sorted, invoices)
	sort.SliceStable(sorted, func(i, j int) bool {
		return invoiceTime(sorted[i]).After(invoiceTime(sorted[j]))
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// invoiceTime parses the invoice date; unparseable dates sort last
func invoiceTime(inv models.Invoice) time.Time {
	t, err := time.Parse(models.DateLayout, inv.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
