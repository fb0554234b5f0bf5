package costing

import (
	"github.com/franciscosanchezn/truckplate-api/internal/format"
	"github.com/franciscosanchezn/truckplate-api/internal/models"
)

// Stats are the aggregates shown on the dashboard
type Stats struct {
	TotalRecipes       int              `json:"totalRecipes"`
	TotalInvoices      int              `json:"totalInvoices"`
	AverageMargin      float64          `json:"averageMargin"`
	AverageMarginLabel string           `json:"averageMarginLabel"`
	TotalSpent         float64          `json:"totalSpent"`
	TotalSpentLabel    string           `json:"totalSpentLabel"`
	RecentInvoices     []models.Invoice `json:"recentInvoices"`
}

// Dashboard computes the dashboard aggregates for the given collections
func Dashboard(recipes []models.Recipe, invoices []models.Invoice) Stats {
	avg := AverageMargin(recipes)
	spent := TotalSpent(invoices)
	return Stats{
		TotalRecipes:       len(recipes),
		TotalInvoices:      len(invoices),
		AverageMargin:      avg,
		AverageMarginLabel: format.Percent(avg),
		TotalSpent:         spent,
		TotalSpentLabel:    format.Currency(spent),
		RecentInvoices:     RecentInvoices(invoices, RecentInvoiceCount),
	}
}
