package services

import (
	"github.com/franciscosanchezn/truckplate-api/internal/costing"
	"github.com/franciscosanchezn/truckplate-api/internal/state"
)

// DashboardService computes the headline figures
type DashboardService interface {
	GetStats() costing.Stats
}

type dashboardService struct {
	store *state.Store
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(store *state.Store) DashboardService {
	return &dashboardService{store: store}
}

func (s *dashboardService) GetStats() costing.Stats {
	snap := s.store.Snapshot()
	return costing.Dashboard(snap.Recipes, snap.Invoices)
}
