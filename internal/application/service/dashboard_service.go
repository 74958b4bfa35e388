package service

import (
	"context"

	"github.com/bizscale/bizscale-api/internal/domain/entity"
	"github.com/bizscale/bizscale-api/internal/domain/enum"
	"github.com/bizscale/bizscale-api/internal/domain/taxonomy"
	"github.com/bizscale/bizscale-api/pkg/apperror"
)

// DashboardService assembles the dashboard payload: ledger aggregates, the
// business model's module and metric labels, and the daily chart series.
type DashboardService struct {
	state *StateService
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(state *StateService) *DashboardService {
	return &DashboardService{state: state}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	BusinessName     string                   `json:"business_name"`
	BusinessType     enum.BusinessType        `json:"business_type"`
	BusinessLabel    string                   `json:"business_label"`
	Currency         string                   `json:"currency"`
	Totals           entity.AggregateSnapshot `json:"totals"`
	TransactionCount int                      `json:"transaction_count"`
	InventoryCount   int                      `json:"inventory_count"`
	EmployeeCount    int                      `json:"employee_count"`
	Modules          []string                 `json:"modules"`
	// MetricLabels are the business model's KPI labels. They are descriptive
	// only; no values are computed for them.
	MetricLabels []string     `json:"metric_labels"`
	DailySeries  []DailyPoint `json:"daily_series"`
}

// Stats returns dashboard statistics for the configured business.
func (s *DashboardService) Stats(_ context.Context) (*DashboardStats, error) {
	state := s.state.Snapshot()
	if !state.Configured() {
		return nil, apperror.ErrNotConfigured
	}

	cfg := state.BusinessConfig
	stats := &DashboardStats{
		BusinessName:     cfg.Name,
		BusinessType:     cfg.Type,
		Currency:         cfg.Currency,
		Totals:           ComputeSnapshot(state.Transactions),
		TransactionCount: len(state.Transactions),
		InventoryCount:   len(state.Inventory),
		EmployeeCount:    len(state.Employees),
		Modules:          append([]string(nil), cfg.Modules...),
		MetricLabels:     taxonomy.MetricsFor(cfg.Type),
		DailySeries:      DailySeries(state.Transactions),
	}
	if model, ok := taxonomy.Lookup(cfg.Type); ok {
		stats.BusinessLabel = model.Label
	}
	return stats, nil
}
