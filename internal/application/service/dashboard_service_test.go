package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bizscale/bizscale-api/internal/domain/enum"
	"github.com/bizscale/bizscale-api/internal/infrastructure/store"
	"github.com/bizscale/bizscale-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

func TestStatsRequiresConfiguration(t *testing.T) {
	state := NewStateService(store.NewMemoryStore(), true)
	if err := state.Init(context.Background()); err != nil {
		t.Fatal(err)
	}

	_, err := NewDashboardService(state).Stats(context.Background())
	if !errors.Is(err, apperror.ErrNotConfigured) {
		t.Fatalf("error = %v, want ErrNotConfigured", err)
	}
}

func TestStats(t *testing.T) {
	state, _ := newActiveState(t)
	ledger := NewLedgerService(state, &recordingPublisher{})
	ctx := context.Background()

	for _, in := range []AppendEntryInput{
		sale("100", "2026-08-20"),
		sale("50", "2026-08-21"),
		expense("40", "2026-08-20"),
	} {
		if _, err := ledger.Append(ctx, in); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := NewDashboardService(state).Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if stats.BusinessName != "Corner Cafe" || stats.BusinessType != enum.BusinessTypeRestaurant {
		t.Errorf("business identity = %q/%s", stats.BusinessName, stats.BusinessType)
	}
	if stats.BusinessLabel != "Restaurant / Cafe" {
		t.Errorf("BusinessLabel = %q", stats.BusinessLabel)
	}
	if !stats.Totals.NetProfit.Equal(decimal.NewFromInt(110)) {
		t.Errorf("NetProfit = %s, want 110", stats.Totals.NetProfit)
	}
	if stats.TransactionCount != 3 {
		t.Errorf("TransactionCount = %d, want 3", stats.TransactionCount)
	}
	if len(stats.MetricLabels) == 0 {
		t.Error("MetricLabels empty for a registered business type")
	}

	// Daily series: two dates, ascending, with the 2026-08-20 bucket holding
	// both the sale and the expense.
	if len(stats.DailySeries) != 2 {
		t.Fatalf("DailySeries has %d points, want 2: %+v", len(stats.DailySeries), stats.DailySeries)
	}
	first := stats.DailySeries[0]
	if first.Date != "2026-08-20" || !first.Sales.Equal(decimal.NewFromInt(100)) || !first.Expenses.Equal(decimal.NewFromInt(40)) {
		t.Errorf("first daily point = %+v", first)
	}
	if stats.DailySeries[1].Date != "2026-08-21" {
		t.Errorf("second daily point date = %q", stats.DailySeries[1].Date)
	}
}
