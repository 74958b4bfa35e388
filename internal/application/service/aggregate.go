package service

import (
	"sort"

	"github.com/bizscale/bizscale-api/internal/domain/entity"
	"github.com/bizscale/bizscale-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// ComputeSnapshot derives the ledger totals. Always recomputed from the full
// entry list; an empty ledger yields zeros.
func ComputeSnapshot(txs []entity.Transaction) entity.AggregateSnapshot {
	totalSales := decimal.Zero
	totalExpenses := decimal.Zero
	for _, t := range txs {
		switch t.Type {
		case enum.TransactionTypeSale:
			totalSales = totalSales.Add(t.Amount)
		case enum.TransactionTypeExpense:
			totalExpenses = totalExpenses.Add(t.Amount)
		}
	}
	return entity.AggregateSnapshot{
		TotalSales:    totalSales,
		TotalExpenses: totalExpenses,
		NetProfit:     totalSales.Sub(totalExpenses),
	}
}

// SortForDisplay returns a copy ordered by date descending. The sort is
// stable, so entries sharing a date keep their ledger order (newest-added
// first, since appends prepend). Dates are normalized ISO strings, which
// makes the lexicographic comparison correct.
func SortForDisplay(txs []entity.Transaction) []entity.Transaction {
	out := append([]entity.Transaction(nil), txs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// DailyPoint is one chart-ready bucket of the sales/expenses series.
type DailyPoint struct {
	Date     string          `json:"date"`
	Sales    decimal.Decimal `json:"sales"`
	Expenses decimal.Decimal `json:"expenses"`
}

// DailySeries groups the ledger by date, ascending, for the dashboard chart.
func DailySeries(txs []entity.Transaction) []DailyPoint {
	byDate := make(map[string]*DailyPoint)
	for _, t := range txs {
		p, ok := byDate[t.Date]
		if !ok {
			p = &DailyPoint{Date: t.Date, Sales: decimal.Zero, Expenses: decimal.Zero}
			byDate[t.Date] = p
		}
		switch t.Type {
		case enum.TransactionTypeSale:
			p.Sales = p.Sales.Add(t.Amount)
		case enum.TransactionTypeExpense:
			p.Expenses = p.Expenses.Add(t.Amount)
		}
	}

	out := make([]DailyPoint, 0, len(byDate))
	for _, p := range byDate {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
