package entity

import (
	"github.com/bizscale/bizscale-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used by transaction dates. Ledger
// ordering relies on lexicographic comparison, which is only correct for
// zero-padded ISO dates, so every date is normalized to this layout on entry.
const DateLayout = "2006-01-02"

// Transaction is a single ledger entry. Entries are append-only: once
// recorded they are never updated or deleted.
type Transaction struct {
	ID          string               `json:"id"`
	Date        string               `json:"date"`
	Type        enum.TransactionType `json:"type"`
	Category    string               `json:"category"`
	Amount      decimal.Decimal      `json:"amount"`
	Description string               `json:"description"`
	Quantity    *float64             `json:"quantity,omitempty"`
	Unit        *string              `json:"unit,omitempty"`
}

// AggregateSnapshot holds the totals derived from a ledger. It is always
// recomputed from the full entry list, never stored.
type AggregateSnapshot struct {
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
}
