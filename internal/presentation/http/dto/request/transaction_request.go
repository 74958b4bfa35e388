package request

import "github.com/shopspring/decimal"

// CreateTransactionRequest represents a ledger-entry form submission. Date is
// optional and defaults to today; amount is decoded as a decimal so monetary
// values survive the wire exactly.
type CreateTransactionRequest struct {
	Type        string           `json:"type" binding:"required"`
	Date        string           `json:"date"`
	Category    string           `json:"category" binding:"required,min=1,max=255"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Description string           `json:"description" binding:"max=1000"`
	Quantity    *float64         `json:"quantity"`
	Unit        *string          `json:"unit"`
}

// SelectViewRequest selects the active dashboard view.
type SelectViewRequest struct {
	View string `json:"view" binding:"required"`
}
