package entity

import "github.com/shopspring/decimal"

// InventoryItem is a stocked item. The inventory module itself is a future
// feature; the list is carried in the persisted state and its size feeds the
// insights prompt.
type InventoryItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Stock        float64         `json:"stock"`
	Unit         string          `json:"unit"`
	MinStock     float64         `json:"min_stock"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	ExpiryDate   *string         `json:"expiry_date,omitempty"`
}
