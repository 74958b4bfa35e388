// Package taxonomy holds the static business-model registry: for each
// supported business type, its display label, the module set it unlocks and
// the KPI labels its dashboard shows. The registry is fixed at build time and
// never mutated.
package taxonomy

import "github.com/bizscale/bizscale-api/internal/domain/enum"

// Model describes one business type.
type Model struct {
	Type    enum.BusinessType `json:"type"`
	Label   string            `json:"label"`
	Modules []string          `json:"modules"`
	// Metrics are descriptive KPI labels only. No computation is attached to
	// them anywhere in the system.
	Metrics []string `json:"metrics"`
}

var models = map[enum.BusinessType]Model{
	enum.BusinessTypeFruitVegetable: {
		Type:    enum.BusinessTypeFruitVegetable,
		Label:   "Fruit & Vegetable Vendor",
		Modules: []string{"Finance", "Inventory", "Wastage Tracking"},
		Metrics: []string{"Daily Profit", "Wastage Rate", "Top Seller"},
	},
	enum.BusinessTypeRetailShop: {
		Type:    enum.BusinessTypeRetailShop,
		Label:   "Small Retail Shop",
		Modules: []string{"Finance", "Inventory", "Suppliers"},
		Metrics: []string{"Sales Growth", "Stock Value", "Profit Margin"},
	},
	enum.BusinessTypeGroceryStore: {
		Type:    enum.BusinessTypeGroceryStore,
		Label:   "Grocery / Super Store",
		Modules: []string{"Finance", "Inventory", "Employees", "Barcode"},
		Metrics: []string{"Batch Expiry", "Daily Footfall", "Revenue"},
	},
	enum.BusinessTypeRestaurant: {
		Type:    enum.BusinessTypeRestaurant,
		Label:   "Restaurant / Cafe",
		Modules: []string{"Finance", "Inventory", "Kitchen", "Menu Management"},
		Metrics: []string{"Table Turnover", "Ingredient Cost", "Order Volume"},
	},
	enum.BusinessTypeServiceBusiness: {
		Type:    enum.BusinessTypeServiceBusiness,
		Label:   "Service Business (Salon, Repair)",
		Modules: []string{"Finance", "Appointments", "Employees"},
		Metrics: []string{"Client Retention", "Service Efficiency", "Commission"},
	},
	enum.BusinessTypeRealEstate: {
		Type:    enum.BusinessTypeRealEstate,
		Label:   "Property / Real Estate",
		Modules: []string{"Finance", "Tenants", "Assets"},
		Metrics: []string{"Occupancy Rate", "Maintenance Cost", "Net Yield"},
	},
	enum.BusinessTypeLogistics: {
		Type:    enum.BusinessTypeLogistics,
		Label:   "Transport / Logistics",
		Modules: []string{"Finance", "Vehicles", "Fuel Tracking", "Employees"},
		Metrics: []string{"Cost per KM", "Maintenance ROI", "Fuel Efficiency"},
	},
	enum.BusinessTypeManufacturing: {
		Type:    enum.BusinessTypeManufacturing,
		Label:   "Manufacturing Unit",
		Modules: []string{"Finance", "Inventory", "Production", "Employees"},
		Metrics: []string{"Unit Cost", "Defect Rate", "Throughput"},
	},
	enum.BusinessTypeWholesale: {
		Type:    enum.BusinessTypeWholesale,
		Label:   "Wholesale Distributor",
		Modules: []string{"Finance", "Bulk Inventory", "Invoices", "Credit Management"},
		Metrics: []string{"Credit Exposure", "Bulk Turn", "Margin Analysis"},
	},
	enum.BusinessTypeIndustrial: {
		Type:    enum.BusinessTypeIndustrial,
		Label:   "Large Industrial Enterprise",
		Modules: []string{"Finance", "Assets", "Payroll", "Compliance"},
		Metrics: []string{"Asset Depreciation", "Department Efficiency", "EBITDA"},
	},
}

// Lookup returns the model for a business type. The second return is false
// for unrecognized types; callers are expected to handle absence, typically
// by falling back to an empty module set. Returned slices are copies, so the
// registry cannot be mutated through them.
func Lookup(t enum.BusinessType) (Model, bool) {
	m, ok := models[t]
	if !ok {
		return Model{}, false
	}
	m.Modules = append([]string(nil), m.Modules...)
	m.Metrics = append([]string(nil), m.Metrics...)
	return m, true
}

// ModulesFor returns the module set for a business type, or an empty set for
// an unrecognized type.
func ModulesFor(t enum.BusinessType) []string {
	m, ok := Lookup(t)
	if !ok {
		return []string{}
	}
	return m.Modules
}

// MetricsFor returns the KPI labels for a business type, or an empty set for
// an unrecognized type.
func MetricsFor(t enum.BusinessType) []string {
	m, ok := Lookup(t)
	if !ok {
		return []string{}
	}
	return m.Metrics
}

// All returns every registered model in onboarding display order.
func All() []Model {
	out := make([]Model, 0, len(models))
	for _, t := range enum.BusinessTypes {
		m, _ := Lookup(t)
		out = append(out, m)
	}
	return out
}
