package enum

// BusinessType identifies one of the fixed business models supported by the
// onboarding flow.
type BusinessType string

const (
	BusinessTypeFruitVegetable  BusinessType = "FRUIT_VEGETABLE"
	BusinessTypeRetailShop      BusinessType = "RETAIL_SHOP"
	BusinessTypeGroceryStore    BusinessType = "GROCERY_STORE"
	BusinessTypeRestaurant      BusinessType = "RESTAURANT"
	BusinessTypeServiceBusiness BusinessType = "SERVICE_BUSINESS"
	BusinessTypeRealEstate      BusinessType = "REAL_ESTATE"
	BusinessTypeLogistics       BusinessType = "LOGISTICS"
	BusinessTypeManufacturing   BusinessType = "MANUFACTURING"
	BusinessTypeWholesale       BusinessType = "WHOLESALE"
	BusinessTypeIndustrial      BusinessType = "INDUSTRIAL"
)

// BusinessTypes lists every supported variant in onboarding display order.
var BusinessTypes = []BusinessType{
	BusinessTypeFruitVegetable,
	BusinessTypeRetailShop,
	BusinessTypeGroceryStore,
	BusinessTypeRestaurant,
	BusinessTypeServiceBusiness,
	BusinessTypeRealEstate,
	BusinessTypeLogistics,
	BusinessTypeManufacturing,
	BusinessTypeWholesale,
	BusinessTypeIndustrial,
}

// Valid reports whether t is one of the supported variants.
func (t BusinessType) Valid() bool {
	for _, known := range BusinessTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t BusinessType) String() string {
	return string(t)
}
