package entity

import "github.com/bizscale/bizscale-api/internal/domain/enum"

// BusinessConfig is the configuration captured once at onboarding. It is
// immutable afterwards; the only way to get rid of it is the explicit reset
// action, which nulls it out on the application state.
type BusinessConfig struct {
	Name     string            `json:"name"`
	Type     enum.BusinessType `json:"type"`
	Currency string            `json:"currency"`
	Modules  []string          `json:"modules"`
}

// HasModule reports whether the named module is enabled for this business.
func (c *BusinessConfig) HasModule(name string) bool {
	for _, m := range c.Modules {
		if m == name {
			return true
		}
	}
	return false
}
