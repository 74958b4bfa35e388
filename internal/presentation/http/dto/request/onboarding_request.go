package request

// CompleteOnboardingRequest represents the onboarding form submission.
// Modules may be omitted; the business model's default set is applied.
type CompleteOnboardingRequest struct {
	Name     string   `json:"name" binding:"required,min=1,max=255"`
	Type     string   `json:"type" binding:"required"`
	Currency string   `json:"currency" binding:"required,min=1,max=8"`
	Modules  []string `json:"modules"`
}
