package entity

// Insight is the structured reply from the generative insight service.
type Insight struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}
