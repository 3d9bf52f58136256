package model

// SectionResult is the scored outcome for one section of a submitted attempt.
// MaxUserScore is the normalized ratio user/max and is only populated when the
// user weighted score is positive.
type SectionResult struct {
	Identifier        string   `json:"identifier"`
	PrimaryCategory   string   `json:"primaryCategory,omitempty"`
	Name              string   `json:"name"`
	PassPercentage    float64  `json:"passPercentage"`
	MaxUserScore      *float64 `json:"maxUserScore,omitempty"`
	MaxWeightedScore  float64  `json:"maxWeightedScore"`
	UserWeightedScore float64  `json:"userWeightedScore"`
	Blank             int      `json:"blank"`
}

// ScoreResult is the full submission outcome persisted with the attempt.
type ScoreResult struct {
	Sections []SectionResult `json:"result"`
}
