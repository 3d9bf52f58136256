package dto

import "github.com/lshigami/Quolls/internal/model"

// QuestionSetResponse carries the snapshot served for an open/read request.
type QuestionSetResponse struct {
	QuestionSet *model.Snapshot `json:"questionSet"`
}

// SectionResultDTO is the per-section summary returned on submit.
type SectionResultDTO struct {
	Identifier        string   `json:"identifier"`
	PrimaryCategory   string   `json:"primaryCategory,omitempty"`
	Name              string   `json:"name"`
	PassPercentage    float64  `json:"passPercentage"`
	MaxUserScore      *float64 `json:"maxUserScore,omitempty"`
	MaxWeightedScore  float64  `json:"maxWeightedScore"`
	UserWeightedScore float64  `json:"userWeightedScore"`
	Blank             int      `json:"blank"`
}

// SubmitResponse is the outcome of a scored submission.
type SubmitResponse struct {
	Result []SectionResultDTO `json:"result"`
}

// ResultReadResponse is the result-read payload: either the persisted
// submission outcome or an in-progress marker.
type ResultReadResponse struct {
	StatusIsInProgress bool               `json:"statusIsInProgress,omitempty"`
	Result             []SectionResultDTO `json:"result,omitempty"`
}

// TrackingResponseDTO is one assessment tracking entry.
type TrackingResponseDTO struct {
	AssessmentID string `json:"assessmentId"`
	ActiveStatus string `json:"activeStatus"`
}

// ErrorResponse is the structured failure envelope for every endpoint.
type ErrorResponse struct {
	Code    string   `json:"code,omitempty"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
