package model

import (
	"time"
)

const (
	TrackingStatusActive   = "active"
	TrackingStatusInactive = "inactive"
)

// AssessmentTracking flags which assessment is currently the active one.
// Activating an entry deactivates every other row first.
type AssessmentTracking struct {
	AssessmentID string    `json:"assessment_id" gorm:"primarykey"`
	ActiveStatus string    `json:"active_status" gorm:"not null;default:'inactive'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
