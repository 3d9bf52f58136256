package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusNotSubmitted = "NOT_SUBMITTED"
	StatusSubmitted    = "SUBMITTED"
)

// AttemptKey is the composite identity of one user's engagement with an
// assessment version.
type AttemptKey struct {
	UserID       string
	AssessmentID string
	ContentID    string
	VersionKey   string
}

// AttemptRecord is one attempt generation. Rows are only ever inserted or
// conditionally updated; at most one NOT_SUBMITTED row may exist per key,
// enforced by a partial unique index created during migration.
type AttemptRecord struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	UserID       string `json:"user_id" gorm:"not null;index:idx_attempt_key;index:idx_attempt_user_assessment"`
	AssessmentID string `json:"assessment_id" gorm:"not null;index:idx_attempt_key;index:idx_attempt_user_assessment"`
	ContentID    string `json:"content_id" gorm:"not null;index:idx_attempt_key"`
	VersionKey   string `json:"version_key" gorm:"not null;index:idx_attempt_key"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status" gorm:"not null;default:'NOT_SUBMITTED'"`

	// QuestionSetJSON is the frozen snapshot served for this generation.
	QuestionSetJSON string `json:"question_set_json" gorm:"type:text"`
	// SubmittedResponseJSON is empty until the attempt is submitted.
	SubmittedResponseJSON string `json:"submitted_response_json,omitempty" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Key rebuilds the composite key from the stored columns.
func (r *AttemptRecord) Key() AttemptKey {
	return AttemptKey{
		UserID:       r.UserID,
		AssessmentID: r.AssessmentID,
		ContentID:    r.ContentID,
		VersionKey:   r.VersionKey,
	}
}

// Submitted reports whether this generation already holds a submission.
func (r *AttemptRecord) Submitted() bool {
	return r.Status == StatusSubmitted
}
