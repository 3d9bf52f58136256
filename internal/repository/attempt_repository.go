package repository

import (
	"errors"
	"time"

	"github.com/lshigami/Quolls/internal/model"
	"gorm.io/gorm"
)

// ErrConflict is returned when a conditional write loses to a concurrent
// writer: either the partial unique index rejected a second active attempt, or
// a guarded UPDATE matched zero rows because the record's status changed
// underneath us. Callers retry the read-decide-write cycle.
var ErrConflict = errors.New("attempt record modified concurrently")

// AttemptRepository is the durable store for attempt generations. Writes are
// conditional: the store, not in-process locking, enforces the single active
// attempt invariant per (user, assessment, content, version) key.
type AttemptRepository interface {
	// FindLatest returns the newest attempt generation for the key, or nil
	// when the user has never opened this assessment version.
	FindLatest(key model.AttemptKey) (*model.AttemptRecord, error)
	// CountSubmitted counts attempt generations carrying a submitted response
	// for (user, assessment) across all content/version keys.
	CountSubmitted(userID, assessmentID string) (int64, error)
	// CreateActive inserts a fresh NOT_SUBMITTED generation. ErrConflict when
	// another active generation already exists for the key.
	CreateActive(rec *model.AttemptRecord) error
	// RefreshActive overwrites an expired NOT_SUBMITTED generation in place
	// with a new snapshot and window. The update is guarded on the row still
	// being NOT_SUBMITTED and still expired; ErrConflict otherwise.
	RefreshActive(id uint, now time.Time, rec *model.AttemptRecord) error
	// MarkSubmitted transitions a generation NOT_SUBMITTED -> SUBMITTED and
	// attaches the response payload in the same write. ErrConflict when the
	// row was already submitted or replaced.
	MarkSubmitted(id uint, responseJSON string) error
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) FindLatest(key model.AttemptKey) (*model.AttemptRecord, error) {
	var rec model.AttemptRecord
	err := r.db.
		Where("user_id = ? AND assessment_id = ? AND content_id = ? AND version_key = ?",
			key.UserID, key.AssessmentID, key.ContentID, key.VersionKey).
		Order("id DESC").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *attemptRepository) CountSubmitted(userID, assessmentID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.AttemptRecord{}).
		Where("user_id = ? AND assessment_id = ?", userID, assessmentID).
		Where("submitted_response_json IS NOT NULL AND submitted_response_json <> ''").
		Count(&count).Error
	return count, err
}

func (r *attemptRepository) CreateActive(rec *model.AttemptRecord) error {
	rec.Status = model.StatusNotSubmitted
	if err := r.db.Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (r *attemptRepository) RefreshActive(id uint, now time.Time, rec *model.AttemptRecord) error {
	res := r.db.Model(&model.AttemptRecord{}).
		Where("id = ? AND status = ? AND end_time <= ?", id, model.StatusNotSubmitted, now).
		Updates(map[string]interface{}{
			"start_time":              rec.StartTime,
			"end_time":                rec.EndTime,
			"question_set_json":       rec.QuestionSetJSON,
			"submitted_response_json": "",
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConflict
	}
	rec.ID = id
	return nil
}

func (r *attemptRepository) MarkSubmitted(id uint, responseJSON string) error {
	res := r.db.Model(&model.AttemptRecord{}).
		Where("id = ? AND status = ?", id, model.StatusNotSubmitted).
		Updates(map[string]interface{}{
			"status":                  model.StatusSubmitted,
			"submitted_response_json": responseJSON,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}
