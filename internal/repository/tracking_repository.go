package repository

import (
	"errors"

	"github.com/lshigami/Quolls/internal/model"
	"gorm.io/gorm"
)

type TrackingRepository interface {
	Create(entry *model.AssessmentTracking) error
	Update(entry *model.AssessmentTracking) error
	FindByID(assessmentID string) (*model.AssessmentTracking, error)
	FindAll() ([]model.AssessmentTracking, error)
	// DeactivateAll flips every active entry to inactive. Used before a new
	// entry is activated so that at most one stays active.
	DeactivateAll() error
}

type trackingRepository struct {
	db *gorm.DB
}

func NewTrackingRepository(db *gorm.DB) TrackingRepository {
	return &trackingRepository{db: db}
}

func (r *trackingRepository) Create(entry *model.AssessmentTracking) error {
	return r.db.Create(entry).Error
}

func (r *trackingRepository) Update(entry *model.AssessmentTracking) error {
	res := r.db.Model(&model.AssessmentTracking{}).
		Where("assessment_id = ?", entry.AssessmentID).
		Update("active_status", entry.ActiveStatus)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *trackingRepository) FindByID(assessmentID string) (*model.AssessmentTracking, error) {
	var entry model.AssessmentTracking
	err := r.db.First(&entry, "assessment_id = ?", assessmentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *trackingRepository) FindAll() ([]model.AssessmentTracking, error) {
	var entries []model.AssessmentTracking
	err := r.db.Order("assessment_id ASC").Find(&entries).Error
	return entries, err
}

func (r *trackingRepository) DeactivateAll() error {
	return r.db.Model(&model.AssessmentTracking{}).
		Where("active_status = ?", model.TrackingStatusActive).
		Update("active_status", model.TrackingStatusInactive).Error
}
