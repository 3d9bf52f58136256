package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Quolls/internal/dto"
	"github.com/lshigami/Quolls/internal/model"
	"github.com/lshigami/Quolls/internal/repository"
	"github.com/rs/zerolog/log"
)

// TrackingService manages which assessment is flagged active. At most one
// entry may be active at a time; activating an entry deactivates the rest.
type TrackingService interface {
	Create(req dto.TrackingUpsertDTO) (*dto.TrackingResponseDTO, error)
	Update(assessmentID string, req dto.TrackingUpdateDTO) (*dto.TrackingResponseDTO, error)
	Get(assessmentID string) (*dto.TrackingResponseDTO, error)
	List() ([]dto.TrackingResponseDTO, error)
}

type trackingService struct {
	trackingRepo repository.TrackingRepository
}

func NewTrackingService(trackingRepo repository.TrackingRepository) TrackingService {
	return &trackingService{trackingRepo: trackingRepo}
}

func (s *trackingService) Create(req dto.TrackingUpsertDTO) (*dto.TrackingResponseDTO, error) {
	if err := s.deactivateOthersIfActivating(req.ActiveStatus); err != nil {
		return nil, err
	}
	entry := &model.AssessmentTracking{AssessmentID: req.AssessmentID, ActiveStatus: req.ActiveStatus}
	if err := s.trackingRepo.Create(entry); err != nil {
		log.Error().Err(err).Str("assessmentID", req.AssessmentID).Msg("Failed to create tracking entry")
		return nil, fmt.Errorf("creating tracking entry: %w", err)
	}
	return toTrackingDTO(entry)
}

func (s *trackingService) Update(assessmentID string, req dto.TrackingUpdateDTO) (*dto.TrackingResponseDTO, error) {
	if err := s.deactivateOthersIfActivating(req.ActiveStatus); err != nil {
		return nil, err
	}
	entry := &model.AssessmentTracking{AssessmentID: assessmentID, ActiveStatus: req.ActiveStatus}
	if err := s.trackingRepo.Update(entry); err != nil {
		log.Error().Err(err).Str("assessmentID", assessmentID).Msg("Failed to update tracking entry")
		return nil, ErrTrackingNotFound
	}
	return toTrackingDTO(entry)
}

func (s *trackingService) Get(assessmentID string) (*dto.TrackingResponseDTO, error) {
	entry, err := s.trackingRepo.FindByID(assessmentID)
	if err != nil {
		log.Error().Err(err).Str("assessmentID", assessmentID).Msg("Failed to read tracking entry")
		return nil, fmt.Errorf("reading tracking entry: %w", err)
	}
	if entry == nil {
		return nil, ErrTrackingNotFound
	}
	return toTrackingDTO(entry)
}

func (s *trackingService) List() ([]dto.TrackingResponseDTO, error) {
	entries, err := s.trackingRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list tracking entries")
		return nil, fmt.Errorf("listing tracking entries: %w", err)
	}
	dtos := make([]dto.TrackingResponseDTO, 0, len(entries))
	for i := range entries {
		d, err := toTrackingDTO(&entries[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *d)
	}
	return dtos, nil
}

func (s *trackingService) deactivateOthersIfActivating(status string) error {
	if status != model.TrackingStatusActive {
		return nil
	}
	if err := s.trackingRepo.DeactivateAll(); err != nil {
		log.Error().Err(err).Msg("Failed to deactivate existing tracking entries")
		return fmt.Errorf("deactivating tracking entries: %w", err)
	}
	return nil
}

func toTrackingDTO(entry *model.AssessmentTracking) (*dto.TrackingResponseDTO, error) {
	var d dto.TrackingResponseDTO
	if err := copier.Copy(&d, entry); err != nil {
		return nil, fmt.Errorf("copying tracking entry: %w", err)
	}
	return &d, nil
}
