package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lshigami/Quolls/internal/dto"
	"github.com/lshigami/Quolls/internal/model"
	"github.com/lshigami/Quolls/internal/repository"
	"github.com/rs/zerolog/log"
)

// ResultService returns the persisted outcome of a user's latest attempt.
// Until a new generation replaces it, repeated reads of a submitted attempt
// always return the same stored payload.
type ResultService interface {
	ReadResult(ctx context.Context, userID string, req dto.ResultReadRequestDTO) (*dto.ResultReadResponse, error)
}

type resultService struct {
	attemptRepo repository.AttemptRepository
}

func NewResultService(attemptRepo repository.AttemptRepository) ResultService {
	return &resultService{attemptRepo: attemptRepo}
}

func (s *resultService) ReadResult(ctx context.Context, userID string, req dto.ResultReadRequestDTO) (*dto.ResultReadResponse, error) {
	if userID == "" {
		return nil, ErrAuthenticationFailure
	}
	if req.AssessmentID == "" || req.BatchID == "" || req.CourseID == "" {
		return nil, ErrInvalidRequest
	}

	key := model.AttemptKey{
		UserID:       userID,
		AssessmentID: req.AssessmentID,
		ContentID:    req.CourseID,
		VersionKey:   req.BatchID,
	}
	rec, err := s.attemptRepo.FindLatest(key)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Str("assessmentID", req.AssessmentID).Msg("Failed to read attempt record for result")
		return nil, fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	if rec == nil {
		return nil, ErrUserDataNotPresent
	}
	if !rec.Submitted() {
		return &dto.ResultReadResponse{StatusIsInProgress: true}, nil
	}

	var stored model.ScoreResult
	if err := json.Unmarshal([]byte(rec.SubmittedResponseJSON), &stored); err != nil {
		log.Error().Err(err).Uint("attemptID", rec.ID).Msg("Stored submission payload is unreadable")
		return nil, fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}

	resp := &dto.ResultReadResponse{Result: make([]dto.SectionResultDTO, 0, len(stored.Sections))}
	for _, sec := range stored.Sections {
		resp.Result = append(resp.Result, dto.SectionResultDTO{
			Identifier:        sec.Identifier,
			PrimaryCategory:   sec.PrimaryCategory,
			Name:              sec.Name,
			PassPercentage:    sec.PassPercentage,
			MaxUserScore:      sec.MaxUserScore,
			MaxWeightedScore:  sec.MaxWeightedScore,
			UserWeightedScore: sec.UserWeightedScore,
			Blank:             sec.Blank,
		})
	}
	return resp, nil
}
