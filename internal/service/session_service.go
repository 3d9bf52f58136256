package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/Quolls/internal/model"
	"github.com/lshigami/Quolls/internal/repository"
	"github.com/rs/zerolog/log"
)

// openRetries bounds the read-decide-write cycle when a concurrent open or
// submit wins the conditional write.
const openRetries = 3

// SessionService decides, per attempt key, whether an open request starts a
// new attempt, resumes the in-progress one, begins a fresh retry generation,
// or is rejected. Edit mode and practice sets are stateless previews: no
// attempt record is consulted or created.
type SessionService interface {
	OpenSession(ctx context.Context, userID, assessmentID, contentID, versionKey string, editMode bool) (*model.Snapshot, error)
}

type sessionService struct {
	loader       DefinitionLoader
	attemptRepo  repository.AttemptRepository
	retakePolicy RetakePolicyService
	nowFn        func() time.Time
}

func NewSessionService(loader DefinitionLoader, attemptRepo repository.AttemptRepository, retakePolicy RetakePolicyService) SessionService {
	return &sessionService{
		loader:       loader,
		attemptRepo:  attemptRepo,
		retakePolicy: retakePolicy,
		nowFn:        time.Now,
	}
}

func (s *sessionService) OpenSession(ctx context.Context, userID, assessmentID, contentID, versionKey string, editMode bool) (*model.Snapshot, error) {
	if userID == "" {
		return nil, ErrAuthenticationFailure
	}
	if assessmentID == "" || (!editMode && (contentID == "" || versionKey == "")) {
		return nil, ErrInvalidRequest
	}

	def, err := s.loader.Load(ctx, assessmentID, editMode)
	if err != nil {
		return nil, err
	}

	if editMode || def.IsPracticeSet() {
		return model.BuildSnapshot(def), nil
	}

	key := model.AttemptKey{UserID: userID, AssessmentID: assessmentID, ContentID: contentID, VersionKey: versionKey}

	for i := 0; i < openRetries; i++ {
		now := s.nowFn()
		rec, err := s.attemptRepo.FindLatest(key)
		if err != nil {
			log.Error().Err(err).Str("userID", userID).Str("assessmentID", assessmentID).Msg("Failed to read attempt record")
			return nil, fmt.Errorf("%w: %v", ErrWriteFailure, err)
		}

		var snap *model.Snapshot
		switch {
		case rec == nil:
			snap, err = s.startAttempt(key, def, now, nil)

		case rec.Status == model.StatusNotSubmitted && now.Before(rec.EndTime):
			// Ongoing attempt: resume the frozen snapshot, patching only the
			// display window to (now, stored end). The record is not rewritten.
			snap, err = model.UnmarshalSnapshot(rec.QuestionSetJSON)
			if err != nil {
				log.Error().Err(err).Uint("attemptID", rec.ID).Msg("Stored snapshot is unreadable")
				return nil, fmt.Errorf("%w: %v", ErrWriteFailure, err)
			}
			return snap.WithWindow(now, rec.EndTime), nil

		case rec.Submitted() || !now.Before(rec.EndTime):
			// Submitted before the window closed, or the window has passed:
			// a fresh generation, subject to the retake budget.
			exceeded, perr := s.retakePolicy.Exceeded(userID, def)
			if perr != nil {
				return nil, fmt.Errorf("%w: %v", ErrWriteFailure, perr)
			}
			if exceeded {
				log.Info().Str("userID", userID).Str("assessmentID", assessmentID).Msg("Retake attempts crossed")
				return nil, ErrRetryLimitExceeded
			}
			snap, err = s.startAttempt(key, def, now, rec)

		default:
			return nil, ErrAttemptStateUnresolved
		}

		if errors.Is(err, repository.ErrConflict) {
			log.Warn().Str("userID", userID).Str("assessmentID", assessmentID).Int("retry", i+1).Msg("Concurrent open detected, retrying decision cycle")
			continue
		}
		if err != nil {
			return nil, err
		}
		return snap, nil
	}
	return nil, ErrPersistenceConflict
}

// startAttempt freezes a new snapshot and writes the attempt generation. When
// prior is a still-active but expired row it is overwritten in place; a
// submitted prior (or none) gets a new row. Both writes are conditional and
// surface repository.ErrConflict to the caller's retry loop.
func (s *sessionService) startAttempt(key model.AttemptKey, def *model.AssessmentDefinition, now time.Time, prior *model.AttemptRecord) (*model.Snapshot, error) {
	if def.ExpectedDuration <= 0 {
		return nil, ErrInvalidDuration
	}
	end := now.Add(time.Duration(def.ExpectedDuration) * time.Second)

	snap := model.BuildSnapshot(def).WithWindow(now, end)
	raw, err := snap.Marshal()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}

	rec := &model.AttemptRecord{
		UserID:          key.UserID,
		AssessmentID:    key.AssessmentID,
		ContentID:       key.ContentID,
		VersionKey:      key.VersionKey,
		StartTime:       now,
		EndTime:         end,
		QuestionSetJSON: raw,
	}

	if prior != nil && prior.Status == model.StatusNotSubmitted {
		err = s.attemptRepo.RefreshActive(prior.ID, now, rec)
	} else {
		err = s.attemptRepo.CreateActive(rec)
	}
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, err
		}
		log.Error().Err(err).Str("userID", key.UserID).Str("assessmentID", key.AssessmentID).Msg("Failed to persist attempt generation")
		return nil, fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}

	log.Info().Str("userID", key.UserID).Str("assessmentID", key.AssessmentID).Time("end", end).Msg("Attempt generation started")
	return snap, nil
}
