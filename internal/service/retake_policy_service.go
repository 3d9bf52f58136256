package service

import (
	"fmt"

	"github.com/lshigami/Quolls/internal/model"
	"github.com/lshigami/Quolls/internal/repository"
	"github.com/rs/zerolog/log"
)

// RetakePolicyService decides whether a user may start another attempt
// generation. The first attempt is free: allowed = MaxRetakes + 1.
type RetakePolicyService interface {
	// AttemptsConsumed counts submitted attempt generations for the user and
	// assessment, across all content/version keys historically recorded.
	AttemptsConsumed(userID, assessmentID string) (int, error)
	// Exceeded reports whether a new attempt must be rejected. Definitions
	// without a configured retake limit never reject.
	Exceeded(userID string, def *model.AssessmentDefinition) (bool, error)
}

type retakePolicyService struct {
	attemptRepo repository.AttemptRepository
}

func NewRetakePolicyService(attemptRepo repository.AttemptRepository) RetakePolicyService {
	return &retakePolicyService{attemptRepo: attemptRepo}
}

func (s *retakePolicyService) AttemptsConsumed(userID, assessmentID string) (int, error) {
	count, err := s.attemptRepo.CountSubmitted(userID, assessmentID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Str("assessmentID", assessmentID).Msg("Failed to count submitted attempts")
		return 0, fmt.Errorf("counting submitted attempts: %w", err)
	}
	return int(count), nil
}

func (s *retakePolicyService) Exceeded(userID string, def *model.AssessmentDefinition) (bool, error) {
	if def.MaxRetakes == nil {
		return false, nil
	}
	allowed := *def.MaxRetakes + 1
	consumed, err := s.AttemptsConsumed(userID, def.Identifier)
	if err != nil {
		return false, err
	}
	return consumed >= allowed, nil
}
