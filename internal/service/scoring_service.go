package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/Quolls/config"
	"github.com/lshigami/Quolls/internal/dto"
	"github.com/lshigami/Quolls/internal/model"
	"github.com/lshigami/Quolls/internal/repository"
	"github.com/rs/zerolog/log"
)

// ScoringService validates a submission against the frozen snapshot and
// computes weighted-option section scores. The write that attaches the result
// and the SUBMITTED transition are one conditional update.
type ScoringService interface {
	Submit(ctx context.Context, userID string, req dto.SubmitRequestDTO, editMode bool) (*model.ScoreResult, error)
}

type scoringService struct {
	loader      DefinitionLoader
	attemptRepo repository.AttemptRepository
	grace       time.Duration
	nowFn       func() time.Time
}

func NewScoringService(cfg *config.Config, loader DefinitionLoader, attemptRepo repository.AttemptRepository) ScoringService {
	return &scoringService{
		loader:      loader,
		attemptRepo: attemptRepo,
		grace:       time.Duration(cfg.Assessment.SubmissionGraceSeconds) * time.Second,
		nowFn:       time.Now,
	}
}

func (s *scoringService) Submit(ctx context.Context, userID string, req dto.SubmitRequestDTO, editMode bool) (*model.ScoreResult, error) {
	if userID == "" {
		return nil, ErrAuthenticationFailure
	}
	if req.Identifier == "" {
		return nil, ErrInvalidRequest
	}

	def, err := s.loader.Load(ctx, req.Identifier, editMode)
	if err != nil {
		return nil, err
	}

	// Practice sets and edit mode are stateless: score against the live
	// definition and never persist.
	if editMode || def.IsPracticeSet() {
		snap := model.BuildSnapshot(def)
		return s.score(def, snap, req)
	}

	key := model.AttemptKey{UserID: userID, AssessmentID: req.Identifier, ContentID: req.ContentID, VersionKey: req.VersionKey}
	rec, err := s.attemptRepo.FindLatest(key)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Str("assessmentID", req.Identifier).Msg("Failed to read attempt record for submit")
		return nil, fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	if rec == nil {
		return nil, ErrUserDataNotPresent
	}
	if rec.StartTime.IsZero() {
		return nil, ErrReadStartTimeFailed
	}

	// Deadline check uses start + duration + grace; the grace buffer never
	// widens the end time served to the client.
	deadline := rec.StartTime.Add(time.Duration(def.ExpectedDuration)*time.Second + s.grace)
	if s.nowFn().After(deadline) {
		log.Info().Str("userID", userID).Str("assessmentID", req.Identifier).Time("deadline", deadline).Msg("Submission window expired")
		return nil, ErrSubmissionExpired
	}

	snap, err := model.UnmarshalSnapshot(rec.QuestionSetJSON)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", rec.ID).Msg("Stored snapshot is unreadable")
		return nil, fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	if err := validateStructure(snap, req); err != nil {
		return nil, err
	}

	result, err := s.score(def, snap, req)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	if err := s.attemptRepo.MarkSubmitted(rec.ID, string(raw)); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrPersistenceConflict
		}
		log.Error().Err(err).Uint("attemptID", rec.ID).Msg("Failed to persist submission")
		return nil, fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}

	log.Info().Str("userID", userID).Str("assessmentID", req.Identifier).Int("sections", len(result.Sections)).Msg("Assessment submitted")
	return result, nil
}

// validateStructure enforces that the submission references only sections and
// questions recorded in the frozen snapshot.
func validateStructure(snap *model.Snapshot, req dto.SubmitRequestDTO) error {
	sectionIDs := make(map[string]struct{}, len(snap.Sections))
	for _, sec := range snap.Sections {
		sectionIDs[sec.Identifier] = struct{}{}
	}
	for _, sec := range req.Children {
		if _, ok := sectionIDs[sec.Identifier]; !ok {
			return ErrWrongSectionDetails
		}
	}

	served := snap.ServedQuestionIDs()
	for _, sec := range req.Children {
		for _, q := range sec.Children {
			if _, ok := served[q.Identifier]; !ok {
				return ErrInvalidQuestion
			}
		}
	}
	return nil
}

// score walks the snapshot's sections and computes the weighted-option result
// for each section the user submitted.
func (s *scoringService) score(def *model.AssessmentDefinition, snap *model.Snapshot, req dto.SubmitRequestDTO) (*model.ScoreResult, error) {
	switch def.AssessmentType {
	case model.AssessmentTypeOptionWeightage:
		// scored below
	case model.AssessmentTypePlain:
		// Persisted but carries no rubric: report the section shells only.
		result := &model.ScoreResult{}
		for _, sec := range snap.Sections {
			result.Sections = append(result.Sections, model.SectionResult{
				Identifier:      sec.Identifier,
				PrimaryCategory: sec.PrimaryCategory,
				Name:            sec.Name,
				PassPercentage:  sec.MinimumPassPercentage,
			})
		}
		return result, nil
	default:
		return nil, ErrUnsupportedAssessmentType
	}

	questions := def.QuestionIndex()
	submittedByID := make(map[string]dto.SubmitSectionDTO, len(req.Children))
	for _, sec := range req.Children {
		submittedByID[sec.Identifier] = sec
	}

	result := &model.ScoreResult{}
	for _, sec := range snap.Sections {
		userSection, ok := submittedByID[sec.Identifier]
		if !ok {
			continue
		}
		sectionResult, err := scoreSection(sec, userSection, questions)
		if err != nil {
			return nil, err
		}
		result.Sections = append(result.Sections, *sectionResult)
	}
	return result, nil
}

func scoreSection(sec model.SectionSnapshot, userSection dto.SubmitSectionDTO, questions map[string]model.Question) (*model.SectionResult, error) {
	blank := 0
	userCriteriaTotal := 0.0
	maxMarksTotal := 0.0

	for _, answered := range userSection.Children {
		q, ok := questions[answered.Identifier]
		if !ok {
			// The snapshot references a question the live definition no longer
			// resolves; that is a catalog inconsistency, not a user error.
			return nil, fmt.Errorf("%w: question %s missing from definition", ErrDefinitionLoadFailure, answered.Identifier)
		}
		if !q.Type.IsMCQFamily() {
			// Out-of-scope question kinds pass through unscored.
			continue
		}
		if len(answered.MarkedOptions) == 0 {
			blank++
			continue
		}
		// Only the first marked option's weight counts; weights are not
		// summed across multi-marked entries.
		userCriteriaTotal += optionWeight(q, answered.MarkedOptions[0])
		maxMarksTotal += q.TotalMarks
	}

	maxWeighted := maxMarksTotal * (sec.SectionWeightage / 100)
	userWeighted := userCriteriaTotal * (sec.SectionWeightage / 100)

	sr := &model.SectionResult{
		Identifier:        sec.Identifier,
		PrimaryCategory:   sec.PrimaryCategory,
		Name:              sec.Name,
		PassPercentage:    sec.MinimumPassPercentage,
		MaxWeightedScore:  maxWeighted,
		UserWeightedScore: userWeighted,
		Blank:             blank,
	}
	if userWeighted > 0 {
		normalized := userWeighted / maxWeighted
		sr.MaxUserScore = &normalized
	}
	return sr, nil
}

func optionWeight(q model.Question, markedIndex string) float64 {
	for _, opt := range q.Options {
		if opt.Index == markedIndex {
			return opt.AnswerWeight
		}
	}
	return 0
}
