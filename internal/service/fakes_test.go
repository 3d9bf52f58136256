package service

import (
	"context"
	"sync"
	"time"

	"github.com/lshigami/Quolls/internal/model"
	"github.com/lshigami/Quolls/internal/repository"
	"gorm.io/gorm"
)

// stubLoader serves a fixed definition and records how it was asked for it.
type stubLoader struct {
	def          *model.AssessmentDefinition
	err          error
	loadCalls    int
	lastEditMode bool
}

func (l *stubLoader) Load(_ context.Context, _ string, editMode bool) (*model.AssessmentDefinition, error) {
	l.loadCalls++
	l.lastEditMode = editMode
	if l.err != nil {
		return nil, l.err
	}
	return l.def, nil
}

// fakeAttemptRepo is an in-memory AttemptRepository that mirrors the store's
// conditional-write behavior: a second active row per key, or a guarded update
// that matches nothing, yields repository.ErrConflict.
type fakeAttemptRepo struct {
	mu      sync.Mutex
	nextID  uint
	records []*model.AttemptRecord

	// createConflicts fails the next N CreateActive calls with ErrConflict,
	// simulating a concurrent open winning the insert race.
	createConflicts int
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{}
}

func (r *fakeAttemptRepo) FindLatest(key model.AttemptKey) (*model.AttemptRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *model.AttemptRecord
	for _, rec := range r.records {
		if rec.Key() == key && (latest == nil || rec.ID > latest.ID) {
			latest = rec
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *fakeAttemptRepo) CountSubmitted(userID, assessmentID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, rec := range r.records {
		if rec.UserID == userID && rec.AssessmentID == assessmentID && rec.SubmittedResponseJSON != "" {
			count++
		}
	}
	return count, nil
}

func (r *fakeAttemptRepo) CreateActive(rec *model.AttemptRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createConflicts > 0 {
		r.createConflicts--
		return repository.ErrConflict
	}
	for _, existing := range r.records {
		if existing.Key() == rec.Key() && existing.Status == model.StatusNotSubmitted {
			return repository.ErrConflict
		}
	}
	r.nextID++
	rec.ID = r.nextID
	rec.Status = model.StatusNotSubmitted
	cp := *rec
	r.records = append(r.records, &cp)
	return nil
}

func (r *fakeAttemptRepo) RefreshActive(id uint, now time.Time, rec *model.AttemptRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if existing.ID != id {
			continue
		}
		if existing.Status != model.StatusNotSubmitted || existing.EndTime.After(now) {
			return repository.ErrConflict
		}
		existing.StartTime = rec.StartTime
		existing.EndTime = rec.EndTime
		existing.QuestionSetJSON = rec.QuestionSetJSON
		existing.SubmittedResponseJSON = ""
		rec.ID = id
		return nil
	}
	return repository.ErrConflict
}

func (r *fakeAttemptRepo) MarkSubmitted(id uint, responseJSON string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if existing.ID == id && existing.Status == model.StatusNotSubmitted {
			existing.Status = model.StatusSubmitted
			existing.SubmittedResponseJSON = responseJSON
			return nil
		}
	}
	return repository.ErrConflict
}

// seed inserts a record directly, bypassing the conditional-write rules. Tests
// use it to arrange history such as previously submitted generations.
func (r *fakeAttemptRepo) seed(rec model.AttemptRecord) *model.AttemptRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	rec.ID = r.nextID
	cp := rec
	r.records = append(r.records, &cp)
	return &cp
}

func (r *fakeAttemptRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

func (r *fakeAttemptRepo) byID(id uint) *model.AttemptRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ID == id {
			cp := *rec
			return &cp
		}
	}
	return nil
}

// fakeTrackingRepo is an in-memory TrackingRepository.
type fakeTrackingRepo struct {
	mu      sync.Mutex
	entries map[string]*model.AssessmentTracking
}

func newFakeTrackingRepo() *fakeTrackingRepo {
	return &fakeTrackingRepo{entries: make(map[string]*model.AssessmentTracking)}
}

func (r *fakeTrackingRepo) Create(entry *model.AssessmentTracking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *entry
	r.entries[entry.AssessmentID] = &cp
	return nil
}

func (r *fakeTrackingRepo) Update(entry *model.AssessmentTracking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.entries[entry.AssessmentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existing.ActiveStatus = entry.ActiveStatus
	return nil
}

func (r *fakeTrackingRepo) FindByID(assessmentID string) (*model.AssessmentTracking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[assessmentID]
	if !ok {
		return nil, nil
	}
	cp := *entry
	return &cp, nil
}

func (r *fakeTrackingRepo) FindAll() ([]model.AssessmentTracking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.AssessmentTracking, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, *entry)
	}
	return out, nil
}

func (r *fakeTrackingRepo) DeactivateAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, entry := range r.entries {
		if entry.ActiveStatus == model.TrackingStatusActive {
			entry.ActiveStatus = model.TrackingStatusInactive
		}
	}
	return nil
}

// intPtr is a test shorthand for optional retake limits.
func intPtr(v int) *int { return &v }

// weightedDefinition builds a two-question weighted assessment: one section at
// 50% weightage, questions worth 5 marks each, option "A" fully correct.
func weightedDefinition() *model.AssessmentDefinition {
	return &model.AssessmentDefinition{
		Identifier:       "do_assessment_1",
		Name:             "Cloud Fundamentals Final",
		AssessmentType:   model.AssessmentTypeOptionWeightage,
		ExpectedDuration: 600,
		Sections: []model.Section{
			{
				Identifier:       "do_section_1",
				Name:             "Core Concepts",
				SectionWeightage: 50,
				TotalMarks:       10,
				Questions: []model.Question{
					{
						Identifier: "do_q1",
						Type:       model.QuestionTypeMCQSingle,
						TotalMarks: 5,
						Options: []model.Option{
							{Index: "0", AnswerWeight: 5},
							{Index: "1", AnswerWeight: 0},
						},
					},
					{
						Identifier: "do_q2",
						Type:       model.QuestionTypeMCQSingle,
						TotalMarks: 5,
						Options: []model.Option{
							{Index: "0", AnswerWeight: 5},
							{Index: "1", AnswerWeight: 0},
						},
					},
				},
			},
		},
	}
}
