package model

import (
	"encoding/json"
	"time"
)

// SectionSnapshot is the frozen, filtered view of one section. ChildNodes is
// the list of question identifiers actually served, capped at the section's
// MaxQuestions.
type SectionSnapshot struct {
	Identifier            string   `json:"identifier"`
	Name                  string   `json:"name"`
	PrimaryCategory       string   `json:"primaryCategory,omitempty"`
	SectionWeightage      float64  `json:"sectionWeightage"`
	MinimumPassPercentage float64  `json:"minimumPassPercentage"`
	TotalMarks            float64  `json:"totalMarks"`
	ChildNodes            []string `json:"childNodes"`
}

// Snapshot is the question-set projection served to a client for one attempt.
// It is built exactly once per attempt generation and then persisted; a resumed
// attempt gets this stored value back with only the start/end fields patched,
// never a re-filtered definition.
type Snapshot struct {
	Identifier            string            `json:"identifier"`
	Name                  string            `json:"name"`
	PrimaryCategory       string            `json:"primaryCategory"`
	AssessmentType        AssessmentType    `json:"assessmentType"`
	ExpectedDuration      int               `json:"expectedDuration"`
	MinimumPassPercentage float64           `json:"minimumPassPercentage"`
	StartTime             int64             `json:"startTime,omitempty"` // epoch millis
	EndTime               int64             `json:"endTime,omitempty"`   // epoch millis
	ChildNodes            []string          `json:"childNodes"`
	Sections              []SectionSnapshot `json:"children"`
}

// BuildSnapshot filters a definition down to the fields a client is allowed to
// see and fixes the served question list per section.
func BuildSnapshot(def *AssessmentDefinition) *Snapshot {
	snap := &Snapshot{
		Identifier:            def.Identifier,
		Name:                  def.Name,
		PrimaryCategory:       def.PrimaryCategory,
		AssessmentType:        def.AssessmentType,
		ExpectedDuration:      def.ExpectedDuration,
		MinimumPassPercentage: def.MinimumPassPercentage,
		ChildNodes:            make([]string, 0, len(def.Sections)),
		Sections:              make([]SectionSnapshot, 0, len(def.Sections)),
	}
	for _, sec := range def.Sections {
		max := len(sec.Questions)
		if sec.MaxQuestions > 0 && sec.MaxQuestions < max {
			max = sec.MaxQuestions
		}
		served := make([]string, 0, max)
		for _, q := range sec.Questions[:max] {
			served = append(served, q.Identifier)
		}
		snap.ChildNodes = append(snap.ChildNodes, sec.Identifier)
		snap.Sections = append(snap.Sections, SectionSnapshot{
			Identifier:            sec.Identifier,
			Name:                  sec.Name,
			PrimaryCategory:       sec.PrimaryCategory,
			SectionWeightage:      sec.SectionWeightage,
			MinimumPassPercentage: sec.MinimumPassPercentage,
			TotalMarks:            sec.TotalMarks,
			ChildNodes:            served,
		})
	}
	return snap
}

// WithWindow stamps the display window onto the snapshot.
func (s *Snapshot) WithWindow(start, end time.Time) *Snapshot {
	s.StartTime = start.UnixMilli()
	s.EndTime = end.UnixMilli()
	return s
}

// SectionByID returns the frozen section with the given identifier, or nil.
func (s *Snapshot) SectionByID(id string) *SectionSnapshot {
	for i := range s.Sections {
		if s.Sections[i].Identifier == id {
			return &s.Sections[i]
		}
	}
	return nil
}

// ServedQuestionIDs flattens the per-section question-id lists into one set.
func (s *Snapshot) ServedQuestionIDs() map[string]struct{} {
	ids := make(map[string]struct{})
	for _, sec := range s.Sections {
		for _, q := range sec.ChildNodes {
			ids[q] = struct{}{}
		}
	}
	return ids
}

// Marshal serializes the snapshot for storage in an attempt record.
func (s *Snapshot) Marshal() (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// UnmarshalSnapshot decodes a stored snapshot.
func UnmarshalSnapshot(raw string) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
