package model

// AssessmentType discriminates how a submitted assessment is scored.
type AssessmentType string

const (
	// AssessmentTypeOptionWeightage scores answers against per-option weights.
	AssessmentTypeOptionWeightage AssessmentType = "questionOptionWeightage"
	// AssessmentTypePlain is persisted but carries no scoring rubric.
	AssessmentTypePlain AssessmentType = "plain"
)

// QuestionType is the closed set of question kinds the service understands.
// Scoring only consumes the MCQ family; anything else fails closed at submit.
type QuestionType string

const (
	QuestionTypeMCQSingle         QuestionType = "mcq-sca"
	QuestionTypeMCQMulti          QuestionType = "mcq-mca"
	QuestionTypeMCQMultiWeightage QuestionType = "mcq-mca-w"
)

// IsMCQFamily reports whether the question type participates in
// option-weightage scoring. Unknown types deliberately return false so new
// kinds never silently score as zero-weight MCQs.
func (t QuestionType) IsMCQFamily() bool {
	switch t {
	case QuestionTypeMCQSingle, QuestionTypeMCQMulti, QuestionTypeMCQMultiWeightage:
		return true
	}
	return false
}

const PrimaryCategoryPracticeSet = "Practice Question Set"

// Option is a single answer choice. AnswerWeight is only meaningful for the
// weighted MCQ types.
type Option struct {
	Index        string  `json:"index"`
	Value        string  `json:"value,omitempty"`
	AnswerWeight float64 `json:"answerWeight"`
}

type Question struct {
	Identifier string       `json:"identifier"`
	Type       QuestionType `json:"questionType"`
	TotalMarks float64      `json:"totalMarks"`
	Options    []Option     `json:"options,omitempty"`
}

type Section struct {
	Identifier            string     `json:"identifier"`
	Name                  string     `json:"name"`
	PrimaryCategory       string     `json:"primaryCategory,omitempty"`
	SectionWeightage      float64    `json:"sectionWeightage"`
	MinimumPassPercentage float64    `json:"minimumPassPercentage"`
	TotalMarks            float64    `json:"totalMarks"`
	MaxQuestions          int        `json:"maxQuestions,omitempty"`
	Questions             []Question `json:"children,omitempty"`
}

// AssessmentDefinition is the full catalog hierarchy for one assessment
// version. It is immutable once loaded; the session layer only ever projects
// it into snapshots.
type AssessmentDefinition struct {
	Identifier            string         `json:"identifier"`
	Name                  string         `json:"name"`
	PrimaryCategory       string         `json:"primaryCategory"`
	AssessmentType        AssessmentType `json:"assessmentType"`
	ExpectedDuration      int            `json:"expectedDuration"` // seconds
	MinimumPassPercentage float64        `json:"minimumPassPercentage"`
	MaxRetakes            *int           `json:"maxAssessmentRetakeAttempts,omitempty"`
	Sections              []Section      `json:"children,omitempty"`
}

// IsPracticeSet reports whether opens/submits should be served statelessly
// without touching the attempt store.
func (d *AssessmentDefinition) IsPracticeSet() bool {
	return d.PrimaryCategory == PrimaryCategoryPracticeSet
}

// SectionByID returns the section with the given identifier, or nil.
func (d *AssessmentDefinition) SectionByID(id string) *Section {
	for i := range d.Sections {
		if d.Sections[i].Identifier == id {
			return &d.Sections[i]
		}
	}
	return nil
}

// QuestionIndex flattens every section's questions into an id-keyed map, used
// when scoring needs option weights for served question ids.
func (d *AssessmentDefinition) QuestionIndex() map[string]Question {
	idx := make(map[string]Question)
	for _, sec := range d.Sections {
		for _, q := range sec.Questions {
			idx[q.Identifier] = q
		}
	}
	return idx
}
