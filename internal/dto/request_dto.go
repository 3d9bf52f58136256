package dto

// SubmitQuestionDTO is one answered (or blank) question inside a submit
// request. MarkedOptions holds the option indices the user selected.
type SubmitQuestionDTO struct {
	Identifier    string   `json:"identifier" binding:"required"`
	MarkedOptions []string `json:"markedOptions"`
}

// SubmitSectionDTO mirrors one section of the served question set.
type SubmitSectionDTO struct {
	Identifier string              `json:"identifier" binding:"required"`
	Children   []SubmitQuestionDTO `json:"children" binding:"omitempty,dive"`
}

// SubmitRequestDTO is the full submission payload for an attempt.
type SubmitRequestDTO struct {
	Identifier string             `json:"identifier" binding:"required"`
	ContentID  string             `json:"contentId" binding:"required"`
	VersionKey string             `json:"versionKey" binding:"required"`
	Children   []SubmitSectionDTO `json:"children" binding:"required,dive"`
}

// ResultReadRequestDTO addresses a previously submitted attempt. CourseID maps
// onto the attempt's content id and BatchID onto its version key.
type ResultReadRequestDTO struct {
	AssessmentID string `json:"assessmentId" binding:"required"`
	BatchID      string `json:"batchId" binding:"required"`
	CourseID     string `json:"courseId" binding:"required"`
}

// TrackingUpsertDTO creates or updates an assessment tracking entry.
type TrackingUpsertDTO struct {
	AssessmentID string `json:"assessmentId" binding:"required"`
	ActiveStatus string `json:"activeStatus" binding:"required,oneof=active inactive"`
}

// TrackingUpdateDTO updates the status of an existing tracking entry.
type TrackingUpdateDTO struct {
	ActiveStatus string `json:"activeStatus" binding:"required,oneof=active inactive"`
}
