package models

import "time"

// SubmissionPayload is the answer set assembled when a survey session
// completes. It is the unit handed to the archive for persistence.
type SubmissionPayload struct {
	// SurveyType names the survey flow that produced the payload
	// (e.g. "client", "conditions_travail").
	SurveyType string `json:"survey_type"`

	// PharmacyID is the pharmacy the respondent evaluated.
	// Empty for staff surveys, which are not tied to one pharmacy choice.
	PharmacyID string `json:"pharmacy_id,omitempty"`

	// Answers holds one entry per answered question, in answer order.
	Answers []Answer `json:"answers"`

	// CompletionSeconds is the elapsed time between session start and
	// submission, in whole seconds.
	CompletionSeconds int64 `json:"completion_time"`

	// Timestamp is the submission instant.
	Timestamp time.Time `json:"timestamp"`
}

// Submission is an archived survey submission as persisted by the store.
type Submission struct {
	// ID is the archive-assigned unique identifier (UUID).
	ID string `json:"id"`

	// SurveyType names the survey flow that produced the submission.
	SurveyType string `json:"survey_type"`

	// PharmacyID is the evaluated pharmacy; empty for staff surveys.
	PharmacyID string `json:"pharmacy_id,omitempty"`

	// Answers is the full answer set.
	Answers []Answer `json:"answers"`

	// CompletionSeconds is the elapsed completion time in whole seconds.
	CompletionSeconds int64 `json:"completion_time"`

	// CreatedAt is the archival timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// SubmissionFilter narrows an archive search. Zero-valued fields are
// ignored; Limit of zero means no explicit limit.
type SubmissionFilter struct {
	SurveyType string    `json:"survey_type,omitempty"`
	PharmacyID string    `json:"pharmacy_id,omitempty"`
	From       time.Time `json:"from,omitempty"`
	To         time.Time `json:"to,omitempty"`
	Limit      uint64    `json:"limit,omitempty"`
	Offset     uint64    `json:"offset,omitempty"`
}

// TableName returns the name of the database table associated with the
// Submission model.
func (s Submission) TableName() string {
	return "submissions"
}
