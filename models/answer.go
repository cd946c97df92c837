package models

// Answer records one respondent's answer to one question.
//
// Exactly one answer exists per question within a survey session;
// re-answering a question replaces the prior entry.
type Answer struct {
	// QuestionID identifies the answered question.
	QuestionID int64 `json:"question_id"`

	// OptionID identifies the chosen option of a closed question.
	// Nil for open questions.
	OptionID *int64 `json:"option_id,omitempty"`

	// Value is the scalar answer: free-form text for open questions,
	// the chosen option's label for closed ones.
	Value string `json:"value"`

	// Weight is the numeric score copied from the chosen option,
	// when the option carries one.
	Weight *float64 `json:"weight,omitempty"`
}
