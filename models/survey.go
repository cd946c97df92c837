package models

// Question kinds. A closed question is answered by selecting one of its
// options; an open question is answered with free-form text.
const (
	QuestionKindClosed = "fermee"
	QuestionKindOpen   = "ouverte"
)

// Option type identifiers describing how a closed question's options should
// be presented.
const (
	// OptionTypeBinary designates a two-option accept/reject choice.
	OptionTypeBinary int64 = 1

	// OptionTypeList designates a generic selectable list.
	OptionTypeList int64 = 2

	// OptionTypeRating designates a weighted scale rendered as stars,
	// with the star count derived from each option's weight.
	OptionTypeRating int64 = 3
)

// Option is one selectable choice of a closed question.
type Option struct {
	// OptionID is the unique identifier of the option.
	OptionID int64 `json:"id"`

	// Label is the display text of the option.
	Label string `json:"label"`

	// Order controls display position within the question.
	Order int `json:"order"`

	// Weight is an optional numeric score attached to the option, used for
	// downstream scoring and aggregation. Nil when the option carries no
	// score (e.g. free-form placeholder options).
	Weight *float64 `json:"weight,omitempty"`
}

// Question is one entry of a survey's ordered, static question list.
// Questions are configuration data; they are never created at runtime.
type Question struct {
	// QuestionID is the unique identifier of the question.
	QuestionID int64 `json:"id"`

	// SurveyID identifies the owning survey.
	SurveyID int64 `json:"survey_id"`

	// OptionTypeID selects the presentation of the option set
	// (binary, list, rating). Meaningless for open questions.
	OptionTypeID int64 `json:"optiontype_id"`

	// Label is the question text shown to the respondent.
	Label string `json:"label"`

	// Kind is QuestionKindClosed or QuestionKindOpen.
	Kind string `json:"kind"`

	// Profile flags the question as profiling rather than evaluative.
	Profile bool `json:"profile"`

	// TargetGroup tags the audience the question addresses
	// (e.g. "client", "personnel").
	TargetGroup string `json:"target_group"`

	// Conditional and ParentQuestionID are declared per question but no
	// evaluator consumes them; there is no branching engine. They are
	// carried as inert configuration data.
	Conditional      bool  `json:"est_conditionnelle"`
	ParentQuestionID int64 `json:"question_parent,omitempty"`

	// Options is the ordered option set of a closed question.
	// Empty for open questions.
	Options []Option `json:"options,omitempty"`
}

// OptionByID returns the question's option with the given identifier.
func (q Question) OptionByID(optionID int64) (Option, bool) {
	for _, o := range q.Options {
		if o.OptionID == optionID {
			return o, true
		}
	}
	return Option{}, false
}

// Survey is an ordered, fixed list of questions addressed to one audience.
type Survey struct {
	// SurveyID is the unique identifier of the survey.
	SurveyID int64 `json:"id"`

	// Type names the flow the survey belongs to
	// (e.g. "client", "conditions_travail").
	Type string `json:"type"`

	// Title is the display title of the survey.
	Title string `json:"title"`

	// Questions is the ordered question list.
	Questions []Question `json:"questions"`
}
