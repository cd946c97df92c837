package survey

import "github.com/pharmaciefficace/feedback/models"

// ControlKind names the input control a question should be presented with.
type ControlKind string

const (
	// ControlAcceptReject is a two-button Oui/Non choice.
	ControlAcceptReject ControlKind = "accept_reject"

	// ControlList is a single-select option list.
	ControlList ControlKind = "list"

	// ControlRating is a star scale; the star count of each option is
	// derived from its weight.
	ControlRating ControlKind = "rating"

	// ControlText is a free-form text field.
	ControlText ControlKind = "text"

	// ControlNone is returned for combinations the static catalog never
	// produces; callers render nothing for it.
	ControlNone ControlKind = "none"
)

// ControlKindFor maps a question to its input control. The mapping is a
// pure function of the question's kind and option type.
func ControlKindFor(q models.Question) ControlKind {
	switch q.Kind {
	case models.QuestionKindOpen:
		return ControlText
	case models.QuestionKindClosed:
		switch q.OptionTypeID {
		case models.OptionTypeBinary:
			return ControlAcceptReject
		case models.OptionTypeRating:
			return ControlRating
		default:
			return ControlList
		}
	default:
		return ControlNone
	}
}
