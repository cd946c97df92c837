package survey

import "errors"

var (
	// ErrWrongState signals an operation invoked in a session state that
	// does not accept it, e.g. selecting a pharmacy after answering began.
	ErrWrongState = errors.New("operation not allowed in current survey state")

	// ErrUnknownSurveyType signals a staff survey type with no catalog entry.
	ErrUnknownSurveyType = errors.New("unknown survey type")
)
