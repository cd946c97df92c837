package survey

import (
	"time"

	"github.com/pharmaciefficace/feedback/internal/store"
	"github.com/pharmaciefficace/feedback/models"
)

// State is a survey session's position in its flow.
type State string

const (
	// StateSelectingPharmacy is the customer entry state: a pharmacy must
	// be chosen before answering begins.
	StateSelectingPharmacy State = "selecting_pharmacy"

	// StateEnteringAccessCode is the staff entry state, gated by the
	// shared access code.
	StateEnteringAccessCode State = "entering_access_code"

	// StateSelectingSurveyType follows a correct access code: the staff
	// member picks which questionnaire to run.
	StateSelectingSurveyType State = "selecting_survey_type"

	// StateAnswering covers the question-by-question progression.
	StateAnswering State = "answering"

	// StateCompleted is the terminal state of a delivered submission.
	StateCompleted State = "completed"

	// StateDailyLimitReached blocks a customer who already reached the
	// daily submission quota. Terminal.
	StateDailyLimitReached State = "daily_limit_reached"
)

// Flow distinguishes the customer and the staff questionnaire flows.
type Flow string

const (
	FlowCustomer Flow = "client"
	FlowStaff    Flow = "personnel"
)

// AuthErrorMessage is set on the session when a wrong staff access code is
// entered.
const AuthErrorMessage = "Code d'accès incorrect."

// Config carries the survey-flow policy knobs.
type Config struct {
	// StaffAccessCode gates entry into the staff flow.
	StaffAccessCode string

	// DailySubmissionLimit caps completed customer surveys per client
	// per calendar day.
	DailySubmissionLimit int
}

// Runner drives one survey session through its states and accumulates one
// answer per question. It is not safe for concurrent use; the owning
// session store serializes access.
//
// Invalid transitions are refused rather than raised: Next with an
// unanswered closed question and Previous at the first question are no-ops.
type Runner struct {
	flow      Flow
	clientKey string
	cfg       Config
	counter   store.SubmissionCounter
	onSubmit  func(models.SubmissionPayload)
	now       func() time.Time

	state      State
	survey     models.Survey
	pharmacyID string
	index      int
	answers    map[int64]models.Answer
	authError  string
	startedAt  time.Time
}

// NewCustomerRunner starts a customer session for the given client key.
// The session begins at pharmacy selection, or directly at
// [StateDailyLimitReached] when the client's daily quota is already
// exhausted.
func NewCustomerRunner(clientKey string, cfg Config, counter store.SubmissionCounter, onSubmit func(models.SubmissionPayload)) *Runner {
	r := &Runner{
		flow:      FlowCustomer,
		clientKey: clientKey,
		cfg:       cfg,
		counter:   counter,
		onSubmit:  onSubmit,
		now:       time.Now,
		state:     StateSelectingPharmacy,
		survey:    ClientSurvey(),
		answers:   make(map[int64]models.Answer),
	}
	r.startedAt = r.now()

	if counter.Count(clientKey, r.startedAt) >= cfg.DailySubmissionLimit {
		r.state = StateDailyLimitReached
	}

	return r
}

// NewStaffRunner starts a staff session. The session begins at access-code
// entry; the questionnaire is chosen after the code is accepted.
func NewStaffRunner(cfg Config, onSubmit func(models.SubmissionPayload)) *Runner {
	r := &Runner{
		flow:     FlowStaff,
		cfg:      cfg,
		onSubmit: onSubmit,
		now:      time.Now,
		state:    StateEnteringAccessCode,
		answers:  make(map[int64]models.Answer),
	}
	r.startedAt = r.now()

	return r
}

// State returns the session's current state.
func (r *Runner) State() State { return r.state }

// Flow returns the session's flow.
func (r *Runner) Flow() Flow { return r.flow }

// AuthError returns the visible access-code error message, empty when none.
func (r *Runner) AuthError() string { return r.authError }

// PharmacyID returns the chosen pharmacy, empty until selected and always
// empty for staff sessions.
func (r *Runner) PharmacyID() string { return r.pharmacyID }

// Survey returns the questionnaire the session runs. Zero-valued for a
// staff session that has not yet picked a survey type.
func (r *Runner) Survey() models.Survey { return r.survey }

// CurrentQuestion returns the question at the session's cursor. The second
// return is false outside [StateAnswering].
func (r *Runner) CurrentQuestion() (models.Question, bool) {
	if r.state != StateAnswering || r.index >= len(r.survey.Questions) {
		return models.Question{}, false
	}
	return r.survey.Questions[r.index], true
}

// QuestionIndex returns the zero-based cursor position.
func (r *Runner) QuestionIndex() int { return r.index }

// SelectPharmacy records the evaluated pharmacy and starts the
// questionnaire. Customer flow only.
func (r *Runner) SelectPharmacy(pharmacyID string) error {
	if r.flow != FlowCustomer || r.state != StateSelectingPharmacy {
		return ErrWrongState
	}

	r.pharmacyID = pharmacyID
	r.state = StateAnswering
	r.index = 0

	return nil
}

// EnterAccessCode checks the staff access code. A wrong code keeps the
// session in place and sets a visible error message; the returned bool
// reports whether the code was accepted.
func (r *Runner) EnterAccessCode(code string) (bool, error) {
	if r.flow != FlowStaff || r.state != StateEnteringAccessCode {
		return false, ErrWrongState
	}

	if code != r.cfg.StaffAccessCode {
		r.authError = AuthErrorMessage
		return false, nil
	}

	r.authError = ""
	r.state = StateSelectingSurveyType

	return true, nil
}

// SelectSurveyType picks the staff questionnaire and starts it.
func (r *Runner) SelectSurveyType(surveyType string) error {
	if r.flow != FlowStaff || r.state != StateSelectingSurveyType {
		return ErrWrongState
	}

	s, ok := StaffSurvey(surveyType)
	if !ok {
		return ErrUnknownSurveyType
	}

	r.survey = s
	r.state = StateAnswering
	r.index = 0

	return nil
}

// RecordAnswer upserts the answer for its question, replacing any prior
// entry. When the answer selects a known option, the option's label and
// weight fill in a missing value and weight.
func (r *Runner) RecordAnswer(answer models.Answer) {
	if answer.OptionID != nil {
		if question, ok := r.questionByID(answer.QuestionID); ok {
			if option, ok := question.OptionByID(*answer.OptionID); ok {
				if answer.Value == "" {
					answer.Value = option.Label
				}
				if answer.Weight == nil {
					answer.Weight = option.Weight
				}
			}
		}
	}

	r.answers[answer.QuestionID] = answer
}

// CanProceed reports whether the cursor may advance: always for an open
// question, only once an answer is recorded for a closed one.
func (r *Runner) CanProceed() bool {
	question, ok := r.CurrentQuestion()
	if !ok {
		return false
	}

	if question.Kind == models.QuestionKindOpen {
		return true
	}

	_, answered := r.answers[question.QuestionID]
	return answered
}

// Next advances the cursor by one question. A no-op when the current
// question does not allow proceeding; on the last question it submits the
// session instead.
func (r *Runner) Next() {
	if !r.CanProceed() {
		return
	}

	if r.index == len(r.survey.Questions)-1 {
		r.submit()
		return
	}

	r.index++
}

// Previous moves the cursor back one question, floored at the first.
// Recorded answers are never touched.
func (r *Runner) Previous() {
	if r.state == StateAnswering && r.index > 0 {
		r.index--
	}
}

// submit finishes the session. A customer at the daily quota is routed to
// [StateDailyLimitReached] with no side effects; otherwise the payload is
// assembled, the daily counter advanced (customer flow) and the delivery
// callback invoked.
func (r *Runner) submit() {
	now := r.now()

	if r.flow == FlowCustomer && r.counter.Count(r.clientKey, now) >= r.cfg.DailySubmissionLimit {
		r.state = StateDailyLimitReached
		return
	}

	payload := models.SubmissionPayload{
		SurveyType:        r.survey.Type,
		PharmacyID:        r.pharmacyID,
		Answers:           r.answersInQuestionOrder(),
		CompletionSeconds: int64(now.Sub(r.startedAt) / time.Second),
		Timestamp:         now,
	}

	if r.flow == FlowCustomer {
		r.counter.Increment(r.clientKey, now)
	}

	r.state = StateCompleted

	if r.onSubmit != nil {
		r.onSubmit(payload)
	}
}

func (r *Runner) questionByID(questionID int64) (models.Question, bool) {
	for _, q := range r.survey.Questions {
		if q.QuestionID == questionID {
			return q, true
		}
	}
	return models.Question{}, false
}

func (r *Runner) answersInQuestionOrder() []models.Answer {
	answers := make([]models.Answer, 0, len(r.answers))
	for _, q := range r.survey.Questions {
		if a, ok := r.answers[q.QuestionID]; ok {
			answers = append(answers, a)
		}
	}
	return answers
}
