package service

import (
	"context"
	"sync"
	"time"

	"github.com/pharmaciefficace/feedback/internal/config"
	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/internal/store"
	"github.com/pharmaciefficace/feedback/internal/survey"
	"github.com/pharmaciefficace/feedback/internal/utils"
	"github.com/pharmaciefficace/feedback/models"
)

// SessionView is the client-facing snapshot of one survey session. It is
// recomputed after every operation and carries everything a form renderer
// needs for the current step.
type SessionView struct {
	SessionID string       `json:"session_id"`
	Flow      string       `json:"flow"`
	State     survey.State `json:"state"`

	// AuthError is the visible access-code error message, if any.
	AuthError string `json:"auth_error,omitempty"`

	PharmacyID  string `json:"pharmacy_id,omitempty"`
	SurveyType  string `json:"survey_type,omitempty"`
	SurveyTitle string `json:"survey_title,omitempty"`

	// QuestionIndex and TotalQuestions describe progression while
	// answering. Question and Control are set only in the answering state.
	QuestionIndex  int                `json:"question_index"`
	TotalQuestions int                `json:"total_questions"`
	Question       *models.Question   `json:"question,omitempty"`
	Control        survey.ControlKind `json:"control,omitempty"`
	CanProceed     bool               `json:"can_proceed"`
}

// sessionEntry pairs a runner with its own lock. Runner methods are not
// safe for concurrent use, so every access goes through mu.
type sessionEntry struct {
	mu        sync.Mutex
	runner    *survey.Runner
	touchedAt time.Time

	// pending holds a payload delivered by the runner's submit callback
	// until the owning service call archives it.
	pending *models.SubmissionPayload
}

// surveySessionService is the concrete implementation of
// SurveySessionService. Sessions live in process memory keyed by a
// server-issued id; a janitor prunes idle ones.
type surveySessionService struct {
	cfg         survey.Config
	counter     store.SubmissionCounter
	submissions SubmissionService
	uuid        *utils.UUIDGenerator
	logger      *logger.Logger

	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

// NewSurveySessionService constructs a SurveySessionService with the survey
// policy from cfg. Completed submissions are handed to submissions for
// archival.
func NewSurveySessionService(cfg config.Survey, counter store.SubmissionCounter, submissions SubmissionService, logger *logger.Logger) SurveySessionService {
	return &surveySessionService{
		cfg: survey.Config{
			StaffAccessCode:      cfg.StaffAccessCode,
			DailySubmissionLimit: cfg.DailySubmissionLimit,
		},
		counter:     counter,
		submissions: submissions,
		uuid:        utils.NewUUIDGenerator(),
		logger:      logger,
		sessions:    make(map[string]*sessionEntry),
	}
}

// StartSession opens a new session for the requested flow. The customer
// flow requires a client key to scope the daily quota.
func (s *surveySessionService) StartSession(ctx context.Context, flow, clientKey string) (SessionView, error) {
	log := logger.FromContext(ctx)

	entry := &sessionEntry{touchedAt: time.Now()}

	onSubmit := func(payload models.SubmissionPayload) {
		entry.pending = &payload
	}

	switch survey.Flow(flow) {
	case survey.FlowCustomer:
		if clientKey == "" {
			return SessionView{}, ErrInvalidDataProvided
		}
		entry.runner = survey.NewCustomerRunner(clientKey, s.cfg, s.counter, onSubmit)
	case survey.FlowStaff:
		entry.runner = survey.NewStaffRunner(s.cfg, onSubmit)
	default:
		return SessionView{}, ErrUnknownFlow
	}

	sessionID := s.uuid.Generate()

	s.mu.Lock()
	s.sessions[sessionID] = entry
	s.mu.Unlock()

	log.Info().Str("session_id", sessionID).Str("flow", flow).Msg("survey session started")

	return s.view(sessionID, entry), nil
}

func (s *surveySessionService) GetSession(ctx context.Context, sessionID string) (SessionView, error) {
	return s.withSession(ctx, sessionID, func(*survey.Runner) error { return nil })
}

func (s *surveySessionService) SelectPharmacy(ctx context.Context, sessionID, pharmacyID string) (SessionView, error) {
	return s.withSession(ctx, sessionID, func(r *survey.Runner) error {
		return r.SelectPharmacy(pharmacyID)
	})
}

func (s *surveySessionService) EnterAccessCode(ctx context.Context, sessionID, code string) (SessionView, error) {
	return s.withSession(ctx, sessionID, func(r *survey.Runner) error {
		_, err := r.EnterAccessCode(code)
		return err
	})
}

func (s *surveySessionService) SelectSurveyType(ctx context.Context, sessionID, surveyType string) (SessionView, error) {
	return s.withSession(ctx, sessionID, func(r *survey.Runner) error {
		return r.SelectSurveyType(surveyType)
	})
}

func (s *surveySessionService) RecordAnswer(ctx context.Context, sessionID string, req models.RecordAnswerRequest) (SessionView, error) {
	return s.withSession(ctx, sessionID, func(r *survey.Runner) error {
		r.RecordAnswer(models.Answer{
			QuestionID: req.QuestionID,
			OptionID:   req.OptionID,
			Value:      req.Value,
			Weight:     req.Weight,
		})
		return nil
	})
}

func (s *surveySessionService) Next(ctx context.Context, sessionID string) (SessionView, error) {
	return s.withSession(ctx, sessionID, func(r *survey.Runner) error {
		r.Next()
		return nil
	})
}

func (s *surveySessionService) Previous(ctx context.Context, sessionID string) (SessionView, error) {
	return s.withSession(ctx, sessionID, func(r *survey.Runner) error {
		r.Previous()
		return nil
	})
}

// PruneIdle drops sessions untouched for longer than maxIdle and returns
// the number removed. Called by the janitor worker.
func (s *surveySessionService) PruneIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, entry := range s.sessions {
		entry.mu.Lock()
		idle := entry.touchedAt.Before(cutoff)
		entry.mu.Unlock()

		if idle {
			delete(s.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("pruned idle survey sessions")
	}

	return removed
}

// withSession runs op against the session's runner under its lock, archives
// any submission the operation produced and returns the refreshed view.
func (s *surveySessionService) withSession(ctx context.Context, sessionID string, op func(*survey.Runner) error) (SessionView, error) {
	log := logger.FromContext(ctx)

	s.mu.RLock()
	entry, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return SessionView{}, ErrSessionNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.touchedAt = time.Now()

	if err := op(entry.runner); err != nil {
		return SessionView{}, err
	}

	if entry.pending != nil {
		payload := *entry.pending
		entry.pending = nil

		// archive failures do not fail the survey: the flow is complete,
		// the record is lost
		if _, err := s.submissions.Archive(ctx, payload); err != nil {
			log.Err(err).Str("session_id", sessionID).Msg("archiving submission failed")
		}
	}

	return s.view(sessionID, entry), nil
}

// view builds the client-facing snapshot. Callers hold the entry lock, or
// exclusively own the entry as in StartSession.
func (s *surveySessionService) view(sessionID string, entry *sessionEntry) SessionView {
	r := entry.runner

	view := SessionView{
		SessionID:      sessionID,
		Flow:           string(r.Flow()),
		State:          r.State(),
		AuthError:      r.AuthError(),
		PharmacyID:     r.PharmacyID(),
		SurveyType:     r.Survey().Type,
		SurveyTitle:    r.Survey().Title,
		QuestionIndex:  r.QuestionIndex(),
		TotalQuestions: len(r.Survey().Questions),
		CanProceed:     r.CanProceed(),
	}

	if question, ok := r.CurrentQuestion(); ok {
		view.Question = &question
		view.Control = survey.ControlKindFor(question)
	}

	return view
}
