package workers

import (
	"context"
	"time"

	"github.com/pharmaciefficace/feedback/internal/config"
	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/internal/service"
	"github.com/pharmaciefficace/feedback/internal/store"
)

// sessionMaxIdle is how long a survey session may go untouched before the
// janitor drops it. Respondents answer eleven questions at most; half an
// hour of silence means the browser is gone.
const sessionMaxIdle = 30 * time.Minute

// janitorWorker periodically prunes expired reset tokens, daily submission
// counters from previous days, and idle survey sessions.
type janitorWorker struct {
	interval time.Duration

	tokens   store.ResetTokenRepository
	counter  store.SubmissionCounter
	sessions service.SurveySessionService

	logger *logger.Logger
}

func newJanitorWorker(cfg config.Workers, storages *store.Storages, sessions service.SurveySessionService, logger *logger.Logger) *janitorWorker {
	return &janitorWorker{
		interval: cfg.JanitorInterval,
		tokens:   storages.ResetTokens,
		counter:  storages.Counter,
		sessions: sessions,
		logger:   logger,
	}
}

// Run starts the sweep loop in its own goroutine and returns immediately.
func (j *janitorWorker) Run() {
	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for now := range ticker.C {
			j.sweep(now)
		}
	}()
}

func (j *janitorWorker) sweep(now time.Time) {
	tokens := j.tokens.DeleteExpired(context.Background(), now)
	counters := j.counter.PruneBefore(now)
	sessions := j.sessions.PruneIdle(sessionMaxIdle)

	if tokens > 0 || counters > 0 || sessions > 0 {
		j.logger.Info().
			Int("reset_tokens", tokens).
			Int("counters", counters).
			Int("sessions", sessions).
			Msg("janitor sweep")
	}
}
