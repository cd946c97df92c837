package workers

import (
	"github.com/pharmaciefficace/feedback/internal/config"
	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/internal/service"
	"github.com/pharmaciefficace/feedback/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the application's background workers: a single
// janitor that prunes expired reset tokens, stale daily counters, and idle
// survey sessions.
func NewWorkers(cfg config.Workers, storages *store.Storages, sessions service.SurveySessionService, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newJanitorWorker(cfg, storages, sessions, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
