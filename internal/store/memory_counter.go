package store

import (
	"sync"
	"time"

	"github.com/pharmaciefficace/feedback/internal/logger"
)

// dayLayout is the date component of a counter key. Counters are scoped to
// calendar days in the server's local time zone, mirroring the per-day
// storage keys of the browser client this service replaces.
const dayLayout = "2006-01-02"

// memorySubmissionCounter is the in-memory implementation of
// [SubmissionCounter]. Keys combine the client key and the calendar day.
type memorySubmissionCounter struct {
	logger *logger.Logger

	mu     sync.Mutex
	counts map[string]int
}

// NewMemorySubmissionCounter constructs an empty in-memory
// [SubmissionCounter].
func NewMemorySubmissionCounter(log *logger.Logger) SubmissionCounter {
	log.Debug().Msg("creating in-memory submission counter")
	return &memorySubmissionCounter{
		logger: log,
		counts: make(map[string]int),
	}
}

func counterKey(clientKey string, day time.Time) string {
	return clientKey + ":" + day.Format(dayLayout)
}

func (c *memorySubmissionCounter) Count(clientKey string, day time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.counts[counterKey(clientKey, day)]
}

func (c *memorySubmissionCounter) Increment(clientKey string, day time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := counterKey(clientKey, day)
	c.counts[key]++

	return c.counts[key]
}

func (c *memorySubmissionCounter) PruneBefore(day time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := day.Format(dayLayout)
	removed := 0
	for key := range c.counts {
		// the date suffix sorts lexicographically in chronological order
		if len(key) >= len(cutoff) && key[len(key)-len(cutoff):] < cutoff {
			delete(c.counts, key)
			removed++
		}
	}

	if removed > 0 {
		c.logger.Debug().Int("removed", removed).Msg("pruned stale daily counters")
	}

	return removed
}
