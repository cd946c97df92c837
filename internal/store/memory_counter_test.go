package store

import (
	"testing"
	"time"

	"github.com/pharmaciefficace/feedback/internal/logger"
)

func TestMemorySubmissionCounter_CountAndIncrement(t *testing.T) {
	counter := NewMemorySubmissionCounter(logger.NewLogger("test"))
	day := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)

	if got := counter.Count("client-a", day); got != 0 {
		t.Fatalf("expected 0 before any increment, got %d", got)
	}

	if got := counter.Increment("client-a", day); got != 1 {
		t.Fatalf("expected 1 after first increment, got %d", got)
	}
	if got := counter.Increment("client-a", day); got != 2 {
		t.Fatalf("expected 2 after second increment, got %d", got)
	}
	if got := counter.Count("client-a", day); got != 2 {
		t.Fatalf("expected count 2, got %d", got)
	}
}

func TestMemorySubmissionCounter_IsolatedByClientAndDay(t *testing.T) {
	counter := NewMemorySubmissionCounter(logger.NewLogger("test"))
	day := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	nextDay := day.AddDate(0, 0, 1)

	counter.Increment("client-a", day)
	counter.Increment("client-a", day)

	if got := counter.Count("client-b", day); got != 0 {
		t.Errorf("expected other client unaffected, got %d", got)
	}
	if got := counter.Count("client-a", nextDay); got != 0 {
		t.Errorf("expected next day to start at 0, got %d", got)
	}
}

func TestMemorySubmissionCounter_SameDayDifferentHours(t *testing.T) {
	counter := NewMemorySubmissionCounter(logger.NewLogger("test"))
	morning := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 6, 1, 20, 30, 0, 0, time.UTC)

	counter.Increment("client-a", morning)
	if got := counter.Count("client-a", evening); got != 1 {
		t.Fatalf("expected same-day count 1, got %d", got)
	}
}

func TestMemorySubmissionCounter_PruneBefore(t *testing.T) {
	counter := NewMemorySubmissionCounter(logger.NewLogger("test"))
	old := time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	counter.Increment("client-a", old)
	counter.Increment("client-b", old)
	counter.Increment("client-a", today)

	removed := counter.PruneBefore(today)
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if got := counter.Count("client-a", today); got != 1 {
		t.Errorf("expected today's counter to survive, got %d", got)
	}
	if got := counter.Count("client-a", old); got != 0 {
		t.Errorf("expected old counter pruned, got %d", got)
	}
}
