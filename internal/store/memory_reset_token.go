package store

import (
	"context"
	"sync"
	"time"

	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/models"
)

// memoryResetTokenRepository is the in-memory implementation of
// [ResetTokenRepository]. Tokens are keyed by their opaque value; an email
// may have any number of outstanding tokens.
type memoryResetTokenRepository struct {
	logger *logger.Logger

	mu     sync.RWMutex
	tokens map[string]models.ResetToken
}

// NewMemoryResetTokenRepository constructs an empty in-memory
// [ResetTokenRepository].
func NewMemoryResetTokenRepository(log *logger.Logger) ResetTokenRepository {
	log.Debug().Msg("creating in-memory reset token repository")
	return &memoryResetTokenRepository{
		logger: log,
		tokens: make(map[string]models.ResetToken),
	}
}

func (r *memoryResetTokenRepository) Save(ctx context.Context, token models.ResetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[token.Token] = token

	return nil
}

func (r *memoryResetTokenRepository) Find(ctx context.Context, token, email string) (models.ResetToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.tokens[token]
	if !ok || stored.Email != email || stored.IsExpiredAt(time.Now()) {
		return models.ResetToken{}, ErrResetTokenNotFound
	}

	return stored, nil
}

func (r *memoryResetTokenRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, token)

	return nil
}

func (r *memoryResetTokenRepository) DeleteExpired(ctx context.Context, now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for value, token := range r.tokens {
		if token.IsExpiredAt(now) {
			delete(r.tokens, value)
			removed++
		}
	}

	if removed > 0 {
		r.logger.Debug().Int("removed", removed).Msg("pruned expired reset tokens")
	}

	return removed
}
