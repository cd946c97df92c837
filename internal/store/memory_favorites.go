package store

import (
	"context"
	"slices"
	"sync"

	"github.com/pharmaciefficace/feedback/internal/logger"
)

// memoryFavoriteRepository is the in-memory implementation of
// [FavoriteRepository]. Favorites keep insertion order per user.
type memoryFavoriteRepository struct {
	logger *logger.Logger

	mu        sync.RWMutex
	favorites map[int64][]string
}

// NewMemoryFavoriteRepository constructs an empty in-memory
// [FavoriteRepository].
func NewMemoryFavoriteRepository(log *logger.Logger) FavoriteRepository {
	log.Debug().Msg("creating in-memory favorite repository")
	return &memoryFavoriteRepository{
		logger:    log,
		favorites: make(map[int64][]string),
	}
}

func (r *memoryFavoriteRepository) List(ctx context.Context, userID int64) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.favorites[userID]), nil
}

func (r *memoryFavoriteRepository) Add(ctx context.Context, userID int64, pharmacyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.Contains(r.favorites[userID], pharmacyID) {
		return nil
	}
	r.favorites[userID] = append(r.favorites[userID], pharmacyID)

	return nil
}

func (r *memoryFavoriteRepository) Remove(ctx context.Context, userID int64, pharmacyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.favorites[userID]
	if i := slices.Index(ids, pharmacyID); i >= 0 {
		r.favorites[userID] = slices.Delete(ids, i, i+1)
	}

	return nil
}
