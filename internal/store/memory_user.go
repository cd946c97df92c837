package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/models"
)

// memoryUserRepository is the in-memory implementation of [UserRepository].
//
// All state is confined to the repository instance: constructing a new
// repository yields a fully isolated user set, so concurrent test suites do
// not interfere with each other. A mutex guards every access because HTTP
// handlers hit the repository from concurrent goroutines.
type memoryUserRepository struct {
	logger *logger.Logger

	mu     sync.RWMutex
	nextID int64
	users  map[int64]models.User
	// byEmail indexes normalized email → user ID for uniqueness checks
	// and login lookups.
	byEmail map[string]int64
}

// NewMemoryUserRepository constructs a [UserRepository] backed by process
// memory, pre-populated with the given seed accounts.
//
// Seed accounts are assigned sequential IDs starting at 1 and stamped with
// the current time. A debug-level log message is emitted at construction
// time to aid application startup diagnostics.
func NewMemoryUserRepository(log *logger.Logger, seed ...models.User) UserRepository {
	log.Debug().Int("seed_users", len(seed)).Msg("creating in-memory user repository")

	r := &memoryUserRepository{
		logger:  log,
		nextID:  1,
		users:   make(map[int64]models.User),
		byEmail: make(map[string]int64),
	}

	now := time.Now()
	for _, user := range seed {
		user.UserID = r.nextID
		if user.CreatedAt.IsZero() {
			user.CreatedAt = now
		}
		r.users[user.UserID] = user
		r.byEmail[user.Email] = user.UserID
		r.nextID++
	}

	return r
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		log.Error().Str("email", user.Email).Msg("email already exists")
		return models.User{}, ErrEmailAlreadyExists
	}

	user.UserID = r.nextID
	user.CreatedAt = time.Now()
	r.nextID++

	r.users[user.UserID] = user
	r.byEmail[user.Email] = user.UserID

	return user, nil
}

func (r *memoryUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.byEmail[email]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return r.users[userID], nil
}

func (r *memoryUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}

func (r *memoryUserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[user.UserID]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	if user.Email != stored.Email {
		if _, exists := r.byEmail[user.Email]; exists {
			log.Error().Str("email", user.Email).Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}
		delete(r.byEmail, stored.Email)
		r.byEmail[user.Email] = user.UserID
	}

	// CreatedAt is immutable once assigned.
	user.CreatedAt = stored.CreatedAt
	r.users[user.UserID] = user

	return user, nil
}

func (r *memoryUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}

	sort.Slice(users, func(i, j int) bool { return users[i].UserID < users[j].UserID })

	return users, nil
}

func (r *memoryUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return ErrNoUserWasFound
	}

	delete(r.users, userID)
	delete(r.byEmail, user.Email)

	return nil
}
