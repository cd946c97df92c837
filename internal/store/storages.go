package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pharmaciefficace/feedback/internal/config"
	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/models"
)

// Bootstrap administrator account. Created on first start so the user
// management endpoints are reachable before any other account exists.
const (
	defaultAdminEmail    = "admin@pharmaciefficace.com"
	defaultAdminName     = "Administrateur"
	defaultAdminPassword = "Admin1234!"
)

// Storages aggregates every repository the services depend upon.
//
// Accounts, reset tokens, daily counters and favorites live in memory and
// reset on restart. The submission archive is SQL-backed and survives
// restarts; the DSN picks the engine (PostgreSQL for "postgres://" DSNs,
// SQLite otherwise).
type Storages struct {
	Users       UserRepository
	ResetTokens ResetTokenRepository
	Counter     SubmissionCounter
	Favorites   FavoriteRepository
	Submissions SubmissionRepository

	db *DB
}

// NewStorages connects the archive database, applies pending migrations and
// constructs all repositories, seeding the bootstrap administrator account.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := connectArchive(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect archive database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate archive database: %w", err)
	}

	admin, err := bootstrapAdmin()
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		Users:       NewMemoryUserRepository(log, admin),
		ResetTokens: NewMemoryResetTokenRepository(log),
		Counter:     NewMemorySubmissionCounter(log),
		Favorites:   NewMemoryFavoriteRepository(log),
		Submissions: NewSubmissionRepository(db, log),
		db:          db,
	}, nil
}

// Close releases the archive database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func connectArchive(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func bootstrapAdmin() (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash bootstrap admin password: %w", err)
	}

	return models.User{
		Email:        defaultAdminEmail,
		Name:         defaultAdminName,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	}, nil
}
