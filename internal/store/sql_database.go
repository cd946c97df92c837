package store

import (
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/migrations"
)

// DB wraps a *sql.DB with the driver-specific pieces the repositories need:
// the goose dialect for migrations and a squirrel statement builder
// configured with the driver's placeholder format ($1 for PostgreSQL,
// ? for SQLite).
type DB struct {
	*sql.DB
	dialect string
	builder squirrel.StatementBuilderType
	logger  *logger.Logger
}

// Migrate applies all pending schema migrations for the archive database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
