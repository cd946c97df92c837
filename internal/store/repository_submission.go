package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/models"
)

// submissionRepository is the SQL-backed implementation of
// [SubmissionRepository]. It works against the "submissions" table through
// the driver-agnostic [DB] wrapper, so the same code serves both the
// SQLite and the PostgreSQL archive.
//
// The answer set is stored as a JSON text column: answers are written and
// read as one unit and never queried field-by-field.
type submissionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSubmissionRepository constructs a [SubmissionRepository] backed by the
// provided archive database and logger.
func NewSubmissionRepository(db *DB, log *logger.Logger) SubmissionRepository {
	log.Debug().Msg("creating submission repository")
	return &submissionRepository{
		db:     db,
		logger: log,
	}
}

// Save persists an archived submission.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrSubmissionNotSaved].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *submissionRepository) Save(ctx context.Context, submission models.Submission) (models.Submission, error) {
	log := logger.FromContext(ctx)

	answers, err := json.Marshal(submission.Answers)
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.Save").Msg("error: encoding answers")
		return models.Submission{}, fmt.Errorf("encode answers: %w", err)
	}

	query, args, err := r.db.builder.
		Insert(submission.TableName()).
		Columns("id", "survey_type", "pharmacy_id", "answers", "completion_seconds", "created_at").
		Values(submission.ID, submission.SurveyType, submission.PharmacyID, string(answers), submission.CompletionSeconds, submission.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.Save").Msg("error: building query")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.Save").Msg("error: executing insert")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Submission{}, ErrSubmissionNotSaved
		default:
			return models.Submission{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return models.Submission{}, ErrSubmissionNotSaved
	}

	return submission, nil
}

// FindByID retrieves one archived submission by its identifier.
func (r *submissionRepository) FindByID(ctx context.Context, id string) (models.Submission, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "survey_type", "pharmacy_id", "answers", "completion_seconds", "created_at").
		From(models.Submission{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.FindByID").Msg("error: building query")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	submission, err := scanSubmission(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Submission{}, ErrSubmissionNotFound
		}
		log.Err(err).Str("func", "*submissionRepository.FindByID").Msg("error: scanning row")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return submission, nil
}

// Search returns archived submissions matching the filter, newest first.
// Zero-valued filter fields are ignored.
func (r *submissionRepository) Search(ctx context.Context, filter models.SubmissionFilter) ([]models.Submission, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Select("id", "survey_type", "pharmacy_id", "answers", "completion_seconds", "created_at").
		From(models.Submission{}.TableName()).
		OrderBy("created_at DESC")

	if filter.SurveyType != "" {
		builder = builder.Where(squirrel.Eq{"survey_type": filter.SurveyType})
	}
	if filter.PharmacyID != "" {
		builder = builder.Where(squirrel.Eq{"pharmacy_id": filter.PharmacyID})
	}
	if !filter.From.IsZero() {
		builder = builder.Where(squirrel.GtOrEq{"created_at": filter.From})
	}
	if !filter.To.IsZero() {
		builder = builder.Where(squirrel.Lt{"created_at": filter.To})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.Search").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.Search").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var submissions []models.Submission
	for rows.Next() {
		submission, err := scanSubmission(rows.Scan)
		if err != nil {
			log.Err(err).Str("func", "*submissionRepository.Search").Msg("error: scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		submissions = append(submissions, submission)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return submissions, nil
}

// scanSubmission reads one submission row via the given scan function and
// decodes the JSON answers column.
func scanSubmission(scan func(dest ...any) error) (models.Submission, error) {
	var submission models.Submission
	var answers string

	if err := scan(&submission.ID, &submission.SurveyType, &submission.PharmacyID, &answers, &submission.CompletionSeconds, &submission.CreatedAt); err != nil {
		return models.Submission{}, err
	}

	if err := json.Unmarshal([]byte(answers), &submission.Answers); err != nil {
		return models.Submission{}, fmt.Errorf("decode answers: %w", err)
	}

	return submission, nil
}
