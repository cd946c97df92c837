package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/internal/store"
	"github.com/pharmaciefficace/feedback/internal/utils"
	"github.com/pharmaciefficace/feedback/models"
)

// submissionService is the concrete implementation of SubmissionService.
type submissionService struct {
	repository store.SubmissionRepository
	uuid       *utils.UUIDGenerator
	logger     *logger.Logger
}

// NewSubmissionService constructs a SubmissionService backed by the given
// archive repository.
func NewSubmissionService(repository store.SubmissionRepository, logger *logger.Logger) SubmissionService {
	return &submissionService{
		repository: repository,
		uuid:       utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

// Archive assigns the payload an archive id and persists it.
func (s *submissionService) Archive(ctx context.Context, payload models.SubmissionPayload) (models.Submission, error) {
	log := logger.FromContext(ctx)

	createdAt := payload.Timestamp
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	submission := models.Submission{
		ID:                s.uuid.Generate(),
		SurveyType:        payload.SurveyType,
		PharmacyID:        payload.PharmacyID,
		Answers:           payload.Answers,
		CompletionSeconds: payload.CompletionSeconds,
		CreatedAt:         createdAt,
	}

	saved, err := s.repository.Save(ctx, submission)
	if err != nil {
		log.Err(err).Str("survey_type", payload.SurveyType).Msg("archiving submission failed")
		return models.Submission{}, fmt.Errorf("archiving submission failed: %w", err)
	}

	log.Info().
		Str("submission_id", saved.ID).
		Str("survey_type", saved.SurveyType).
		Int("answers", len(saved.Answers)).
		Msg("submission archived")

	return saved, nil
}

func (s *submissionService) List(ctx context.Context, filter models.SubmissionFilter) ([]models.Submission, error) {
	submissions, err := s.repository.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("searching submissions failed: %w", err)
	}

	return submissions, nil
}

func (s *submissionService) Get(ctx context.Context, id string) (models.Submission, error) {
	submission, err := s.repository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrSubmissionNotFound) {
			return models.Submission{}, ErrSubmissionNotFound
		}
		return models.Submission{}, fmt.Errorf("submission lookup failed: %w", err)
	}

	return submission, nil
}
