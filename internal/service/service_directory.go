package service

import (
	"context"
	"fmt"

	"github.com/pharmaciefficace/feedback/internal/adapter"
	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/internal/store"
	"github.com/pharmaciefficace/feedback/internal/validators"
	"github.com/pharmaciefficace/feedback/models"
)

// directoryService is the concrete implementation of DirectoryService.
// Directory reads go straight to the external API; favorites are kept in
// the local store.
type directoryService struct {
	client    adapter.DirectoryClient
	favorites store.FavoriteRepository
	logger    *logger.Logger
}

// NewDirectoryService constructs a DirectoryService over the given
// directory client and favorites repository.
func NewDirectoryService(client adapter.DirectoryClient, favorites store.FavoriteRepository, logger *logger.Logger) DirectoryService {
	return &directoryService{
		client:    client,
		favorites: favorites,
		logger:    logger,
	}
}

func (s *directoryService) Departements(ctx context.Context) ([]models.Departement, error) {
	return s.client.Departements(ctx)
}

func (s *directoryService) Communes(ctx context.Context, departementID string) ([]models.Commune, error) {
	return s.client.Communes(ctx, departementID)
}

func (s *directoryService) Arrondissements(ctx context.Context, communeID string) ([]models.Arrondissement, error) {
	return s.client.Arrondissements(ctx, communeID)
}

func (s *directoryService) Villages(ctx context.Context, arrondissementID string) ([]models.Village, error) {
	return s.client.Villages(ctx, arrondissementID)
}

func (s *directoryService) Pharmacies(ctx context.Context, page int, departementID, communeID string) (models.PharmacyPage, error) {
	return s.client.Pharmacies(ctx, page, departementID, communeID)
}

func (s *directoryService) Pharmacy(ctx context.Context, pharmacyID string) (models.Pharmacy, error) {
	if pharmacyID == "" {
		return models.Pharmacy{}, ErrInvalidDataProvided
	}
	return s.client.Pharmacy(ctx, pharmacyID)
}

func (s *directoryService) SearchPharmacies(ctx context.Context, req models.PharmacySearchRequest) ([]models.Pharmacy, error) {
	return s.client.SearchPharmacies(ctx, req)
}

func (s *directoryService) CreatePharmacy(ctx context.Context, pharmacy models.Pharmacy) (models.Pharmacy, error) {
	if pharmacy.Name == "" {
		return models.Pharmacy{}, ErrInvalidDataProvided
	}

	return s.client.CreatePharmacy(ctx, pharmacy)
}

func (s *directoryService) UpdatePharmacy(ctx context.Context, pharmacy models.Pharmacy) (models.Pharmacy, error) {
	if pharmacy.ID == "" {
		return models.Pharmacy{}, ErrInvalidDataProvided
	}

	return s.client.UpdatePharmacy(ctx, pharmacy)
}

// CheckEmail validates the address format locally before asking the
// directory whether it is registered.
func (s *directoryService) CheckEmail(ctx context.Context, email string) (bool, error) {
	email = validators.NormalizeEmail(email)
	if !validators.ValidateEmail(email) {
		return false, ErrInvalidEmail
	}

	return s.client.CheckEmail(ctx, email)
}

func (s *directoryService) Favorites(ctx context.Context, userID int64) ([]string, error) {
	ids, err := s.favorites.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing favorites failed: %w", err)
	}

	return ids, nil
}

func (s *directoryService) AddFavorite(ctx context.Context, userID int64, pharmacyID string) error {
	if pharmacyID == "" {
		return ErrInvalidDataProvided
	}

	if err := s.favorites.Add(ctx, userID, pharmacyID); err != nil {
		return fmt.Errorf("adding favorite failed: %w", err)
	}

	return nil
}

func (s *directoryService) RemoveFavorite(ctx context.Context, userID int64, pharmacyID string) error {
	if err := s.favorites.Remove(ctx, userID, pharmacyID); err != nil {
		return fmt.Errorf("removing favorite failed: %w", err)
	}

	return nil
}
