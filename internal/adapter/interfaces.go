// Package adapter provides the transport layer for the external pharmacy
// directory API.
//
// The primary abstraction is [DirectoryClient], which decouples the service
// layer from the REST protocol of the directory. The package ships an
// HTTP implementation ([NewHTTPDirectoryClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/pharmaciefficace/feedback/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/directory_client_mock.go -package=mock

// DirectoryClient defines transport-agnostic access to the external
// pharmacy directory. Implementations are responsible for serialisation and
// for mapping transport-level errors to the sentinel values defined in this
// package. Response bodies are decoded as-is; no schema validation happens
// at this boundary.
type DirectoryClient interface {
	// Departements lists every first-level subdivision.
	Departements(ctx context.Context) ([]models.Departement, error)

	// Communes lists the communes of one departement.
	Communes(ctx context.Context, departementID string) ([]models.Commune, error)

	// Arrondissements lists the arrondissements of one commune.
	Arrondissements(ctx context.Context, communeID string) ([]models.Arrondissement, error)

	// Villages lists the villages of one arrondissement.
	Villages(ctx context.Context, arrondissementID string) ([]models.Village, error)

	// Pharmacies returns one page of the pharmacy listing, optionally
	// narrowed to a departement and commune. Page numbering starts at 1;
	// page 0 requests the first page.
	Pharmacies(ctx context.Context, page int, departementID, communeID string) (models.PharmacyPage, error)

	// Pharmacy fetches one directory record.
	// Returns [ErrNotFound] (wrapped) on an unknown id.
	Pharmacy(ctx context.Context, pharmacyID string) (models.Pharmacy, error)

	// SearchPharmacies runs a free-text search over the directory.
	SearchPharmacies(ctx context.Context, req models.PharmacySearchRequest) ([]models.Pharmacy, error)

	// CreatePharmacy registers a new pharmacy in the directory.
	CreatePharmacy(ctx context.Context, pharmacy models.Pharmacy) (models.Pharmacy, error)

	// UpdatePharmacy patches an existing directory record.
	// Returns [ErrNotFound] (wrapped) on an unknown id.
	UpdatePharmacy(ctx context.Context, pharmacy models.Pharmacy) (models.Pharmacy, error)

	// CheckEmail asks the directory whether an email is already registered
	// to a pharmacy. Returns true when the email is known.
	CheckEmail(ctx context.Context, email string) (bool, error)
}
