package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pharmaciefficace/feedback/internal/config"
	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/models"
)

type httpDirectoryClient struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPDirectoryClient builds a [DirectoryClient] talking REST to the
// pharmacy directory at cfg.BaseURL.
func NewHTTPDirectoryClient(cfg config.Directory, log *logger.Logger) DirectoryClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:3000"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	log.Debug().Str("base_url", cfg.BaseURL).Msg("creating directory client")

	return &httpDirectoryClient{client: cli, logger: log}
}

func (h *httpDirectoryClient) Departements(ctx context.Context) ([]models.Departement, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/departements")
	if err != nil {
		return nil, fmt.Errorf("departements request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var departements []models.Departement
	if err = json.Unmarshal(resp.Body(), &departements); err != nil {
		return nil, fmt.Errorf("departements decode: %w", err)
	}

	return departements, nil
}

func (h *httpDirectoryClient) Communes(ctx context.Context, departementID string) ([]models.Commune, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", departementID).
		Get("/getCommunes/{id}")
	if err != nil {
		return nil, fmt.Errorf("communes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var communes []models.Commune
	if err = json.Unmarshal(resp.Body(), &communes); err != nil {
		return nil, fmt.Errorf("communes decode: %w", err)
	}

	return communes, nil
}

func (h *httpDirectoryClient) Arrondissements(ctx context.Context, communeID string) ([]models.Arrondissement, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", communeID).
		Get("/getArrondissements/{id}")
	if err != nil {
		return nil, fmt.Errorf("arrondissements request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var arrondissements []models.Arrondissement
	if err = json.Unmarshal(resp.Body(), &arrondissements); err != nil {
		return nil, fmt.Errorf("arrondissements decode: %w", err)
	}

	return arrondissements, nil
}

func (h *httpDirectoryClient) Villages(ctx context.Context, arrondissementID string) ([]models.Village, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", arrondissementID).
		Get("/getVillages/{id}")
	if err != nil {
		return nil, fmt.Errorf("villages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var villages []models.Village
	if err = json.Unmarshal(resp.Body(), &villages); err != nil {
		return nil, fmt.Errorf("villages decode: %w", err)
	}

	return villages, nil
}

func (h *httpDirectoryClient) Pharmacies(ctx context.Context, page int, departementID, communeID string) (models.PharmacyPage, error) {
	if page < 1 {
		page = 1
	}

	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page))
	if departementID != "" {
		req.SetQueryParam("departement", departementID)
	}
	if communeID != "" {
		req.SetQueryParam("commune", communeID)
	}

	resp, err := req.Get("/pharmacies")
	if err != nil {
		return models.PharmacyPage{}, fmt.Errorf("pharmacies request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PharmacyPage{}, err
	}

	var pharmacyPage models.PharmacyPage
	if err = json.Unmarshal(resp.Body(), &pharmacyPage); err != nil {
		return models.PharmacyPage{}, fmt.Errorf("pharmacies decode: %w", err)
	}

	return pharmacyPage, nil
}

func (h *httpDirectoryClient) Pharmacy(ctx context.Context, pharmacyID string) (models.Pharmacy, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", pharmacyID).
		Get("/pharmacies/{id}")
	if err != nil {
		return models.Pharmacy{}, fmt.Errorf("pharmacy request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Pharmacy{}, err
	}

	var pharmacy models.Pharmacy
	if err = json.Unmarshal(resp.Body(), &pharmacy); err != nil {
		return models.Pharmacy{}, fmt.Errorf("pharmacy decode: %w", err)
	}

	return pharmacy, nil
}

func (h *httpDirectoryClient) SearchPharmacies(ctx context.Context, searchReq models.PharmacySearchRequest) ([]models.Pharmacy, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(searchReq).
		Post("/pharmacies/search")
	if err != nil {
		return nil, fmt.Errorf("pharmacy search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var pharmacies []models.Pharmacy
	if err = json.Unmarshal(resp.Body(), &pharmacies); err != nil {
		return nil, fmt.Errorf("pharmacy search decode: %w", err)
	}

	return pharmacies, nil
}

func (h *httpDirectoryClient) CreatePharmacy(ctx context.Context, pharmacy models.Pharmacy) (models.Pharmacy, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(pharmacy).
		Post("/pharmacies")
	if err != nil {
		return models.Pharmacy{}, fmt.Errorf("pharmacy create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Pharmacy{}, err
	}

	var created models.Pharmacy
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Pharmacy{}, fmt.Errorf("pharmacy create decode: %w", err)
	}

	return created, nil
}

func (h *httpDirectoryClient) UpdatePharmacy(ctx context.Context, pharmacy models.Pharmacy) (models.Pharmacy, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", pharmacy.ID).
		SetBody(pharmacy).
		Patch("/pharmacies/{id}")
	if err != nil {
		return models.Pharmacy{}, fmt.Errorf("pharmacy update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Pharmacy{}, err
	}

	var updated models.Pharmacy
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.Pharmacy{}, fmt.Errorf("pharmacy update decode: %w", err)
	}

	return updated, nil
}

func (h *httpDirectoryClient) CheckEmail(ctx context.Context, email string) (bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CheckEmailRequest{Email: email}).
		Post("/check-email")
	if err != nil {
		return false, fmt.Errorf("check-email request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	var result struct {
		Exists bool `json:"exists"`
	}
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return false, fmt.Errorf("check-email decode: %w", err)
	}

	return result.Exists, nil
}
