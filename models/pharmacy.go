package models

// Pharmacy is a directory record served by the external pharmacy API.
// Fields mirror the API's response body; no validation is applied at the
// adapter boundary and unknown fields are dropped by the JSON decoder.
type Pharmacy struct {
	ID               string  `json:"id"`
	Name             string  `json:"nom"`
	Address          string  `json:"adresse"`
	Phone            string  `json:"telephone,omitempty"`
	Email            string  `json:"email,omitempty"`
	DepartementID    string  `json:"departement_id,omitempty"`
	CommuneID        string  `json:"commune_id,omitempty"`
	ArrondissementID string  `json:"arrondissement_id,omitempty"`
	VillageID        string  `json:"village_id,omitempty"`
	Latitude         float64 `json:"latitude,omitempty"`
	Longitude        float64 `json:"longitude,omitempty"`
	OnDuty           bool    `json:"de_garde,omitempty"`
}

// PharmacySearchRequest is the body of the directory's POST /pharmacies/search.
type PharmacySearchRequest struct {
	Query         string `json:"query,omitempty"`
	DepartementID string `json:"departement,omitempty"`
	CommuneID     string `json:"commune,omitempty"`
}

// PharmacyPage is one page of a paginated pharmacy listing.
type PharmacyPage struct {
	Data       []Pharmacy `json:"data"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	Total      int        `json:"total"`
}
