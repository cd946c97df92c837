package models

// Administrative subdivisions served by the external directory API.
// The hierarchy is departement → commune → arrondissement → village.

// Departement is a first-level administrative subdivision.
type Departement struct {
	ID   string `json:"id"`
	Name string `json:"nom"`
}

// Commune is a second-level subdivision belonging to one departement.
type Commune struct {
	ID            string `json:"id"`
	Name          string `json:"nom"`
	DepartementID string `json:"departement_id"`
}

// Arrondissement is a third-level subdivision belonging to one commune.
type Arrondissement struct {
	ID        string `json:"id"`
	Name      string `json:"nom"`
	CommuneID string `json:"commune_id"`
}

// Village is a fourth-level subdivision belonging to one arrondissement.
type Village struct {
	ID               string `json:"id"`
	Name             string `json:"nom"`
	ArrondissementID string `json:"arrondissement_id"`
}
