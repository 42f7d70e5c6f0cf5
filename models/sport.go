package models

// Sport is an entry of the fixed sport catalog. CatalogID is the numeric
// modality id used by the legacy backend.
type Sport struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	CatalogID int    `json:"catalogId"`
}

// Sports is the catalog of recognized sports, sorted by label.
var Sports = []Sport{
	{ID: "basquete", Label: "Basquete", CatalogID: 9},
	{ID: "boxe", Label: "Boxe", CatalogID: 4},
	{ID: "ciclismo", Label: "Ciclismo", CatalogID: 7},
	{ID: "corrida", Label: "Corrida", CatalogID: 1},
	{ID: "futebol", Label: "Futebol", CatalogID: 5},
	{ID: "musculacao", Label: "Musculação", CatalogID: 2},
	{ID: "natacao", Label: "Natação", CatalogID: 3},
	{ID: "tenis", Label: "Tênis", CatalogID: 8},
	{ID: "volei", Label: "Vôlei", CatalogID: 6},
}

// IsSport reports whether id is a recognized sport identifier.
func IsSport(id string) bool {
	for _, s := range Sports {
		if s.ID == id {
			return true
		}
	}
	return false
}
