package controllers

import (
	"net/http"

	"sportbuddy_server/services"
)

// SearchController handles partner search queries.
type SearchController struct {
	Search *services.SearchService
}

// NewSearchController creates a new SearchController instance.
func NewSearchController(search *services.SearchService) *SearchController {
	return &SearchController{Search: search}
}

// SearchPartners filters open activities by sport, schedule and postal
// proximity and returns ranked candidates.
func (c *SearchController) SearchPartners(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var sports []string
	for _, s := range q["sports"] {
		if s != "" {
			sports = append(sports, s)
		}
	}

	results, err := c.Search.Search(services.SearchQuery{
		Sports:     sports,
		PostalCode: q.Get("postalCode"),
		Date:       q.Get("date"),
		Time:       q.Get("time"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	if results == nil {
		results = []services.Candidate{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "results": results})
}
