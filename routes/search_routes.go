package routes

import (
	"sportbuddy_server/controllers"
	"sportbuddy_server/services"

	"github.com/gorilla/mux"
)

// RegisterSearchRoutes sets up the partner search route.
func RegisterSearchRoutes(r *mux.Router, search *services.SearchService) {
	controller := controllers.NewSearchController(search)

	r.HandleFunc("/api/search-partners", controller.SearchPartners).Methods("GET")
}
