package routes

import (
	"sportbuddy_server/controllers"
	"sportbuddy_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match operations under
// /api/matches.
func RegisterMatchRoutes(r *mux.Router, matches *services.MatchService) {
	controller := controllers.NewMatchController(matches)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.HandleFunc("", controller.Create).Methods("POST")
	matchRouter.HandleFunc("/respond", controller.Respond).Methods("GET")
}
