package routes

import (
	"sportbuddy_server/controllers"
	"sportbuddy_server/services"

	"github.com/gorilla/mux"
)

// RegisterActivityRoutes sets up routes for activity operations under
// /api/activities, plus the sport catalog.
func RegisterActivityRoutes(r *mux.Router, activities *services.ActivityService, sessions *services.SessionService) {
	controller := controllers.NewActivityController(activities, sessions)

	activityRouter := r.PathPrefix("/api/activities").Subrouter()
	activityRouter.HandleFunc("", controller.Create).Methods("POST")
	activityRouter.HandleFunc("", controller.List).Methods("GET")
	activityRouter.HandleFunc("/{id}", controller.Get).Methods("GET")
	activityRouter.HandleFunc("/{id}/join", controller.Join).Methods("POST")

	r.HandleFunc("/api/sports", controller.Sports).Methods("GET")
}
