package routes

import (
	"sportbuddy_server/controllers"
	"sportbuddy_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up routes for profile operations.
func RegisterUserRoutes(r *mux.Router, users *services.UserService, sessions *services.SessionService) {
	controller := controllers.NewUserController(users, sessions)

	r.HandleFunc("/api/users/{username}", controller.GetByUsername).Methods("GET")
	r.HandleFunc("/api/me", controller.UpdateMe).Methods("PUT")
	r.HandleFunc("/api/username/available", controller.UsernameAvailable).Methods("GET")
}
