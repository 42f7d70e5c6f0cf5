package routes

import (
	"sportbuddy_server/controllers"
	"sportbuddy_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up routes for account and session operations
// under /api/auth.
func RegisterAuthRoutes(r *mux.Router, users *services.UserService, sessions *services.SessionService) {
	controller := controllers.NewAuthController(users, sessions)

	authRouter := r.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/signup", controller.Signup).Methods("POST")
	authRouter.HandleFunc("/login", controller.Login).Methods("POST")
	authRouter.HandleFunc("/logout", controller.Logout).Methods("POST")
	authRouter.HandleFunc("/me", controller.Me).Methods("GET")
}
