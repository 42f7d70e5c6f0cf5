package routes

import (
	"sportbuddy_server/controllers"
	"sportbuddy_server/services"

	"github.com/gorilla/mux"
)

// RegisterMediaRoutes sets up the avatar upload route. Only called when
// an S3 bucket is configured.
func RegisterMediaRoutes(r *mux.Router, media *services.MediaService, sessions *services.SessionService) {
	controller := controllers.NewMediaController(media, sessions)

	r.HandleFunc("/api/media/avatar-upload", controller.PresignAvatarUpload).Methods("POST")
}
