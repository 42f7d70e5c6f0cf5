package controllers

import (
	"encoding/json"
	"net/http"

	"sportbuddy_server/services"
)

// MediaController hands out presigned URLs for avatar uploads.
type MediaController struct {
	Media    *services.MediaService
	Sessions *services.SessionService
}

// NewMediaController creates a new MediaController instance.
func NewMediaController(media *services.MediaService, sessions *services.SessionService) *MediaController {
	return &MediaController{Media: media, Sessions: sessions}
}

// PresignAvatarUpload returns a presigned PUT URL for the session user's
// next avatar.
func (c *MediaController) PresignAvatarUpload(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r, c.Sessions)
	if err != nil {
		writeError(w, err)
		return
	}

	var payload struct {
		ContentType string `json:"contentType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ContentType == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	url, key, err := c.Media.PresignAvatarUpload(r.Context(), userID, payload.ContentType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url, "key": key})
}
