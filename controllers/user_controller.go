package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"sportbuddy_server/services"
)

// UserController handles public profile lookups, profile edits and
// username availability checks.
type UserController struct {
	Users    *services.UserService
	Sessions *services.SessionService
}

// NewUserController creates a new UserController instance.
func NewUserController(users *services.UserService, sessions *services.SessionService) *UserController {
	return &UserController{Users: users, Sessions: sessions}
}

// GetByUsername returns the public profile for a username.
func (c *UserController) GetByUsername(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	user, err := c.Users.FindByUsername(username)
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"ok": false, "message": "Usuário não encontrado"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "user": user.Public()})
}

// UpdateMe edits the mutable profile fields of the session's user.
func (c *UserController) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r, c.Sessions)
	if err != nil {
		writeError(w, err)
		return
	}

	var upd services.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := c.Users.UpdateProfile(userID, upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "user": user.Public()})
}

// UsernameAvailable reports whether the ?u= username can still be taken.
func (c *UserController) UsernameAvailable(w http.ResponseWriter, r *http.Request) {
	available, reason, err := c.Users.CheckUsername(r.URL.Query().Get("u"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"available": available, "reason": reason})
}
