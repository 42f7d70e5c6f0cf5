package controllers

import (
	"encoding/json"
	"net/http"

	"sportbuddy_server/services"
)

// AuthController handles signup, login, logout and the current-session
// endpoint.
type AuthController struct {
	Users    *services.UserService
	Sessions *services.SessionService
}

// NewAuthController creates a new AuthController instance.
func NewAuthController(users *services.UserService, sessions *services.SessionService) *AuthController {
	return &AuthController{Users: users, Sessions: sessions}
}

// Signup registers a new account.
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req services.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := c.Users.Signup(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "id": user.ID, "username": user.Username})
}

// Login checks credentials and sets the session cookie.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := c.Users.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	token, err := c.Sessions.Issue(*user)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(c.Sessions.MaxAge.Seconds()),
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "token": token})
}

// Logout clears the session cookie.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
}

// Me returns the profile of the session's user.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r, c.Sessions)
	if err != nil {
		writeError(w, err)
		return
	}
	user, err := c.Users.FindByID(userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"ok": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok": true,
		"user": map[string]interface{}{
			"id":         user.ID,
			"email":      user.Email,
			"name":       user.Name,
			"username":   user.Username,
			"birthdate":  user.Birthdate,
			"gender":     user.Gender,
			"postalCode": user.PostalCode,
			"region":     user.Region,
			"street":     user.Street,
			"sports":     user.Sports,
			"avatarUrl":  user.AvatarURL,
		},
	})
}
