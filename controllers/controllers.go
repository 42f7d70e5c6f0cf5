package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"sportbuddy_server/services"
)

// SessionCookie is the name of the session cookie set on login.
const SessionCookie = "sb_session"

// writeJSON encodes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// writeError translates a service error into a status code and a JSON
// body. Validation failures carry the offending field names.
func writeError(w http.ResponseWriter, err error) {
	var fields *services.FieldErrors
	if errors.As(err, &fields) {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"ok":      false,
			"message": "Dados inválidos",
			"fields":  fields.Fields,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
		writeJSON(w, status, map[string]interface{}{"ok": false, "message": "Erro interno do servidor"})
		return
	}
	writeJSON(w, status, map[string]interface{}{"ok": false, "message": err.Error()})
}

// sessionToken pulls the session token from the sb_session cookie, or
// from an Authorization bearer header as a fallback for API clients.
func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// currentUserID verifies the request's session and returns the subject.
func currentUserID(r *http.Request, sessions *services.SessionService) (string, error) {
	claims, err := sessions.Verify(sessionToken(r))
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
