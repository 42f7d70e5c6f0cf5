package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"sportbuddy_server/models"
	"sportbuddy_server/services"
)

// ActivityController handles activity creation, listing and joining.
type ActivityController struct {
	Activities *services.ActivityService
	Sessions   *services.SessionService
}

// NewActivityController creates a new ActivityController instance.
func NewActivityController(activities *services.ActivityService, sessions *services.SessionService) *ActivityController {
	return &ActivityController{Activities: activities, Sessions: sessions}
}

// Create creates an activity owned by the session's user.
func (c *ActivityController) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r, c.Sessions)
	if err != nil {
		writeError(w, err)
		return
	}

	var req services.CreateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	activity, err := c.Activities.Create(userID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", "/api/activities/"+activity.ID)
	writeJSON(w, http.StatusCreated, activity)
}

// List returns activities, optionally filtered by sport, postal code and
// date query parameters.
func (c *ActivityController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	activities, err := c.Activities.List(services.ListFilter{
		Sport:      q.Get("sport"),
		PostalCode: q.Get("postalCode"),
		Date:       q.Get("date"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"activities": activities})
}

// Get returns one activity by id.
func (c *ActivityController) Get(w http.ResponseWriter, r *http.Request) {
	activity, err := c.Activities.FindByID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

// Join adds the session's user to the activity. Success is 204 per the
// wire contract.
func (c *ActivityController) Join(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r, c.Sessions)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := c.Activities.Join(mux.Vars(r)["id"], userID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Sports returns the sport catalog.
func (c *ActivityController) Sports(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": models.Sports})
}
