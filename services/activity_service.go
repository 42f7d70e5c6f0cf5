package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"sportbuddy_server/models"
	"sportbuddy_server/utils"
)

// ActivityService owns the activity collection: creation, lookups and the
// join path of the lifecycle. Every mutation is a read-modify-write of
// the whole activities file under the store's file lock.
type ActivityService struct {
	Store *RecordStore
}

// CreateActivityRequest is the payload accepted by Create. A nil or zero
// capacity means unlimited, matching the wire contract of the legacy
// backend (unlimited travels as integer 0).
type CreateActivityRequest struct {
	Sport      string `json:"sport"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	PostalCode string `json:"postalCode"`
	Region     string `json:"region"`
	Street     string `json:"street"`
	Title      string `json:"title"`
	Notes      string `json:"notes"`
	Capacity   *int   `json:"capacity"`
}

func (r CreateActivityRequest) validate() error {
	var bad []string
	if strings.TrimSpace(r.Sport) == "" || !models.IsSport(r.Sport) {
		bad = append(bad, "sport")
	}
	if strings.TrimSpace(r.Date) == "" {
		bad = append(bad, "date")
	}
	if strings.TrimSpace(r.Time) == "" {
		bad = append(bad, "time")
	}
	if strings.TrimSpace(r.PostalCode) == "" {
		bad = append(bad, "postalCode")
	}
	if strings.TrimSpace(r.Region) == "" {
		bad = append(bad, "region")
	}
	if strings.TrimSpace(r.Street) == "" {
		bad = append(bad, "street")
	}
	if r.Capacity != nil && *r.Capacity < 0 {
		bad = append(bad, "capacity")
	}
	if len(bad) > 0 {
		return &FieldErrors{Fields: bad}
	}
	return nil
}

// Create appends a new open activity with the creator as its sole owner
// participant.
func (as *ActivityService) Create(creatorID string, req CreateActivityRequest) (*models.Activity, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	var capacity *int
	if req.Capacity != nil && *req.Capacity > 0 {
		c := *req.Capacity
		capacity = &c
	}

	now := time.Now().UTC().Format(time.RFC3339)
	activity := models.Activity{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		CreatorID:  creatorID,
		Sport:      req.Sport,
		Date:       req.Date,
		Time:       req.Time,
		PostalCode: req.PostalCode,
		Region:     req.Region,
		Street:     req.Street,
		Title:      strings.TrimSpace(req.Title),
		Notes:      strings.TrimSpace(req.Notes),
		Capacity:   capacity,
		Status:     models.ActivityStatusOpen,
		Participants: []models.Participant{
			{UserID: creatorID, JoinedAt: now, Role: models.RoleOwner},
		},
		Matches: []models.MatchRequest{},
	}
	if err := AppendOne(as.Store, models.ActivitiesFile, activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

// FindByID returns the activity with the given id.
func (as *ActivityService) FindByID(id string) (*models.Activity, error) {
	activities, err := ReadAll[models.Activity](as.Store, models.ActivitiesFile)
	if err != nil {
		return nil, err
	}
	for i := range activities {
		if activities[i].ID == id {
			return &activities[i], nil
		}
	}
	return nil, fmt.Errorf("%w: unknown activity", ErrNotFound)
}

// ListFilter narrows List. Empty fields match everything.
type ListFilter struct {
	Sport      string
	PostalCode string
	Date       string
}

// List returns activities matching the filter, sorted by date then time.
func (as *ActivityService) List(filter ListFilter) ([]models.Activity, error) {
	activities, err := ReadAll[models.Activity](as.Store, models.ActivitiesFile)
	if err != nil {
		return nil, err
	}

	var out []models.Activity
	for _, a := range activities {
		if filter.Sport != "" && a.Sport != filter.Sport {
			continue
		}
		if filter.PostalCode != "" && a.PostalCode != filter.PostalCode {
			continue
		}
		if filter.Date != "" && a.Date != filter.Date {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

// Upsert replaces the activity with the same id, or appends it when the
// id is new. The whole collection is rewritten either way.
func (as *ActivityService) Upsert(activity models.Activity) error {
	return Mutate(as.Store, models.ActivitiesFile, func(activities []models.Activity) ([]models.Activity, error) {
		for i := range activities {
			if activities[i].ID == activity.ID {
				activities[i] = activity
				return activities, nil
			}
		}
		return append(activities, activity), nil
	})
}

// JoinResult reports the state of the activity after a successful join.
type JoinResult struct {
	ParticipantsCount int    `json:"participantsCount"`
	Status            string `json:"status"`
}

// Join appends userID as a member participant. The activity must exist,
// be open, lie strictly in the future, have a seat left and not already
// list the user. Reaching capacity closes the activity.
func (as *ActivityService) Join(activityID, userID string) (*JoinResult, error) {
	var result JoinResult
	err := Mutate(as.Store, models.ActivitiesFile, func(activities []models.Activity) ([]models.Activity, error) {
		idx := -1
		for i := range activities {
			if activities[i].ID == activityID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, fmt.Errorf("%w: unknown activity", ErrNotFound)
		}
		act := activities[idx]

		if act.Status != models.ActivityStatusOpen {
			return nil, fmt.Errorf("%w: activity is not open", ErrConflict)
		}
		if !utils.IsFuture(act.Date, act.Time) {
			return nil, fmt.Errorf("%w: activity has already started", ErrConflict)
		}
		if act.HasParticipant(userID) {
			return nil, fmt.Errorf("%w: already participating", ErrConflict)
		}
		if act.Full() {
			return nil, fmt.Errorf("%w: activity is full", ErrConflict)
		}

		act.Participants = append(act.Participants, models.Participant{
			UserID:   userID,
			JoinedAt: time.Now().UTC().Format(time.RFC3339),
			Role:     models.RoleMember,
		})
		if act.Full() {
			act.Status = models.ActivityStatusClosed
		}

		activities[idx] = act
		result = JoinResult{ParticipantsCount: len(act.Participants), Status: act.Status}
		return activities, nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
