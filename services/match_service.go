package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"sportbuddy_server/models"
)

// MatchService runs the request/respond half of the activity lifecycle.
// A match request is created pending with a single-use token; the owner
// accepts or rejects it through the token link, and acceptance promotes
// the requester to participant.
type MatchService struct {
	Store  *RecordStore
	Users  *UserService
	Notify *NotifyService
}

// newMatchToken returns a 64-char hex token from 32 random bytes.
func newMatchToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate match token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Request records a pending match request by requesterID on the activity
// and notifies the owner with accept/reject links. The requester must not
// be the creator, must not already hold a pending or accepted request,
// and the activity must have a seat left.
func (ms *MatchService) Request(activityID, requesterID string) error {
	if activityID == "" || requesterID == "" {
		return fmt.Errorf("%w: activityId and requesterId are required", ErrValidation)
	}

	requester, err := ms.Users.FindByID(requesterID)
	if err != nil {
		return err
	}
	if requester == nil {
		return fmt.Errorf("%w: unknown requester", ErrNotFound)
	}

	token, err := newMatchToken()
	if err != nil {
		return err
	}

	var owner *models.User
	err = Mutate(ms.Store, models.ActivitiesFile, func(activities []models.Activity) ([]models.Activity, error) {
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

		if act.CreatorID == requesterID {
			return nil, fmt.Errorf("%w: cannot request a match on your own activity", ErrConflict)
		}
		for _, m := range act.Matches {
			if m.UserID == requesterID && (m.Status == models.MatchStatusPending || m.Status == models.MatchStatusAccepted) {
				return nil, fmt.Errorf("%w: request already exists for this activity", ErrConflict)
			}
		}
		if act.Full() {
			return nil, fmt.Errorf("%w: activity is full", ErrConflict)
		}

		creator, err := ms.Users.FindByID(act.CreatorID)
		if err != nil {
			return nil, err
		}
		if creator == nil {
			return nil, fmt.Errorf("%w: unknown activity owner", ErrNotFound)
		}
		owner = creator

		act.Matches = append(act.Matches, models.MatchRequest{
			UserID:      requesterID,
			Status:      models.MatchStatusPending,
			Token:       token,
			RequestedAt: time.Now().UTC().Format(time.RFC3339),
		})
		activities[idx] = act
		return activities, nil
	})
	if err != nil {
		return err
	}

	// Best effort, never fails the request.
	act, err := activityByID(ms.Store, activityID)
	if err == nil {
		ms.Notify.MatchRequested(*owner, *requester, *act, token)
	}
	return nil
}

// RespondResult reports the outcome of a token response for rendering.
type RespondResult struct {
	Accepted bool
	Activity models.Activity
}

// Respond resolves the pending match request holding token. A request is
// responded to exactly once: a replayed token is a conflict with no side
// effects. Accepting re-checks capacity and promotes the requester to
// participant, closing the activity when the last seat is taken.
func (ms *MatchService) Respond(token, action string) (*RespondResult, error) {
	if token == "" || (action != models.MatchActionAccept && action != models.MatchActionReject) {
		return nil, fmt.Errorf("%w: token and action are required", ErrValidation)
	}

	var (
		result      RespondResult
		requesterID string
	)
	err := Mutate(ms.Store, models.ActivitiesFile, func(activities []models.Activity) ([]models.Activity, error) {
		actIdx, matchIdx := -1, -1
		for i := range activities {
			if j := activities[i].FindMatch(token); j != -1 {
				actIdx, matchIdx = i, j
				break
			}
		}
		if actIdx == -1 {
			return nil, fmt.Errorf("%w: unknown match token", ErrNotFound)
		}
		act := activities[actIdx]
		match := act.Matches[matchIdx]

		if match.Status != models.MatchStatusPending {
			return nil, fmt.Errorf("%w: request already processed", ErrConflict)
		}

		now := time.Now().UTC().Format(time.RFC3339)
		if action == models.MatchActionAccept {
			if act.Full() {
				return nil, fmt.Errorf("%w: activity is full", ErrConflict)
			}
			match.Status = models.MatchStatusAccepted
			match.RespondedAt = now
			act.Matches[matchIdx] = match
			act.Participants = append(act.Participants, models.Participant{
				UserID:   match.UserID,
				JoinedAt: now,
				Role:     models.RoleMember,
			})
			if act.Full() {
				act.Status = models.ActivityStatusClosed
			}
		} else {
			match.Status = models.MatchStatusRejected
			match.RespondedAt = now
			act.Matches[matchIdx] = match
		}

		activities[actIdx] = act
		requesterID = match.UserID
		result = RespondResult{Accepted: action == models.MatchActionAccept, Activity: act}
		return activities, nil
	})
	if err != nil {
		return nil, err
	}

	if result.Accepted {
		requester, rErr := ms.Users.FindByID(requesterID)
		owner, oErr := ms.Users.FindByID(result.Activity.CreatorID)
		if rErr == nil && oErr == nil && requester != nil && owner != nil {
			ms.Notify.MatchAccepted(*requester, *owner, result.Activity)
		}
	}
	return &result, nil
}

func activityByID(rs *RecordStore, id string) (*models.Activity, error) {
	activities, err := ReadAll[models.Activity](rs, models.ActivitiesFile)
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
