package models

// Participant is a confirmed attendee of an activity. Participants are
// appended exactly once per user and never removed.
type Participant struct {
	UserID   string `json:"userId"`
	JoinedAt string `json:"joinedAt"`
	Role     string `json:"role"`
}

// MatchRequest is a pending request by a non-participant to join an
// activity. The token is the single-use credential embedded in the
// accept/reject links mailed to the owner.
type MatchRequest struct {
	UserID      string `json:"userId"`
	Status      string `json:"status"`
	Token       string `json:"token"`
	RequestedAt string `json:"requestedAt"`
	RespondedAt string `json:"respondedAt,omitempty"`
}

// Activity is a scheduled sport session. It owns its participant and match
// lists; the whole record is rewritten on every mutation.
type Activity struct {
	ID           string         `json:"id"`
	CreatedAt    string         `json:"createdAt"`
	CreatorID    string         `json:"creatorId"`
	Sport        string         `json:"sport"`
	Date         string         `json:"date"` // YYYY-MM-DD
	Time         string         `json:"time"` // HH:MM
	PostalCode   string         `json:"postalCode"`
	Region       string         `json:"region"`
	Street       string         `json:"street"`
	Title        string         `json:"title,omitempty"`
	Notes        string         `json:"notes,omitempty"`
	Capacity     *int           `json:"capacity"` // nil = unlimited
	Status       string         `json:"status"`
	Participants []Participant  `json:"participants"`
	Matches      []MatchRequest `json:"matches"`
}

// ActivitiesFile is the record file holding the activity collection.
const ActivitiesFile = "activities.jsonl"

// HasParticipant reports whether userID is already on the participant list.
func (a Activity) HasParticipant(userID string) bool {
	for _, p := range a.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// Full reports whether the participant count has reached capacity.
// Unlimited activities are never full.
func (a Activity) Full() bool {
	return a.Capacity != nil && len(a.Participants) >= *a.Capacity
}

// FindMatch returns the index of the match request holding token, or -1.
func (a Activity) FindMatch(token string) int {
	for i, m := range a.Matches {
		if m.Token == token {
			return i
		}
	}
	return -1
}
