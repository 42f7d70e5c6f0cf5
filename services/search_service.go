package services

import (
	"fmt"
	"sort"
	"strings"

	"sportbuddy_server/models"
	"sportbuddy_server/utils"
)

// maxPrefixDistance is the postal proximity cutoff: activities whose
// numeric 5-digit prefix differs by more than this are excluded.
const maxPrefixDistance = 100

// SearchService is a read-only projection over activities and users that
// finds open activities with seats left, filtered by sport, schedule and
// postal proximity.
type SearchService struct {
	Store *RecordStore
}

// SearchQuery narrows a partner search. Zero-valued fields match
// everything; an absent date/time restricts results to the future.
type SearchQuery struct {
	Sports     []string
	PostalCode string
	Date       string
	Time       string
}

// Candidate is one search hit, projected to display-safe fields only.
type Candidate struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl"`
	Sport     string `json:"sport"`
	Time      string `json:"time"`
	Locality  string `json:"locality"`
	Region    string `json:"region"`
}

// Search filters open activities by the query and ranks them by postal
// proximity, ties broken by time-of-day.
func (ss *SearchService) Search(q SearchQuery) ([]Candidate, error) {
	activities, err := ReadAll[models.Activity](ss.Store, models.ActivitiesFile)
	if err != nil {
		return nil, err
	}
	users, err := ReadAll[models.User](ss.Store, models.UsersFile)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u // later snapshots overwrite earlier ones
	}

	type scored struct {
		candidate Candidate
		proximity int
	}
	var hits []scored
	for _, act := range activities {
		if act.Status != models.ActivityStatusOpen {
			continue
		}
		if len(q.Sports) > 0 && !containsString(q.Sports, act.Sport) {
			continue
		}
		if q.Date != "" && act.Date != q.Date {
			continue
		}
		if q.Time != "" && !utils.TimeAtOrAfter(act.Time, q.Time) {
			continue
		}
		if (q.Date == "" || q.Time == "") && !utils.IsFuture(act.Date, act.Time) {
			continue
		}
		proximity := 0
		if utils.PostalPrefix(q.PostalCode) != "" {
			proximity = utils.PrefixDistance(q.PostalCode, act.PostalCode)
			if proximity > maxPrefixDistance {
				continue
			}
		}
		if act.Full() {
			continue
		}

		creator, ok := byID[act.CreatorID]
		if !ok {
			creator = models.User{Name: "Usuário", Username: "usuario"}
		}
		avatar := creator.AvatarURL
		if avatar == "" {
			avatar = fmt.Sprintf("https://i.pravatar.cc/150?u=%s", act.CreatorID)
		}

		hits = append(hits, scored{
			candidate: Candidate{
				ID:        act.ID,
				Name:      creator.Name,
				Username:  creator.Username,
				AvatarURL: avatar,
				Sport:     act.Sport,
				Time:      act.Time,
				Locality:  locality(act.Street, act.Region),
				Region:    act.Region,
			},
			proximity: proximity,
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].proximity != hits[j].proximity {
			return hits[i].proximity < hits[j].proximity
		}
		return hits[i].candidate.Time < hits[j].candidate.Time
	})

	results := make([]Candidate, len(hits))
	for i, h := range hits {
		results[i] = h.candidate
	}
	return results, nil
}

// locality derives a neighborhood-level display string from a free-form
// street line ("Rua X, Bairro - Cidade"), falling back to the region.
func locality(street, region string) string {
	parts := strings.Split(street, ",")
	if len(parts) >= 2 {
		if loc := strings.TrimSpace(strings.SplitN(parts[1], "-", 2)[0]); loc != "" {
			return loc
		}
	}
	return region
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
