package services

import (
	"errors"
	"testing"

	"sportbuddy_server/models"
)

func intPtr(v int) *int { return &v }

func validActivity() CreateActivityRequest {
	return CreateActivityRequest{
		Sport:      "futebol",
		Date:       "2100-06-15",
		Time:       "18:30",
		PostalCode: "38400-100",
		Region:     "MG",
		Street:     "Av. Brasil, Centro - Uberlândia",
		Title:      "Futebol de quinta",
		Capacity:   intPtr(10),
	}
}

func TestCreateActivity(t *testing.T) {
	as := &ActivityService{Store: newTestStore(t)}

	act, err := as.Create("creator-1", validActivity())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if act.Status != models.ActivityStatusOpen {
		t.Fatalf("expected open status, got %s", act.Status)
	}
	if len(act.Participants) != 1 || act.Participants[0].UserID != "creator-1" || act.Participants[0].Role != models.RoleOwner {
		t.Fatalf("expected creator as sole owner participant, got %v", act.Participants)
	}
	if len(act.Matches) != 0 {
		t.Fatalf("expected no matches, got %v", act.Matches)
	}
	if act.Capacity == nil || *act.Capacity != 10 {
		t.Fatalf("expected capacity 10, got %v", act.Capacity)
	}
}

func TestCreateActivityMissingFields(t *testing.T) {
	as := &ActivityService{Store: newTestStore(t)}

	req := validActivity()
	req.Sport = ""
	req.Street = " "
	_, err := as.Create("creator-1", req)
	var fields *FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if len(fields.Fields) != 2 {
		t.Fatalf("expected sport and street flagged, got %v", fields.Fields)
	}
}

func TestCreateActivityUnknownSport(t *testing.T) {
	as := &ActivityService{Store: newTestStore(t)}

	req := validActivity()
	req.Sport = "quadribol"
	if _, err := as.Create("creator-1", req); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateActivityCapacity(t *testing.T) {
	as := &ActivityService{Store: newTestStore(t)}

	// Negative capacity is rejected.
	req := validActivity()
	req.Capacity = intPtr(-1)
	if _, err := as.Create("creator-1", req); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for negative capacity, got %v", err)
	}

	// Zero means unlimited on the wire and nil internally.
	req = validActivity()
	req.Capacity = intPtr(0)
	act, err := as.Create("creator-1", req)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if act.Capacity != nil {
		t.Fatalf("expected unlimited capacity, got %v", *act.Capacity)
	}
}

func TestJoinUnknownActivity(t *testing.T) {
	as := &ActivityService{Store: newTestStore(t)}
	if _, err := as.Join("missing", "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestJoinTwiceConflicts(t *testing.T) {
	as := &ActivityService{Store: newTestStore(t)}
	act, err := as.Create("creator-1", validActivity())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := as.Join(act.ID, "user-2"); err != nil {
		t.Fatalf("first join failed: %v", err)
	}
	if _, err := as.Join(act.ID, "user-2"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict on duplicate join, got %v", err)
	}

	after, err := as.FindByID(act.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	count := 0
	for _, p := range after.Participants {
		if p.UserID == "user-2" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one participant entry for user-2, got %d", count)
	}
}

func TestJoinReachingCapacityClosesActivity(t *testing.T) {
	as := &ActivityService{Store: newTestStore(t)}
	req := validActivity()
	req.Capacity = intPtr(2)
	act, err := as.Create("creator-1", req)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	result, err := as.Join(act.ID, "user-2")
	if err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if result.ParticipantsCount != 2 || result.Status != models.ActivityStatusClosed {
		t.Fatalf("expected count 2 and closed status, got %v", result)
	}

	if _, err := as.Join(act.ID, "user-3"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict joining a closed activity, got %v", err)
	}
}

func TestJoinPastActivity(t *testing.T) {
	as := &ActivityService{Store: newTestStore(t)}
	act, err := as.Create("creator-1", validActivity())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	act.Date = "2000-01-01"
	if err := as.Upsert(*act); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	if _, err := as.Join(act.ID, "user-2"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict joining a past activity, got %v", err)
	}
}

func TestJoinUnlimitedCapacityStaysOpen(t *testing.T) {
	as := &ActivityService{Store: newTestStore(t)}
	req := validActivity()
	req.Capacity = nil
	act, err := as.Create("creator-1", req)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	for _, u := range []string{"user-2", "user-3", "user-4"} {
		result, err := as.Join(act.ID, u)
		if err != nil {
			t.Fatalf("join by %s failed: %v", u, err)
		}
		if result.Status != models.ActivityStatusOpen {
			t.Fatalf("expected unlimited activity to stay open, got %s", result.Status)
		}
	}
}

func TestListFiltersAndSorts(t *testing.T) {
	as := &ActivityService{Store: newTestStore(t)}

	a := validActivity()
	a.Date = "2100-06-20"
	a.Time = "09:00"
	if _, err := as.Create("creator-1", a); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	b := validActivity()
	b.Date = "2100-06-15"
	b.Time = "18:30"
	if _, err := as.Create("creator-1", b); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	c := validActivity()
	c.Sport = "corrida"
	if _, err := as.Create("creator-1", c); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	futebol, err := as.List(ListFilter{Sport: "futebol"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(futebol) != 2 {
		t.Fatalf("expected 2 futebol activities, got %d", len(futebol))
	}
	if futebol[0].Date != "2100-06-15" {
		t.Fatalf("expected earliest date first, got %s", futebol[0].Date)
	}
}

func TestUpsertReplacesById(t *testing.T) {
	as := &ActivityService{Store: newTestStore(t)}
	act, err := as.Create("creator-1", validActivity())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	act.Title = "Novo título"
	if err := as.Upsert(*act); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	all, err := ReadAll[models.Activity](as.Store, models.ActivitiesFile)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 activity after upsert, got %d", len(all))
	}
	if all[0].Title != "Novo título" {
		t.Fatalf("expected replaced title, got %s", all[0].Title)
	}
}
