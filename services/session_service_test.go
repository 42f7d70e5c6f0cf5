package services

import (
	"errors"
	"testing"

	"sportbuddy_server/models"
)

func TestSessionRoundTrip(t *testing.T) {
	s := NewSessionService("test-secret")
	user := models.User{ID: "u1", Name: "Ana", Email: "ana@example.com"}

	token, err := s.Issue(user)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	claims, err := s.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Subject != "u1" || claims.Email != "ana@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestSessionVerifyFailures(t *testing.T) {
	s := NewSessionService("test-secret")

	if _, err := s.Verify(""); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated for empty token, got %v", err)
	}
	if _, err := s.Verify("not.a.token"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated for garbage token, got %v", err)
	}

	// A token signed under another secret must not verify.
	other := NewSessionService("other-secret")
	token, err := other.Issue(models.User{ID: "u1"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := s.Verify(token); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated for cross-secret token, got %v", err)
	}
}
