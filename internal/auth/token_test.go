package auth

import (
	"strings"
	"testing"
	"time"
)

func TestIssueAndVerify_Roundtrip(t *testing.T) {
	t.Parallel()

	svc := New("super-secret", time.Hour)
	id := Identity{UserID: 42, Email: "a@x.com", FirstName: "Ada", LastName: "Lovelace"}

	tok, err := svc.Issue(id)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	got, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if *got != id {
		t.Fatalf("identity mismatch: got %+v want %+v", *got, id)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	// fake clock: issue at t0, verify after the 1h lifetime has passed
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewWithClock("secret", time.Hour, func() time.Time { return current })

	tok, err := svc.Issue(Identity{UserID: 1})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// still valid just before the boundary
	current = current.Add(time.Hour - time.Second)
	if _, err := svc.Verify(tok); err != nil {
		t.Fatalf("Verify before expiry error: %v", err)
	}

	current = current.Add(2 * time.Second)
	_, err = svc.Verify(tok)
	if err != ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := New("right-secret", time.Hour).Issue(Identity{UserID: 2})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = New("wrong-secret", time.Hour).Verify(tok)
	if err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_Tampered(t *testing.T) {
	t.Parallel()

	svc := New("secret", time.Hour)
	tok, err := svc.Issue(Identity{UserID: 3})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	cases := []string{
		"not.a.jwt",
		"",
		tok[:len(tok)-4],                   // truncated signature
		tok + "xx",                         // extended signature
		strings.ToUpper(tok[:8]) + tok[8:], // corrupted header
	}
	for _, bad := range cases {
		if _, err := svc.Verify(bad); err != ErrTokenInvalid {
			t.Errorf("Verify of tampered token: error = %v, want ErrTokenInvalid", err)
		}
	}
}

func TestIssue_DefaultTTL(t *testing.T) {
	t.Parallel()

	// zero ttl falls back to one hour
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewWithClock("secret", 0, func() time.Time { return current })

	tok, err := svc.Issue(Identity{UserID: 4})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	current = current.Add(59 * time.Minute)
	if _, err := svc.Verify(tok); err != nil {
		t.Fatalf("Verify at 59m error: %v", err)
	}
	current = current.Add(2 * time.Minute)
	if _, err := svc.Verify(tok); err != ErrTokenExpired {
		t.Fatalf("Verify at 61m error = %v, want ErrTokenExpired", err)
	}
}
