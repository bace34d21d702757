package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenService_RoundTrip(t *testing.T) {
	s := NewTokenService("secret", time.Hour)

	token, err := s.GenerateToken("session-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, err := s.SessionFromHeader("Bearer " + token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "session-1" {
		t.Errorf("expected session-1, got %q", id)
	}
}

func TestTokenService_Rejects(t *testing.T) {
	s := NewTokenService("secret", time.Hour)
	other := NewTokenService("other-secret", time.Hour)
	expired := NewTokenService("secret", -time.Minute)

	foreign, _ := other.GenerateToken("session-1")
	stale, _ := expired.GenerateToken("session-1")

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing bearer prefix", header: "Token abc"},
		{name: "garbage", header: "Bearer not.a.jwt"},
		{name: "wrong secret", header: "Bearer " + foreign},
		{name: "expired", header: "Bearer " + stale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.SessionFromHeader(tt.header); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
