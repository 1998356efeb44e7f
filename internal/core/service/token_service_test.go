package service

import (
	"testing"
	"time"

	"github.com/webshop-io/shop-api/internal/core/domain"
)

func TestTokenService_IssueVerifyRoundtrip(t *testing.T) {
	svc := NewTokenService("test-secret")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	token, err := svc.Issue(domain.RoleUser, 42, "alice@example.com", "10.0.0.5", "test-agent", now)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
	if claims.ID != 42 {
		t.Fatalf("unexpected id: %d", claims.ID)
	}
	if claims.Identity != "alice@example.com" {
		t.Fatalf("unexpected identity: %s", claims.Identity)
	}
	if claims.IP != "10.0.0.5" || claims.UA != "test-agent" {
		t.Fatalf("binding not carried: ip=%s ua=%s", claims.IP, claims.UA)
	}
}

func TestTokenService_ExpFourteenDays(t *testing.T) {
	svc := NewTokenService("test-secret")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	token, err := svc.Issue(domain.RoleAdministrator, 1, "admin1", "", "", now)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	want := now.Add(14 * 24 * time.Hour).Unix()
	if claims.Exp != want {
		t.Fatalf("exp = %d, want %d", claims.Exp, want)
	}
}

func TestTokenService_VerifyExpiredStillParses(t *testing.T) {
	// Expiry is enforced by the admission gate, not the verifier: a token
	// past its exp must still verify so later checks run in order.
	svc := NewTokenService("test-secret")
	past := time.Now().Add(-30 * 24 * time.Hour)

	token, err := svc.Issue(domain.RoleUser, 7, "old@example.com", "", "", past)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("expired token failed to verify: %v", err)
	}
	if claims.Exp > time.Now().Unix() {
		t.Fatalf("expected exp in the past, got %d", claims.Exp)
	}
}

func TestTokenService_VerifyTamperedToken(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue(domain.RoleUser, 42, "alice@example.com", "", "", time.Now())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	if _, err := svc.Verify(string(tampered)); err == nil {
		t.Fatalf("tampered token accepted")
	}
}

func TestTokenService_VerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a")
	verifier := NewTokenService("secret-b")

	token, err := issuer.Issue(domain.RoleUser, 42, "alice@example.com", "", "", time.Now())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Fatalf("token signed with different secret accepted")
	}
}

func TestTokenService_IssueRequiresRoleAndIdentity(t *testing.T) {
	svc := NewTokenService("test-secret")

	if _, err := svc.Issue("", 1, "alice", "", "", time.Now()); err == nil {
		t.Fatalf("expected error for empty role")
	}
	if _, err := svc.Issue(domain.RoleUser, 1, "", "", "", time.Now()); err == nil {
		t.Fatalf("expected error for empty identity")
	}
}
