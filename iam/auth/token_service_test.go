package auth

import (
	"testing"
	"time"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"
)

func TestJWTRoundtrip(t *testing.T) {
	svc := NewJWTService("secret", "vacancy-management", time.Hour)

	token, expiresAt, err := svc.GenerateAccessToken(7, kernel.NewEmail("jane@example.com"), []string{"Admin", "User"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Errorf("expiry %v is not in the future", expiresAt)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Email.String() != "jane@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != "Admin" {
		t.Errorf("Roles = %v", claims.Roles)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	signer := NewJWTService("secret-a", "vacancy-management", time.Hour)
	verifier := NewJWTService("secret-b", "vacancy-management", time.Hour)

	token, _, err := signer.GenerateAccessToken(1, kernel.NewEmail("x@example.com"), nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := verifier.ValidateAccessToken(token); err == nil {
		t.Error("token signed with another secret was accepted")
	}
}

func TestJWTRejectsWrongIssuer(t *testing.T) {
	signer := NewJWTService("secret", "other-service", time.Hour)
	verifier := NewJWTService("secret", "vacancy-management", time.Hour)

	token, _, err := signer.GenerateAccessToken(1, kernel.NewEmail("x@example.com"), nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := verifier.ValidateAccessToken(token); err == nil {
		t.Error("token with a foreign issuer was accepted")
	}
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("secret", "vacancy-management", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := svc.GenerateAccessToken(1, kernel.NewEmail("x@example.com"), nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateAccessToken(token); err == nil {
		t.Error("expired token was accepted")
	}
}

func TestJWTRejectsGarbage(t *testing.T) {
	svc := NewJWTService("secret", "vacancy-management", time.Hour)
	if _, err := svc.ValidateAccessToken("not.a.token"); err == nil {
		t.Error("garbage token was accepted")
	}
}
