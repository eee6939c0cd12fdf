package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	tok, err := svc.GenerateAccessToken(userID, "dev@example.com", "developer")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "dev@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Role != "developer" {
		t.Errorf("Role = %q, want developer", claims.Role)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("TokenType = %q", claims.TokenType)
	}
	if svc.IsRefreshToken(claims) {
		t.Error("access token reported as refresh token")
	}
}

func TestRefreshTokenCarriesNoIdentityDetails(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	tok, err := svc.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if !svc.IsRefreshToken(claims) {
		t.Error("refresh token not recognized")
	}
	if claims.Email != "" || claims.Role != "" {
		t.Errorf("refresh token leaked identity: email=%q role=%q", claims.Email, claims.Role)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-1 * time.Hour) }

	tok, err := svc.GenerateAccessToken(uuid.New(), "dev@example.com", "developer")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	svc := newTestService()

	tok, err := svc.GenerateAccessToken(uuid.New(), "dev@example.com", "customer")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	other := NewHMACService("different-access", "different-refresh", 15*time.Minute, 24*time.Hour)
	if _, err := other.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}
