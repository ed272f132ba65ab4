package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "possvc", time.Hour, 24*time.Hour)
	accountID := uuid.New()
	storeID := uuid.NewString()

	token, err := svc.GenerateAccessToken(accountID, "cashier", storeID, "sess-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if claims.AccountID != accountID {
		t.Errorf("AccountID = %s, want %s", claims.AccountID, accountID)
	}
	if claims.Role != "cashier" {
		t.Errorf("Role = %q, want cashier", claims.Role)
	}
	if claims.StoreID != storeID {
		t.Errorf("StoreID = %q, want %q", claims.StoreID, storeID)
	}
	if claims.SessionID != "sess-1" {
		t.Errorf("SessionID = %q, want sess-1", claims.SessionID)
	}
}

func TestJWTService_EmptyStoreIDOmitted(t *testing.T) {
	svc := NewJWTService("test-secret", "possvc", time.Hour, 24*time.Hour)

	token, err := svc.GenerateAccessToken(uuid.New(), "admin", "", "sess-2")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if claims.StoreID != "" {
		t.Errorf("StoreID = %q, want empty", claims.StoreID)
	}
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	issuer := NewJWTService("secret-a", "possvc", time.Hour, 24*time.Hour)
	validator := NewJWTService("secret-b", "possvc", time.Hour, 24*time.Hour)

	token, err := issuer.GenerateAccessToken(uuid.New(), "cashier", "", "sess-3")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := validator.ValidateAccessToken(token); err != domain.ErrTokenInvalid {
		t.Errorf("ValidateAccessToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestJWTService_ExpiredRejected(t *testing.T) {
	svc := NewJWTService("test-secret", "possvc", -time.Minute, 24*time.Hour)

	token, err := svc.GenerateAccessToken(uuid.New(), "cashier", "", "sess-4")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := svc.ValidateAccessToken(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("ValidateAccessToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestJWTService_GarbageRejected(t *testing.T) {
	svc := NewJWTService("test-secret", "possvc", time.Hour, 24*time.Hour)

	if _, err := svc.ValidateAccessToken("not.a.token"); err != domain.ErrTokenInvalid {
		t.Errorf("ValidateAccessToken() error = %v, want ErrTokenInvalid", err)
	}
}
