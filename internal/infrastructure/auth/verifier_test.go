package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
	"github.com/Ola-Segun/inventorysupabase-sub002/internal/mocks"
)

func newVerifierForTest(t *testing.T) (domain.CredentialVerifier, *mocks.MockAccountRepository) {
	t.Helper()
	accounts := mocks.NewMockAccountRepository()
	verifier := NewLocalVerifier(accounts, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), time.Hour)
	return verifier, accounts
}

func confirmedAccount() *domain.Account {
	return &domain.Account{
		ID:             uuid.New(),
		Email:          "user@example.com",
		PasswordHash:   "hashed_correct",
		Role:           "cashier",
		Status:         domain.StatusActive,
		EmailConfirmed: true,
	}
}

func TestLocalVerifier_Success(t *testing.T) {
	verifier, accounts := newVerifierForTest(t)
	account := confirmedAccount()
	accounts.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Account, error) {
		return account, nil
	}

	session, err := verifier.Verify(context.Background(), account.Email, "correct")
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if session.AccountID != account.ID {
		t.Errorf("AccountID = %s, want %s", session.AccountID, account.ID)
	}
	if session.ID == "" {
		t.Error("session ID must be minted")
	}
	if session.AccessToken == "" || session.RefreshToken == "" {
		t.Error("token pair must be minted")
	}
	if !session.ExpiresAt.After(time.Now()) {
		t.Error("session expiry must be in the future")
	}
}

func TestLocalVerifier_WrongPassword(t *testing.T) {
	verifier, accounts := newVerifierForTest(t)
	account := confirmedAccount()
	accounts.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Account, error) {
		return account, nil
	}

	_, err := verifier.Verify(context.Background(), account.Email, "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("Verify() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLocalVerifier_UnknownEmailIndistinguishable(t *testing.T) {
	verifier, _ := newVerifierForTest(t)

	_, err := verifier.Verify(context.Background(), "ghost@example.com", "pw")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("Verify() error = %v, want ErrInvalidCredentials for unknown email", err)
	}
}

func TestLocalVerifier_UnconfirmedEmail(t *testing.T) {
	verifier, accounts := newVerifierForTest(t)
	account := confirmedAccount()
	account.EmailConfirmed = false
	accounts.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Account, error) {
		return account, nil
	}

	_, err := verifier.Verify(context.Background(), account.Email, "correct")
	if !errors.Is(err, domain.ErrEmailNotConfirmed) {
		t.Fatalf("Verify() error = %v, want ErrEmailNotConfirmed", err)
	}
}

func TestLocalVerifier_UnconfirmedWrongPasswordStaysOpaque(t *testing.T) {
	verifier, accounts := newVerifierForTest(t)
	account := confirmedAccount()
	account.EmailConfirmed = false
	accounts.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Account, error) {
		return account, nil
	}

	// The password check runs first: confirmation state leaks only to
	// callers who proved they hold the password.
	_, err := verifier.Verify(context.Background(), account.Email, "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("Verify() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("s3cret-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !svc.Verify(hash, "s3cret-password") {
		t.Error("Verify() = false for the correct password")
	}
	if svc.Verify(hash, "other-password") {
		t.Error("Verify() = true for a wrong password")
	}
}
