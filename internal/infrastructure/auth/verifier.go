package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// LocalVerifier implements domain.CredentialVerifier against the local
// account store. It plays the role of the managed auth backend: it checks the
// password and mints the token pair, and nothing else. Lockout, suspension
// and status policy live in the orchestrating auth service, which also
// persists the returned session.
type LocalVerifier struct {
	accounts    domain.AccountRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	sessionTTL  time.Duration
}

// NewLocalVerifier creates a credential verifier backed by the account store.
func NewLocalVerifier(accounts domain.AccountRepository, passwordSvc domain.PasswordService, tokenSvc domain.TokenService, sessionTTL time.Duration) domain.CredentialVerifier {
	return &LocalVerifier{
		accounts:    accounts,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		sessionTTL:  sessionTTL,
	}
}

// Verify implements domain.CredentialVerifier. A wrong password and an
// unknown email are indistinguishable to the caller; an unconfirmed email
// with the correct password is reported separately so the client can offer a
// resend action.
func (v *LocalVerifier) Verify(ctx context.Context, email, password string) (*domain.Session, error) {
	account, err := v.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !v.passwordSvc.Verify(account.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	if !account.EmailConfirmed {
		return nil, domain.ErrEmailNotConfirmed
	}

	sessionID := uuid.NewString()
	storeID := ""
	if account.StoreID != nil {
		storeID = account.StoreID.String()
	}

	accessToken, err := v.tokenSvc.GenerateAccessToken(account.ID, account.Role, storeID, sessionID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := v.tokenSvc.GenerateRefreshToken(account.ID, account.Role, storeID, sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &domain.Session{
		ID:           sessionID,
		AccountID:    account.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    now.Add(v.sessionTTL),
		CreatedAt:    now,
	}, nil
}
