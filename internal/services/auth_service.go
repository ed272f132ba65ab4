package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// AuthServiceImpl implements domain.AuthService. Login is the orchestrator:
// it owns the lockout/status policy around the credential verifier and is the
// only writer of the attempt counter. Each login attempt performs at most one
// counter update.
type AuthServiceImpl struct {
	accounts    domain.AccountRepository
	stores      domain.StoreRepository
	sessions    domain.SessionRepository
	audit       domain.AuditRepository
	verifier    domain.CredentialVerifier
	passwordSvc domain.PasswordService
	confirmSvc  domain.ConfirmationService
	notifySvc   domain.NotificationService
	lockout     LockoutPolicy
	accessTTL   time.Duration

	now func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(
	accounts domain.AccountRepository,
	stores domain.StoreRepository,
	sessions domain.SessionRepository,
	audit domain.AuditRepository,
	verifier domain.CredentialVerifier,
	passwordSvc domain.PasswordService,
	confirmSvc domain.ConfirmationService,
	notifySvc domain.NotificationService,
	lockout LockoutPolicy,
	accessTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		accounts:    accounts,
		stores:      stores,
		sessions:    sessions,
		audit:       audit,
		verifier:    verifier,
		passwordSvc: passwordSvc,
		confirmSvc:  confirmSvc,
		notifySvc:   notifySvc,
		lockout:     lockout,
		accessTTL:   accessTTL,
		now:         time.Now,
	}
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, email, name, phone, password, role string, storeID *uuid.UUID) (*domain.Account, error) {
	existing, err := s.accounts.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, domain.ErrAccountExists
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		Email:        email,
		Name:         name,
		Phone:        phone,
		PasswordHash: hashedPassword,
		Role:         role,
		Status:       domain.StatusActive,
		StoreID:      storeID,
		CreatedAt:    s.now(),
		UpdatedAt:    s.now(),
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if err := s.confirmSvc.Send(ctx, account.Email); err != nil {
		return nil, fmt.Errorf("failed to send confirmation code: %w", err)
	}

	s.record(ctx, domain.NewAuditEvent(domain.RegistrationEvent).WithAccount(account.ID, account.Email))

	return account, nil
}

// Login implements domain.AuthService. The per-attempt state machine:
//
//	suspended            -> ErrAccountSuspended, credentials never checked
//	locked, in future    -> AccountLockedError with the stored expiry
//	locked, expired      -> counter and lock cleared, flow continues
//	verifier failure     -> one atomic increment, lockout evaluated:
//	                        fresh lock  -> AccountLockedError{JustLocked}
//	                        under limit -> CredentialsError with remaining
//	unknown account      -> verifier still consulted, CredentialsError
//	                        without remaining (no existence leak)
//	verifier success     -> non-active status rejected, counter reset,
//	                        session persisted
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string, client *domain.ClientContext) (*domain.AuthResult, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}
	known := account != nil

	if known {
		if account.Status == domain.StatusSuspended {
			s.record(ctx, domain.NewAuditEvent(domain.LoginFailureEvent).
				WithAccount(account.ID, account.Email).
				WithClientContext(client).
				WithError(domain.ErrAccountSuspended))
			return nil, domain.ErrAccountSuspended
		}

		now := s.now()
		if s.lockout.IsLocked(account.LockedUntil, now) {
			return nil, &domain.AccountLockedError{Until: *account.LockedUntil}
		}
		if account.LockedUntil != nil {
			// Lock expired naturally: clear it together with the counter
			// before the attempt is evaluated.
			if err := s.accounts.ResetLoginAttempts(ctx, account.ID); err != nil {
				return nil, err
			}
			account.LoginAttempts = 0
			account.LockedUntil = nil
			s.record(ctx, domain.NewAuditEvent(domain.LockExpiredEvent).
				WithAccount(account.ID, account.Email).
				WithClientContext(client))
		}
	}

	session, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		return nil, s.rejectFailedVerification(ctx, account, email, client, err)
	}

	if !known {
		// The verifier recognized credentials this service could not look up.
		// Resolve the profile lazily so the success path stays uniform.
		account, err = s.accounts.FindByID(ctx, session.AccountID)
		if err != nil {
			return nil, err
		}
	}

	if account.Status != domain.StatusActive {
		s.record(ctx, domain.NewAuditEvent(domain.LoginFailureEvent).
			WithAccount(account.ID, account.Email).
			WithClientContext(client).
			WithError(domain.ErrAccountInactive))
		return nil, domain.ErrAccountInactive
	}

	if account.LoginAttempts > 0 || account.LockedUntil != nil {
		if err := s.accounts.ResetLoginAttempts(ctx, account.ID); err != nil {
			return nil, err
		}
		account.LoginAttempts = 0
		account.LockedUntil = nil
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	var store *domain.Store
	if account.StoreID != nil {
		if store, err = s.stores.FindByID(ctx, *account.StoreID); err != nil {
			// The login itself succeeded; a missing store row only degrades
			// the response payload.
			log.Printf("STORE_LOOKUP_FAILED: account_id=%s store_id=%s error=%v", account.ID, account.StoreID, err)
			store = nil
		}
	}

	event := domain.NewAuditEvent(domain.LoginEvent).
		WithAccount(account.ID, account.Email).
		WithClientContext(client)
	event.SessionID = session.ID
	s.record(ctx, event)

	return &domain.AuthResult{
		Account:   account,
		Store:     store,
		Session:   session,
		ExpiresIn: int64(s.accessTTL.Seconds()),
	}, nil
}

// rejectFailedVerification maps a verifier error to the caller-facing
// rejection, doing the attempt bookkeeping for known accounts. Counter and
// lock writes are best-effort on this path: the rejection is returned even if
// the bookkeeping write fails.
func (s *AuthServiceImpl) rejectFailedVerification(ctx context.Context, account *domain.Account, email string, client *domain.ClientContext, verr error) error {
	if errors.Is(verr, domain.ErrEmailNotConfirmed) {
		// Correct password, unconfirmed address: not a credential failure,
		// so the counter stays put.
		s.record(ctx, domain.NewAuditEvent(domain.LoginFailureEvent).
			WithEmail(email).
			WithClientContext(client).
			WithError(verr))
		return domain.ErrEmailNotConfirmed
	}

	if !errors.Is(verr, domain.ErrInvalidCredentials) {
		return verr
	}

	if account == nil {
		s.record(ctx, domain.NewAuditEvent(domain.LoginFailureEvent).
			WithEmail(email).
			WithClientContext(client).
			WithError(verr))
		return &domain.CredentialsError{}
	}

	attempts, err := s.accounts.IncrementLoginAttempts(ctx, account.ID)
	if err != nil {
		log.Printf("ATTEMPT_INCREMENT_FAILED: account_id=%s error=%v", account.ID, err)
		attempts = account.LoginAttempts + 1
	}

	now := s.now()
	decision := s.lockout.Evaluate(attempts, now)
	if decision.ShouldLock {
		if err := s.accounts.SetLock(ctx, account.ID, decision.LockedUntil); err != nil {
			log.Printf("LOCK_WRITE_FAILED: account_id=%s error=%v", account.ID, err)
		}
		s.record(ctx, domain.NewAuditEvent(domain.AccountLockedEvent).
			WithAccount(account.ID, account.Email).
			WithClientContext(client).
			WithError(verr))
		alert := fmt.Sprintf("Your account was locked after %d failed login attempts. Try again after %s.",
			attempts, decision.LockedUntil.Format(time.RFC1123))
		if account.Phone != "" {
			if err := s.notifySvc.SendSMS(account.Phone, alert); err != nil {
				log.Printf("LOCK_ALERT_FAILED: account_id=%s channel=sms error=%v", account.ID, err)
			}
		}
		if err := s.notifySvc.SendEmail(account.Email, "Account locked", alert); err != nil {
			log.Printf("LOCK_ALERT_FAILED: account_id=%s channel=email error=%v", account.ID, err)
		}
		return &domain.AccountLockedError{Until: decision.LockedUntil, JustLocked: true}
	}

	s.record(ctx, domain.NewAuditEvent(domain.LoginFailureEvent).
		WithAccount(account.ID, account.Email).
		WithClientContext(client).
		WithError(verr))

	remaining := s.lockout.AttemptsRemaining(attempts)
	return &domain.CredentialsError{AttemptsRemaining: &remaining}
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	event := domain.NewAuditEvent(domain.LogoutEvent)
	event.SessionID = sessionID
	s.record(ctx, event)
	return nil
}

// KeepAlive implements domain.AuthService
func (s *AuthServiceImpl) KeepAlive(ctx context.Context, sessionID string) error {
	return s.sessions.Touch(ctx, sessionID)
}

// GetProfile implements domain.AuthService
func (s *AuthServiceImpl) GetProfile(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, accountID)
}

// record writes an audit event, logging and swallowing failures. A broken
// audit store never changes a login outcome.
func (s *AuthServiceImpl) record(ctx context.Context, event *domain.AuditEvent) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, event); err != nil {
		log.Printf("AUDIT_WRITE_FAILED: event=%s email=%s error=%v", event.EventType, event.Email, err)
	}
}
