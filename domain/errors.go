package domain

import (
	"errors"
	"fmt"
	"time"
)

// Authentication errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountExists      = errors.New("account already exists")
	ErrAccountInactive    = errors.New("account is not active")
	ErrAccountSuspended   = errors.New("account is suspended")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")
)

// Confirmation-code errors
var (
	ErrConfirmationExpired     = errors.New("confirmation code has expired")
	ErrConfirmationInvalid     = errors.New("invalid confirmation code")
	ErrConfirmationMaxAttempts = errors.New("maximum confirmation attempts exceeded")
	ErrConfirmationNotFound    = errors.New("confirmation code not found")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

// Tenant/inventory errors
var (
	ErrStoreNotFound     = errors.New("store not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrSaleNotFound      = errors.New("sale not found")
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrDuplicateSKU      = errors.New("sku already exists in store")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptySale         = errors.New("sale has no items")
)

// Authorization errors
var (
	ErrUnauthorized  = errors.New("unauthorized access")
	ErrWrongStore    = errors.New("resource belongs to another store")
	ErrForbiddenRole = errors.New("insufficient role permissions")

	ErrPolicyExists   = errors.New("policy rule already exists")
	ErrPolicyNotFound = errors.New("policy rule not found")
)

// AccountLockedError is returned when a login is rejected because of the
// lockout policy. JustLocked distinguishes the attempt that triggered the
// lock (reported with attemptsRemaining=0) from attempts against an already
// locked account (reported with the remaining time).
type AccountLockedError struct {
	Until      time.Time
	JustLocked bool
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account locked until %s", e.Until.Format(time.RFC3339))
}

// CredentialsError is an invalid-credentials rejection that may carry the
// number of attempts remaining before lockout. AttemptsRemaining is nil when
// the account is unknown, so the response cannot be used to probe existence.
type CredentialsError struct {
	AttemptsRemaining *int
}

func (e *CredentialsError) Error() string { return ErrInvalidCredentials.Error() }

// Unwrap lets callers match with errors.Is(err, ErrInvalidCredentials).
func (e *CredentialsError) Unwrap() error { return ErrInvalidCredentials }
