package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccountRepository defines account data access operations. Attempt and lock
// bookkeeping are single-statement updates at the storage layer so concurrent
// failed logins cannot lose counter increments.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	Update(ctx context.Context, account *Account) error
	// IncrementLoginAttempts atomically adds 1 to the counter and returns the
	// new value.
	IncrementLoginAttempts(ctx context.Context, id uuid.UUID) (int, error)
	// SetLock stores a lockout expiry; the counter is left as is.
	SetLock(ctx context.Context, id uuid.UUID, until time.Time) error
	// ResetLoginAttempts zeroes the counter and clears any lockout expiry.
	ResetLoginAttempts(ctx context.Context, id uuid.UUID) error
	ConfirmEmail(ctx context.Context, id uuid.UUID) error
}

// StoreRepository defines store and organization data access operations.
type StoreRepository interface {
	CreateOrganization(ctx context.Context, org *Organization) error
	FindOrganizationByID(ctx context.Context, id uuid.UUID) (*Organization, error)
	Create(ctx context.Context, store *Store) error
	FindByID(ctx context.Context, id uuid.UUID) (*Store, error)
	List(ctx context.Context) ([]Store, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]Store, error)
	Update(ctx context.Context, store *Store) error
}

// ProductRepository defines catalog data access operations.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindBySKU(ctx context.Context, storeID uuid.UUID, sku string) (*Product, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	// AdjustStock atomically applies delta, failing with ErrInsufficientStock
	// when the result would go negative.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error
}

// SaleRepository persists sales with their items and invoice in a single
// transaction.
type SaleRepository interface {
	Create(ctx context.Context, sale *Sale, invoice *Invoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)
	FindInvoiceByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	DailyTotals(ctx context.Context, storeID uuid.UUID, day time.Time) (*DailySalesReport, error)
}

// SessionRepository defines session data access operations.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	// Touch extends the session TTL; the keep-alive ping lands here.
	Touch(ctx context.Context, sessionID string) error
	Delete(ctx context.Context, sessionID string) error
}

// AuditRepository records login-flow audit events. Writes are best-effort:
// callers log failures and carry on.
type AuditRepository interface {
	Record(ctx context.Context, event *AuditEvent) error
	ListByEmail(ctx context.Context, email string, limit int) ([]AuditEvent, error)
}

// CredentialVerifier abstracts the managed auth backend: given credentials it
// either issues a session or reports why it will not. The lockout and status
// policy around it never inspects password material.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (*Session, error)
}

// AuthService defines the login orchestration and session lifecycle.
type AuthService interface {
	Register(ctx context.Context, email, name, phone, password, role string, storeID *uuid.UUID) (*Account, error)
	Login(ctx context.Context, email, password string, client *ClientContext) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	KeepAlive(ctx context.Context, sessionID string) error
	GetProfile(ctx context.Context, accountID uuid.UUID) (*Account, error)
}

// ConfirmationService issues and checks email-confirmation codes.
type ConfirmationService interface {
	Send(ctx context.Context, email string) error
	Confirm(ctx context.Context, email, code string) error
	CanResend(ctx context.Context, email string) (bool, int64, error)
}

// InventoryService defines catalog business logic.
type InventoryService interface {
	CreateProduct(ctx context.Context, product *Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	ListProducts(ctx context.Context, storeID uuid.UUID) ([]Product, error)
	UpdateProduct(ctx context.Context, product *Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ReceiveStock(ctx context.Context, id uuid.UUID, quantity int) error
}

// SaleLine is one requested line of a checkout.
type SaleLine struct {
	ProductID uuid.UUID
	Quantity  int
}

// SalesService defines checkout and invoicing business logic.
type SalesService interface {
	RecordSale(ctx context.Context, storeID, cashierID uuid.UUID, lines []SaleLine) (*Sale, *Invoice, error)
	GetSale(ctx context.Context, id uuid.UUID) (*Sale, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
}

// ReportService defines reporting queries.
type ReportService interface {
	DailySales(ctx context.Context, storeID uuid.UUID, day time.Time) (*DailySalesReport, error)
}

// PasswordService defines password operations.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations.
type TokenService interface {
	GenerateAccessToken(accountID uuid.UUID, role, storeID, sessionID string) (string, error)
	GenerateRefreshToken(accountID uuid.UUID, role, storeID, sessionID string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
}

// NotificationService defines notification operations.
type NotificationService interface {
	SendSMS(to, message string) error
	SendEmail(to, subject, body string) error
}

// PolicyService defines authorization policy operations.
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// TokenClaims represents JWT token claims.
type TokenClaims struct {
	AccountID uuid.UUID `json:"account_id"`
	Role      string    `json:"role"`
	StoreID   string    `json:"store_id,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	IssuedAt  int64     `json:"iat"`
	ExpiresAt int64     `json:"exp"`
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer.
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
