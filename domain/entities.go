package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AccountStatus is independent from the lockout state: a locked account can
// still be active, and a suspended account stays rejected even with correct
// credentials.
type AccountStatus string

const (
	StatusActive    AccountStatus = "active"
	StatusInactive  AccountStatus = "inactive"
	StatusSuspended AccountStatus = "suspended"
)

// Account represents a user account in an organization/store tenant.
type Account struct {
	ID             uuid.UUID
	Email          string
	Name           string
	Phone          string
	PasswordHash   string
	Role           string
	Status         AccountStatus
	EmailConfirmed bool
	LoginAttempts  int
	LockedUntil    *time.Time
	StoreID        *uuid.UUID
	OrganizationID *uuid.UUID
	IsStoreOwner   bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Organization is the top-level tenant; stores belong to exactly one.
type Organization struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store represents a single point of sale inside an organization.
type Store struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Address        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Product is a stock-keeping unit scoped to one store. Prices are in cents.
type Product struct {
	ID         uuid.UUID
	StoreID    uuid.UUID
	SKU        string
	Name       string
	Category   string
	PriceCents int64
	Stock      int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SaleItem is one line of a sale. UnitPriceCents is captured at sale time so
// later price changes do not rewrite history.
type SaleItem struct {
	ID             uuid.UUID
	SaleID         uuid.UUID
	ProductID      uuid.UUID
	Quantity       int
	UnitPriceCents int64
	TotalCents     int64
}

// Sale is a completed checkout with its line items.
type Sale struct {
	ID         uuid.UUID
	StoreID    uuid.UUID
	CashierID  uuid.UUID
	Items      []SaleItem
	TotalCents int64
	CreatedAt  time.Time
}

// Invoice is issued once per sale.
type Invoice struct {
	ID       uuid.UUID
	SaleID   uuid.UUID
	Number   string
	IssuedAt time.Time
}

// Session is the bearer-token pair issued by the credential verifier after a
// successful login, plus the provider pass-through fields that end up in the
// composite cookie.
type Session struct {
	ID                   string          `json:"id"`
	AccountID            uuid.UUID       `json:"account_id"`
	AccessToken          string          `json:"access_token"`
	RefreshToken         string          `json:"refresh_token"`
	ProviderToken        *string         `json:"provider_token,omitempty"`
	ProviderRefreshToken *string         `json:"provider_refresh_token,omitempty"`
	Factors              json.RawMessage `json:"factors,omitempty"`
	ExpiresAt            time.Time       `json:"expires_at"`
	CreatedAt            time.Time       `json:"created_at"`
}

// AuthResult represents a successful login outcome.
type AuthResult struct {
	Account   *Account
	Store     *Store
	Session   *Session
	ExpiresIn int64
}

// AuthRequest represents login credentials as submitted.
type AuthRequest struct {
	Email    string
	Password string
}

// DailySalesReport aggregates one store's sales for one day.
type DailySalesReport struct {
	StoreID    uuid.UUID `json:"store_id"`
	Day        string    `json:"day"`
	SaleCount  int64     `json:"sale_count"`
	TotalCents int64     `json:"total_cents"`
}
