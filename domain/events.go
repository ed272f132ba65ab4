package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Authentication events
	LoginEvent          AuditEventType = "LOGIN"
	LoginFailureEvent   AuditEventType = "LOGIN_FAILED"
	AccountLockedEvent  AuditEventType = "ACCOUNT_LOCKED"
	LockExpiredEvent    AuditEventType = "ACCOUNT_LOCK_EXPIRED"
	RegistrationEvent   AuditEventType = "ACCOUNT_REGISTERED"
	LogoutEvent         AuditEventType = "LOGOUT"
	EmailConfirmedEvent AuditEventType = "EMAIL_CONFIRMED"

	// Authorization events
	AccessGrantedEvent AuditEventType = "ACCESS_GRANTED"
	AccessDeniedEvent  AuditEventType = "ACCESS_DENIED"

	// Sales events
	SaleRecordedEvent AuditEventType = "SALE_RECORDED"
)

// AuditEvent represents a business event that occurred in the system
type AuditEvent struct {
	EventType AuditEventType `json:"event_type"`
	AccountID *uuid.UUID     `json:"account_id,omitempty"`
	Email     string         `json:"email,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	IPAddress string         `json:"ip_address,omitempty"`
	UserAgent string         `json:"user_agent,omitempty"`
	SessionID string         `json:"session_id,omitempty"`
	ErrorMsg  string         `json:"error_msg,omitempty"`
	Success   bool           `json:"success"`
}

// ClientContext represents client information extracted from an HTTP request
type ClientContext struct {
	IPAddress string
	UserAgent string
	SessionID string
}

// NewAuditEvent creates a new audit event with common fields populated
func NewAuditEvent(eventType AuditEventType) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		Timestamp: time.Now().UTC(),
		Success:   true,
	}
}

// WithError sets error information on the audit event
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// WithAccount sets the account fields
func (e *AuditEvent) WithAccount(id uuid.UUID, email string) *AuditEvent {
	e.AccountID = &id
	e.Email = email
	return e
}

// WithEmail sets the email field
func (e *AuditEvent) WithEmail(email string) *AuditEvent {
	e.Email = email
	return e
}

// WithClientContext sets client context information
func (e *AuditEvent) WithClientContext(ctx *ClientContext) *AuditEvent {
	if ctx != nil {
		e.IPAddress = ctx.IPAddress
		e.UserAgent = ctx.UserAgent
		e.SessionID = ctx.SessionID
	}
	return e
}
