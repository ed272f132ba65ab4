package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// AuditRepositoryImpl implements domain.AuditRepository using GORM. Rows are
// append-only; there is no update or delete path.
type AuditRepositoryImpl struct {
	db *gorm.DB
}

// DBAuditEntry represents the database model for an audit event
type DBAuditEntry struct {
	ID        uint       `gorm:"primaryKey"`
	EventType string     `gorm:"index;size:64"`
	AccountID *uuid.UUID `gorm:"type:uuid;index"`
	Email     string     `gorm:"index;size:255"`
	IPAddress string     `gorm:"size:64"`
	UserAgent string     `gorm:"size:512"`
	SessionID string     `gorm:"size:64"`
	ErrorMsg  string     `gorm:"size:512"`
	Success   bool
	CreatedAt time.Time `gorm:"index"`
}

func (DBAuditEntry) TableName() string { return "login_audit" }

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) domain.AuditRepository {
	return &AuditRepositoryImpl{db: db}
}

// Record implements domain.AuditRepository
func (r *AuditRepositoryImpl) Record(ctx context.Context, event *domain.AuditEvent) error {
	entry := &DBAuditEntry{
		EventType: string(event.EventType),
		AccountID: event.AccountID,
		Email:     event.Email,
		IPAddress: event.IPAddress,
		UserAgent: event.UserAgent,
		SessionID: event.SessionID,
		ErrorMsg:  event.ErrorMsg,
		Success:   event.Success,
		CreatedAt: event.Timestamp,
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListByEmail implements domain.AuditRepository
func (r *AuditRepositoryImpl) ListByEmail(ctx context.Context, email string, limit int) ([]domain.AuditEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []DBAuditEntry
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	events := make([]domain.AuditEvent, 0, len(entries))
	for _, entry := range entries {
		events = append(events, domain.AuditEvent{
			EventType: domain.AuditEventType(entry.EventType),
			AccountID: entry.AccountID,
			Email:     entry.Email,
			IPAddress: entry.IPAddress,
			UserAgent: entry.UserAgent,
			SessionID: entry.SessionID,
			ErrorMsg:  entry.ErrorMsg,
			Success:   entry.Success,
			Timestamp: entry.CreatedAt,
		})
	}
	return events, nil
}
