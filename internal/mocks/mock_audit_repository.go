package mocks

import (
	"context"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// MockAuditRepository implements domain.AuditRepository interface for testing
type MockAuditRepository struct {
	RecordFunc      func(ctx context.Context, event *domain.AuditEvent) error
	ListByEmailFunc func(ctx context.Context, email string, limit int) ([]domain.AuditEvent, error)

	// Recorded collects every event passed to Record when RecordFunc is nil.
	Recorded []domain.AuditEvent
}

// NewMockAuditRepository creates a new MockAuditRepository with default behaviors
func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

// Record stores an audit event
func (m *MockAuditRepository) Record(ctx context.Context, event *domain.AuditEvent) error {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, event)
	}
	// Default behavior: collect and succeed
	m.Recorded = append(m.Recorded, *event)
	return nil
}

// ListByEmail returns recent audit events for an email
func (m *MockAuditRepository) ListByEmail(ctx context.Context, email string, limit int) ([]domain.AuditEvent, error) {
	if m.ListByEmailFunc != nil {
		return m.ListByEmailFunc(ctx, email, limit)
	}
	// Default behavior: empty
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.AuditRepository = (*MockAuditRepository)(nil)
