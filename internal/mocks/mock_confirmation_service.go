package mocks

import (
	"context"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// MockConfirmationService implements domain.ConfirmationService interface for testing
type MockConfirmationService struct {
	SendFunc      func(ctx context.Context, email string) error
	ConfirmFunc   func(ctx context.Context, email, code string) error
	CanResendFunc func(ctx context.Context, email string) (bool, int64, error)
}

// NewMockConfirmationService creates a new MockConfirmationService with default behaviors
func NewMockConfirmationService() *MockConfirmationService {
	return &MockConfirmationService{}
}

// Send issues a confirmation code
func (m *MockConfirmationService) Send(ctx context.Context, email string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// Confirm checks a confirmation code
func (m *MockConfirmationService) Confirm(ctx context.Context, email, code string) error {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, email, code)
	}
	// Default behavior: success
	return nil
}

// CanResend reports whether a resend is allowed yet
func (m *MockConfirmationService) CanResend(ctx context.Context, email string) (bool, int64, error) {
	if m.CanResendFunc != nil {
		return m.CanResendFunc(ctx, email)
	}
	// Default behavior: allowed
	return true, 0, nil
}

// Compile-time interface compliance verification
var _ domain.ConfirmationService = (*MockConfirmationService)(nil)
