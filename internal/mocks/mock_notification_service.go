package mocks

import (
	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	SendSMSFunc   func(to, message string) error
	SendEmailFunc func(to, subject, body string) error

	// SentEmails and SentSMS collect deliveries when the Func fields are nil.
	SentEmails []string
	SentSMS    []string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendSMS sends an SMS message
func (m *MockNotificationService) SendSMS(to, message string) error {
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	// Default behavior: collect and succeed
	m.SentSMS = append(m.SentSMS, to)
	return nil
}

// SendEmail sends an email message
func (m *MockNotificationService) SendEmail(to, subject, body string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, body)
	}
	// Default behavior: collect and succeed
	m.SentEmails = append(m.SentEmails, to)
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
