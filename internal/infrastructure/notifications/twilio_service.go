package notifications

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// TwilioServiceImpl implements domain.NotificationService. SMS carries the
// lockout alerts; email is a stub delivery used for confirmation codes in
// environments without a mail provider.
type TwilioServiceImpl struct {
	client     *twilio.RestClient
	fromNumber string
}

// NewTwilioService creates a notification service backed by the Twilio REST API.
// An empty fromNumber puts the service in log-only mode.
func NewTwilioService(accountSID, authToken, fromNumber string) domain.NotificationService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioServiceImpl{
		client:     client,
		fromNumber: fromNumber,
	}
}

// SendSMS implements domain.NotificationService. Lockout alerts land here
// when the account has a phone number on file.
func (t *TwilioServiceImpl) SendSMS(to, message string) error {
	if t.fromNumber == "" {
		fmt.Printf("[MOCK SMS] To: %s, Message: %s\n", to, message)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.fromNumber)
	params.SetBody(message)

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}

// SendEmail implements domain.NotificationService
func (t *TwilioServiceImpl) SendEmail(to, subject, body string) error {
	// No mail provider wired; log so local runs still show the delivery.
	fmt.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s\n", to, subject, body)
	return nil
}
