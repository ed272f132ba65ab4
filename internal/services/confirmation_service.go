package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// ConfirmationServiceImpl implements domain.ConfirmationService using Redis
// persistence. Codes live under a TTL, verification attempts are counted, and
// resends are throttled.
type ConfirmationServiceImpl struct {
	notifySvc   domain.NotificationService
	accounts    domain.AccountRepository
	redisClient *redis.Client
	config      ConfirmationConfig
}

type ConfirmationConfig struct {
	Length       int
	TTL          time.Duration
	MaxAttempts  int
	ResendWindow time.Duration
}

// NewConfirmationService creates a new Redis-based confirmation service
func NewConfirmationService(notifySvc domain.NotificationService, accounts domain.AccountRepository, redisClient *redis.Client, config ConfirmationConfig) domain.ConfirmationService {
	return &ConfirmationServiceImpl{
		notifySvc:   notifySvc,
		accounts:    accounts,
		redisClient: redisClient,
		config:      config,
	}
}

// Send implements domain.ConfirmationService
func (s *ConfirmationServiceImpl) Send(ctx context.Context, email string) error {
	codeKey := fmt.Sprintf("confirm:%s", email)
	attemptsKey := fmt.Sprintf("confirm:att:%s", email)
	resendKey := fmt.Sprintf("confirm:res:%s", email)

	if canResend, waitTime, _ := s.CanResend(ctx, email); !canResend {
		return fmt.Errorf("please wait %d seconds before requesting a new code", waitTime)
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return fmt.Errorf("failed to generate confirmation code: %w", err)
	}

	if err := s.redisClient.Set(ctx, codeKey, code, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store confirmation code: %w", err)
	}
	if err := s.redisClient.Set(ctx, attemptsKey, 0, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to initialize attempts counter: %w", err)
	}
	if err := s.redisClient.Set(ctx, resendKey, 1, s.config.ResendWindow).Err(); err != nil {
		return fmt.Errorf("failed to set resend throttle: %w", err)
	}

	body := fmt.Sprintf("Your confirmation code is: %s. Valid for %d minutes.", code, int(s.config.TTL.Minutes()))
	if err := s.notifySvc.SendEmail(email, "Confirm your email", body); err != nil {
		s.redisClient.Del(ctx, codeKey, attemptsKey, resendKey)
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return nil
}

// Confirm implements domain.ConfirmationService. On success the account's
// email_confirmed flag is set; confirming twice is a no-op on the account.
func (s *ConfirmationServiceImpl) Confirm(ctx context.Context, email, code string) error {
	codeKey := fmt.Sprintf("confirm:%s", email)
	attemptsKey := fmt.Sprintf("confirm:att:%s", email)

	attempts, err := s.redisClient.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to increment attempts: %w", err)
	}

	if attempts > int64(s.config.MaxAttempts) {
		s.redisClient.Del(ctx, codeKey, attemptsKey)
		return domain.ErrConfirmationMaxAttempts
	}

	storedCode, err := s.redisClient.Get(ctx, codeKey).Result()
	if err == redis.Nil {
		return domain.ErrConfirmationNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get confirmation code: %w", err)
	}

	if storedCode != code {
		return domain.ErrConfirmationInvalid
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err := s.accounts.ConfirmEmail(ctx, account.ID); err != nil {
		return fmt.Errorf("failed to confirm email: %w", err)
	}

	s.redisClient.Del(ctx, codeKey, attemptsKey)
	log.Printf("EMAIL_CONFIRMED: account_id=%s email=%s", account.ID, email)

	return nil
}

// CanResend implements domain.ConfirmationService with Redis-based throttling
func (s *ConfirmationServiceImpl) CanResend(ctx context.Context, email string) (bool, int64, error) {
	resendKey := fmt.Sprintf("confirm:res:%s", email)

	ttl, err := s.redisClient.TTL(ctx, resendKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}

	if ttl <= 0 {
		return true, 0, nil
	}

	return false, int64(ttl.Seconds()), nil
}

// generateSecureCode generates a cryptographically secure numeric code
func (s *ConfirmationServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
