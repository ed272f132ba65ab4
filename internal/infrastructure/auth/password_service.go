package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// PasswordServiceImpl implements domain.PasswordService with bcrypt. Account
// passwords are stored only as bcrypt hashes; the credential verifier calls
// Verify on every login attempt.
type PasswordServiceImpl struct {
	cost int
}

// NewPasswordService creates a password service at the default bcrypt cost.
func NewPasswordService() domain.PasswordService {
	return &PasswordServiceImpl{
		cost: bcrypt.DefaultCost,
	}
}

// Hash implements domain.PasswordService
func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify implements domain.PasswordService. It reports only match or no
// match; callers never learn why a comparison failed.
func (p *PasswordServiceImpl) Verify(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
