package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// AccountRepositoryImpl implements domain.AccountRepository using GORM
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount represents the database model for Account (with GORM tags)
type DBAccount struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email          string     `gorm:"uniqueIndex;size:255"`
	Name           string     `gorm:"size:255"`
	Phone          string     `gorm:"size:32"`
	PasswordHash   string     `gorm:"column:password"`
	Role           string     `gorm:"index;size:64"`
	Status         string     `gorm:"index;size:16;default:active"`
	EmailConfirmed bool       `gorm:"index"`
	LoginAttempts  int        `gorm:"not null;default:0"`
	LockedUntil    *time.Time
	StoreID        *uuid.UUID `gorm:"type:uuid;index"`
	OrganizationID *uuid.UUID `gorm:"type:uuid;index"`
	IsStoreOwner   bool
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "accounts"
}

// BeforeCreate assigns the ID when the caller did not.
func (a *DBAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

func lowerEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create implements domain.AccountRepository. Emails are stored lowercased
// so the unique index doubles as the case-insensitive lookup key.
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	dbAccount := r.domainToDB(account)
	dbAccount.Email = lowerEmail(dbAccount.Email)
	if err := r.db.WithContext(ctx).Create(dbAccount).Error; err != nil {
		return err
	}
	account.ID = dbAccount.ID
	return nil
}

// FindByEmail implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("email = ?", lowerEmail(email)).First(&dbAccount).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// FindByID implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbAccount).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// Update implements domain.AccountRepository
func (r *AccountRepositoryImpl) Update(ctx context.Context, account *domain.Account) error {
	dbAccount := r.domainToDB(account)
	dbAccount.Email = lowerEmail(dbAccount.Email)
	return r.db.WithContext(ctx).Save(dbAccount).Error
}

// IncrementLoginAttempts implements domain.AccountRepository. The increment
// and the read of the new value happen in one statement so two concurrent
// failed attempts cannot both observe the same count.
func (r *AccountRepositoryImpl) IncrementLoginAttempts(ctx context.Context, id uuid.UUID) (int, error) {
	var attempts int
	res := r.db.WithContext(ctx).Raw(
		"UPDATE accounts SET login_attempts = login_attempts + 1, updated_at = ? WHERE id = ? AND deleted_at IS NULL RETURNING login_attempts",
		time.Now(), id,
	).Scan(&attempts)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, domain.ErrAccountNotFound
	}
	return attempts, nil
}

// SetLock implements domain.AccountRepository
func (r *AccountRepositoryImpl) SetLock(ctx context.Context, id uuid.UUID, until time.Time) error {
	return r.db.WithContext(ctx).Model(&DBAccount{}).
		Where("id = ?", id).
		Update("locked_until", until).Error
}

// ResetLoginAttempts implements domain.AccountRepository
func (r *AccountRepositoryImpl) ResetLoginAttempts(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&DBAccount{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"login_attempts": 0,
			"locked_until":   nil,
		}).Error
}

// ConfirmEmail implements domain.AccountRepository
func (r *AccountRepositoryImpl) ConfirmEmail(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&DBAccount{}).
		Where("id = ?", id).
		Update("email_confirmed", true).Error
}

// domainToDB converts a domain account to its database model
func (r *AccountRepositoryImpl) domainToDB(account *domain.Account) *DBAccount {
	return &DBAccount{
		ID:             account.ID,
		Email:          account.Email,
		Name:           account.Name,
		Phone:          account.Phone,
		PasswordHash:   account.PasswordHash,
		Role:           account.Role,
		Status:         string(account.Status),
		EmailConfirmed: account.EmailConfirmed,
		LoginAttempts:  account.LoginAttempts,
		LockedUntil:    account.LockedUntil,
		StoreID:        account.StoreID,
		OrganizationID: account.OrganizationID,
		IsStoreOwner:   account.IsStoreOwner,
	}
}

// dbToDomain converts a database model to a domain account
func (r *AccountRepositoryImpl) dbToDomain(dbAccount *DBAccount) *domain.Account {
	return &domain.Account{
		ID:             dbAccount.ID,
		Email:          dbAccount.Email,
		Name:           dbAccount.Name,
		Phone:          dbAccount.Phone,
		PasswordHash:   dbAccount.PasswordHash,
		Role:           dbAccount.Role,
		Status:         domain.AccountStatus(dbAccount.Status),
		EmailConfirmed: dbAccount.EmailConfirmed,
		LoginAttempts:  dbAccount.LoginAttempts,
		LockedUntil:    dbAccount.LockedUntil,
		StoreID:        dbAccount.StoreID,
		OrganizationID: dbAccount.OrganizationID,
		IsStoreOwner:   dbAccount.IsStoreOwner,
		CreatedAt:      dbAccount.CreatedAt,
		UpdatedAt:      dbAccount.UpdatedAt,
	}
}
