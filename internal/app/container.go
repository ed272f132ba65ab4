package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
	"github.com/Ola-Segun/inventorysupabase-sub002/internal/config"
	"github.com/Ola-Segun/inventorysupabase-sub002/internal/http/handlers"
	"github.com/Ola-Segun/inventorysupabase-sub002/internal/infrastructure/auth"
	"github.com/Ola-Segun/inventorysupabase-sub002/internal/infrastructure/database"
	"github.com/Ola-Segun/inventorysupabase-sub002/internal/infrastructure/notifications"
	"github.com/Ola-Segun/inventorysupabase-sub002/internal/infrastructure/repositories"
	"github.com/Ola-Segun/inventorysupabase-sub002/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	AccountRepo domain.AccountRepository
	StoreRepo   domain.StoreRepository
	ProductRepo domain.ProductRepository
	SaleRepo    domain.SaleRepository
	SessionRepo domain.SessionRepository
	AuditRepo   domain.AuditRepository

	PasswordSvc  domain.PasswordService
	TokenSvc     domain.TokenService
	NotifySvc    domain.NotificationService
	ConfirmSvc   domain.ConfirmationService
	Verifier     domain.CredentialVerifier
	AuthSvc      domain.AuthService
	InventorySvc domain.InventoryService
	SalesSvc     domain.SalesService
	ReportSvc    domain.ReportService
	PolicySvc    domain.PolicyService

	Cookies *handlers.SessionCookieWriter
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRedis()
	container.initRepositories()
	if err := container.initServices(); err != nil {
		return nil, err
	}

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
}

func (c *Container) initRepositories() {
	c.AccountRepo = repositories.NewAccountRepository(c.DB)
	c.StoreRepo = repositories.NewStoreRepository(c.DB)
	c.ProductRepo = repositories.NewProductRepository(c.DB)
	c.SaleRepo = repositories.NewSaleRepository(c.DB)
	c.SessionRepo = repositories.NewSessionRepository(c.RedisClient, c.Config.RefreshTTL)
	c.AuditRepo = repositories.NewAuditRepository(c.DB)
}

func (c *Container) initServices() error {
	cas, err := auth.NewCasbinService(c.DB, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}
	c.Casbin = cas
	c.PolicySvc = services.NewPolicyService(cas.E)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTSecret,
		c.Config.JWTIssuer,
		c.Config.AccessTTL,
		c.Config.RefreshTTL,
	)
	c.NotifySvc = notifications.NewTwilioService(
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioFrom,
	)

	c.ConfirmSvc = services.NewConfirmationService(c.NotifySvc, c.AccountRepo, c.RedisClient, services.ConfirmationConfig{
		Length:       c.Config.ConfirmLength,
		TTL:          c.Config.ConfirmTTL,
		MaxAttempts:  c.Config.ConfirmMaxAttempts,
		ResendWindow: c.Config.ConfirmResendWindow,
	})

	c.Verifier = auth.NewLocalVerifier(c.AccountRepo, c.PasswordSvc, c.TokenSvc, c.Config.RefreshTTL)

	c.AuthSvc = services.NewAuthService(
		c.AccountRepo,
		c.StoreRepo,
		c.SessionRepo,
		c.AuditRepo,
		c.Verifier,
		c.PasswordSvc,
		c.ConfirmSvc,
		c.NotifySvc,
		services.LockoutPolicy{
			MaxAttempts:     c.Config.LockoutMaxAttempts,
			LockoutDuration: c.Config.LockoutDuration,
		},
		c.Config.AccessTTL,
	)

	c.InventorySvc = services.NewInventoryService(c.ProductRepo, c.StoreRepo)
	c.SalesSvc = services.NewSalesService(c.SaleRepo, c.ProductRepo, c.AuditRepo)
	c.ReportSvc = services.NewReportService(c.SaleRepo)

	c.Cookies = &handlers.SessionCookieWriter{
		BackendURL: c.Config.CookieBackendURL,
		Secure:     c.Config.CookieSecure,
	}

	return nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
