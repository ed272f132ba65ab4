package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	AccessTTL  string `yaml:"access_ttl"`
	RefreshTTL string `yaml:"refresh_ttl"`
}

type LockoutConfig struct {
	MaxAttempts int    `yaml:"max_attempts"`
	Duration    string `yaml:"duration"`
}

type CookieConfig struct {
	BackendURL string `yaml:"backend_url"`
	Secure     bool   `yaml:"secure"`
}

type ConfirmationConfig struct {
	TTL          string `yaml:"ttl"`
	Length       int    `yaml:"length"`
	MaxAttempts  int    `yaml:"max_attempts"`
	ResendWindow string `yaml:"resend_window"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

type ConfigFile struct {
	App          AppConfig          `yaml:"app"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	JWT          JWTConfig          `yaml:"jwt"`
	Lockout      LockoutConfig      `yaml:"lockout"`
	Cookies      CookieConfig       `yaml:"cookies"`
	Confirmation ConfirmationConfig `yaml:"confirmation"`
	Twilio       TwilioConfig       `yaml:"twilio"`
	Casbin       CasbinConfig       `yaml:"casbin"`
	CORS         CORSConfig         `yaml:"cors"`
}

type Config struct {
	Port                string
	GinMode             string
	DSN                 string
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	JWTSecret           string
	JWTIssuer           string
	AccessTTL           time.Duration
	RefreshTTL          time.Duration
	LockoutMaxAttempts  int
	LockoutDuration     time.Duration
	CookieBackendURL    string
	CookieSecure        bool
	ConfirmTTL          time.Duration
	ConfirmLength       int
	ConfirmMaxAttempts  int
	ConfirmResendWindow time.Duration
	TwilioSID           string
	TwilioToken         string
	TwilioFrom          string
	CasbinModelPath     string
	CORSAllowOrigins    []string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and applies environment overrides for secrets.
func Load() (*Config, error) {
	return LoadFrom(env("CONFIG_PATH", "config/config.yml"))
}

func LoadFrom(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL, err := time.ParseDuration(configFile.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	refTTL, err := time.ParseDuration(configFile.JWT.RefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT refresh TTL: %w", err)
	}

	lockDur, err := time.ParseDuration(configFile.Lockout.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid lockout duration: %w", err)
	}
	if configFile.Lockout.MaxAttempts <= 0 {
		return nil, fmt.Errorf("lockout max_attempts must be positive, got %d", configFile.Lockout.MaxAttempts)
	}
	if lockDur <= 0 {
		return nil, fmt.Errorf("lockout duration must be positive, got %s", lockDur)
	}

	confTTL, err := time.ParseDuration(configFile.Confirmation.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid confirmation TTL: %w", err)
	}

	resWnd, err := time.ParseDuration(configFile.Confirmation.ResendWindow)
	if err != nil {
		return nil, fmt.Errorf("invalid confirmation resend window: %w", err)
	}

	return &Config{
		Port:                fmt.Sprintf("%d", configFile.App.Port),
		GinMode:             configFile.App.GinMode,
		DSN:                 env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:           env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:       env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:             configFile.Redis.DB,
		JWTSecret:           env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:           configFile.JWT.Issuer,
		AccessTTL:           accTTL,
		RefreshTTL:          refTTL,
		LockoutMaxAttempts:  configFile.Lockout.MaxAttempts,
		LockoutDuration:     lockDur,
		CookieBackendURL:    env("BACKEND_URL", configFile.Cookies.BackendURL),
		CookieSecure:        configFile.Cookies.Secure,
		ConfirmTTL:          confTTL,
		ConfirmLength:       configFile.Confirmation.Length,
		ConfirmMaxAttempts:  configFile.Confirmation.MaxAttempts,
		ConfirmResendWindow: resWnd,
		TwilioSID:           env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:         env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:          configFile.Twilio.FromNumber,
		CasbinModelPath:     configFile.Casbin.ModelPath,
		CORSAllowOrigins:    corsOrigins(configFile.CORS.AllowOrigins),
	}, nil
}

// corsOrigins applies the CORS_ALLOW_ORIGINS override (comma-separated).
func corsOrigins(fromFile []string) []string {
	raw := os.Getenv("CORS_ALLOW_ORIGINS")
	if raw == "" {
		return fromFile
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
