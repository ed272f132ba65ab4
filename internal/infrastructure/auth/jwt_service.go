package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// JWTServiceImpl implements domain.TokenService
type JWTServiceImpl struct {
	secretKey       []byte
	issuer          string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey string, issuer string, accessTTL, refreshTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey:       []byte(secretKey),
		issuer:          issuer,
		accessTokenTTL:  accessTTL,
		refreshTokenTTL: refreshTTL,
	}
}

// generateJTI creates a unique JWT ID
func (j *JWTServiceImpl) generateJTI() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

func (j *JWTServiceImpl) generate(accountID uuid.UUID, role, storeID, sessionID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"account_id": accountID.String(),
		"role":       role,
		"session_id": sessionID,
		"iss":        j.issuer,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
		"jti":        j.generateJTI(),
	}
	if storeID != "" {
		claims["store_id"] = storeID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// GenerateAccessToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateAccessToken(accountID uuid.UUID, role, storeID, sessionID string) (string, error) {
	return j.generate(accountID, role, storeID, sessionID, j.accessTokenTTL)
}

// GenerateRefreshToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateRefreshToken(accountID uuid.UUID, role, storeID, sessionID string) (string, error) {
	return j.generate(accountID, role, storeID, sessionID, j.refreshTokenTTL)
}

// ValidateAccessToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateAccessToken(tokenString string) (*domain.TokenClaims, error) {
	return j.validateToken(tokenString)
}

// ValidateRefreshToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateRefreshToken(tokenString string) (*domain.TokenClaims, error) {
	return j.validateToken(tokenString)
}

// validateToken validates a JWT token and returns claims
func (j *JWTServiceImpl) validateToken(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})

	if err != nil {
		// jwt/v5 validates exp during Parse; keep the expired case distinct
		// so the middleware can tell clients to refresh.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	accountIDStr, ok := claims["account_id"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	accountID, err := uuid.Parse(accountIDStr)
	if err != nil {
		return nil, domain.ErrTokenMalformed
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	tokenClaims := &domain.TokenClaims{
		AccountID: accountID,
		Role:      role,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}

	if storeID, ok := claims["store_id"].(string); ok {
		tokenClaims.StoreID = storeID
	}
	if sessionID, ok := claims["session_id"].(string); ok {
		tokenClaims.SessionID = sessionID
	}

	return tokenClaims, nil
}
