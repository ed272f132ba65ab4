package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// AuthMW bundles the token service and the redis session repository so the
// router can attach account authentication as a group middleware.
type AuthMW struct {
	tokenSvc    domain.TokenService
	sessionRepo domain.SessionRepository
}

// NewAuthMW creates the middleware bundle used on every authenticated route
// group (/api and /admin).
func NewAuthMW(tokenSvc domain.TokenService, sessionRepo domain.SessionRepository) *AuthMW {
	return &AuthMW{
		tokenSvc:    tokenSvc,
		sessionRepo: sessionRepo,
	}
}

// WithJWT returns the account authentication middleware. Tokens arrive as a
// bearer header or the access_token cookie; sessions must still be live.
func (mw *AuthMW) WithJWT() gin.HandlerFunc {
	return AuthMiddleware(mw.tokenSvc, mw.sessionRepo)
}
