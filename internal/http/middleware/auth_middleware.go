package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// AuthMiddleware creates authentication middleware. Browser clients carry the
// access token in the HttpOnly access_token cookie; API clients may use an
// Authorization Bearer header instead. The header wins when both are present.
func AuthMiddleware(tokenSvc domain.TokenService, sessionRepo domain.SessionRepository) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				token = cookie
			}
		}
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := tokenSvc.ValidateAccessToken(token)
		if err != nil {
			switch err {
			case domain.ErrTokenExpired:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			case domain.ErrTokenInvalid, domain.ErrTokenMalformed:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token validation failed"})
			}
			c.Abort()
			return
		}

		// A token whose session is gone from Redis is dead even before its
		// exp claim runs out. Logout works by deleting the session.
		if claims.SessionID != "" {
			session, err := sessionRepo.FindByID(c.Request.Context(), claims.SessionID)
			if err != nil || session == nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Session invalid or expired"})
				c.Abort()
				return
			}

			if session.AccountID != claims.AccountID {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Session account mismatch"})
				c.Abort()
				return
			}
		}

		c.Set("account_id", claims.AccountID.String())
		c.Set("role", claims.Role)
		if claims.StoreID != "" {
			c.Set("store_id", claims.StoreID)
		}
		if claims.SessionID != "" {
			c.Set("session_id", claims.SessionID)
		}

		c.Next()
	})
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
