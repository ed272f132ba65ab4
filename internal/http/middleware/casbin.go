package middleware

import (
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

// CasbinMW wraps the casbin enforcer for middleware
type CasbinMW struct {
	enforcer *casbin.Enforcer
}

// NewCasbinMW creates new casbin middleware wrapper
func NewCasbinMW(enforcer *casbin.Enforcer) *CasbinMW {
	return &CasbinMW{enforcer: enforcer}
}

// Enforce returns the casbin authorization middleware
func (mw *CasbinMW) Enforce() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Role not found in token"})
			c.Abort()
			return
		}

		// Policies are stored with a "role_" prefix so plain role names can
		// never collide with account subjects.
		casbinRole := "role_" + role.(string)
		allowed, err := mw.enforcer.Enforce(casbinRole, c.Request.URL.Path, c.Request.Method)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access Denied"})
			c.Abort()
			return
		}

		c.Next()
	})
}
