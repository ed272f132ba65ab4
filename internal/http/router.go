package httpx

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Ola-Segun/inventorysupabase-sub002/internal/http/handlers"
	"github.com/Ola-Segun/inventorysupabase-sub002/internal/http/middleware"
)

// BuildRouter assembles the gin engine. The login endpoint answers both POST
// and HEAD so clients can probe availability without sending credentials.
func BuildRouter(
	ah *handlers.AuthHandlers,
	sh *handlers.StoreHandlers,
	prh *handlers.ProductHandlers,
	slh *handlers.SaleHandlers,
	rh *handlers.ReportHandlers,
	ph *handlers.PolicyHandlers,
	jwtmw *middleware.AuthMW,
	cb *middleware.CasbinMW,
	allowOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(allowOrigins) > 0 {
		corsCfg.AllowOrigins = allowOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowCredentials = !corsCfg.AllowAllOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/api/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.HEAD("/login", ah.LoginStatus)
	auth.POST("/confirm", ah.Confirm)
	auth.POST("/confirm/resend", ah.ResendConfirmation)

	v := r.Group("/api").Use(jwtmw.WithJWT(), cb.Enforce())
	v.GET("/auth/me", ah.Me)
	v.POST("/auth/logout", ah.Logout)
	v.POST("/auth/keepalive", ah.KeepAlive)

	v.POST("/organizations", sh.CreateOrganization)
	v.GET("/organizations/:id/stores", sh.ListByOrganization)
	v.GET("/stores", sh.List)
	v.POST("/stores", sh.Create)
	v.GET("/stores/:id", sh.Get)

	v.GET("/products", prh.List)
	v.POST("/products", prh.Create)
	v.GET("/products/:id", prh.Get)
	v.PUT("/products/:id", prh.Update)
	v.DELETE("/products/:id", prh.Delete)
	v.POST("/products/:id/stock", prh.ReceiveStock)

	v.POST("/sales", slh.Create)
	v.GET("/sales/:id", slh.Get)
	v.GET("/invoices/:id", slh.GetInvoice)

	v.GET("/reports/sales/daily", rh.DailySales)

	adm := r.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/policies", ph.List)
	adm.POST("/policies", ph.Add)
	adm.DELETE("/policies", ph.Remove)

	return r
}
