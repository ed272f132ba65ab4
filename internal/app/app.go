package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ola-Segun/inventorysupabase-sub002/internal/config"
	httpx "github.com/Ola-Segun/inventorysupabase-sub002/internal/http"
	"github.com/Ola-Segun/inventorysupabase-sub002/internal/http/handlers"
	"github.com/Ola-Segun/inventorysupabase-sub002/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(c.AuthSvc, c.ConfirmSvc, c.Cookies)
	storeH := handlers.NewStoreHandlers(c.StoreRepo)
	productH := handlers.NewProductHandlers(c.InventorySvc)
	saleH := handlers.NewSaleHandlers(c.SalesSvc)
	reportH := handlers.NewReportHandlers(c.ReportSvc)
	polH := &handlers.PolicyHandlers{Svc: c.PolicySvc}

	jwtMW := middleware.NewAuthMW(c.TokenSvc, c.SessionRepo)
	casbinMW := middleware.NewCasbinMW(c.Casbin.E)

	r := httpx.BuildRouter(authH, storeH, productH, saleH, reportH, polH, jwtMW, casbinMW, cfg.CORSAllowOrigins)

	seedPolicies(c)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

// seedPolicies installs the default role grants the first time the service
// runs against an empty policy table.
func seedPolicies(c *Container) {
	policies, _ := c.Casbin.E.GetPolicy()
	if len(policies) != 0 {
		return
	}

	c.Casbin.E.AddPolicy("role_admin", "/admin/*", "(GET|POST|DELETE)")
	c.Casbin.E.AddPolicy("role_admin", "/api/*", "(GET|POST|PUT|DELETE)")

	c.Casbin.E.AddPolicy("role_store_owner", "/api/auth/*", "(GET|POST)")
	c.Casbin.E.AddPolicy("role_store_owner", "/api/stores/*", "GET")
	c.Casbin.E.AddPolicy("role_store_owner", "/api/products", "(GET|POST)")
	c.Casbin.E.AddPolicy("role_store_owner", "/api/products/*", "(GET|POST|PUT|DELETE)")
	c.Casbin.E.AddPolicy("role_store_owner", "/api/sales", "(GET|POST)")
	c.Casbin.E.AddPolicy("role_store_owner", "/api/sales/*", "GET")
	c.Casbin.E.AddPolicy("role_store_owner", "/api/invoices/*", "GET")
	c.Casbin.E.AddPolicy("role_store_owner", "/api/reports/*", "GET")

	c.Casbin.E.AddPolicy("role_cashier", "/api/auth/*", "(GET|POST)")
	c.Casbin.E.AddPolicy("role_cashier", "/api/products", "GET")
	c.Casbin.E.AddPolicy("role_cashier", "/api/products/*", "GET")
	c.Casbin.E.AddPolicy("role_cashier", "/api/sales", "POST")
	c.Casbin.E.AddPolicy("role_cashier", "/api/sales/*", "GET")
	c.Casbin.E.AddPolicy("role_cashier", "/api/invoices/*", "GET")

	_ = c.Casbin.E.SavePolicy()
	log.Println("casbin: seeded default policies")
}
