package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Ola-Segun/inventorysupabase-sub002/internal/http/handlers"
	"github.com/Ola-Segun/inventorysupabase-sub002/internal/http/middleware"
	"github.com/Ola-Segun/inventorysupabase-sub002/internal/mocks"
)

func newRouterForTest(allowOrigins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ah := handlers.NewAuthHandlers(mocks.NewMockAuthService(), mocks.NewMockConfirmationService(), &handlers.SessionCookieWriter{})
	sh := handlers.NewStoreHandlers(mocks.NewMockStoreRepository())
	prh := handlers.NewProductHandlers(mocks.NewMockInventoryService())
	slh := handlers.NewSaleHandlers(mocks.NewMockSalesService())
	rh := handlers.NewReportHandlers(nil)
	ph := &handlers.PolicyHandlers{}
	jwtmw := middleware.NewAuthMW(mocks.NewMockTokenService(), mocks.NewMockSessionRepository())
	cb := middleware.NewCasbinMW(nil)
	return BuildRouter(ah, sh, prh, slh, rh, ph, jwtmw, cb, allowOrigins)
}

func preflight(r *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestBuildRouter_CORSCredentialsForConfiguredOrigin(t *testing.T) {
	r := newRouterForTest([]string{"http://localhost:3000"})

	rec := preflight(r, "http://localhost:3000")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the configured origin", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Access-Control-Allow-Credentials = %q, want true (cookie auth needs it)", got)
	}
}

func TestBuildRouter_CORSRejectsUnknownOrigin(t *testing.T) {
	r := newRouterForTest([]string{"http://localhost:3000"})

	rec := preflight(r, "http://evil.example.com")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q, want empty for unknown origin", got)
	}
}

func TestBuildRouter_CORSWildcardWithoutConfiguredOrigins(t *testing.T) {
	r := newRouterForTest(nil)

	rec := preflight(r, "http://localhost:3000")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got == "true" {
		t.Error("credentials must not be allowed together with a wildcard origin")
	}
}

func TestBuildRouter_Health(t *testing.T) {
	r := newRouterForTest(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
