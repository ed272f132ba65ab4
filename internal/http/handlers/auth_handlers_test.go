package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
	"github.com/Ola-Segun/inventorysupabase-sub002/internal/mocks"
)

func newLoginRouter(authSvc domain.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandlers(authSvc, mocks.NewMockConfirmationService(), &SessionCookieWriter{BackendURL: "https://myproject.supabase.co"})
	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	r.HEAD("/api/auth/login", h.LoginStatus)
	return r
}

func postLogin(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return body
}

func TestAuthHandlers_Login_Success(t *testing.T) {
	account := &domain.Account{
		ID:     uuid.New(),
		Email:  "cashier@example.com",
		Name:   "Cashier",
		Role:   "cashier",
		Status: domain.StatusActive,
	}
	session := &domain.Session{
		ID:           "sess-1",
		AccountID:    account.ID,
		AccessToken:  "acc",
		RefreshToken: "ref",
		ExpiresAt:    time.Now().Add(time.Hour),
	}

	authSvc := mocks.NewMockAuthService()
	authSvc.LoginFunc = func(ctx context.Context, email, password string, client *domain.ClientContext) (*domain.AuthResult, error) {
		return &domain.AuthResult{Account: account, Session: session, ExpiresIn: 3600}, nil
	}

	rec := postLogin(t, newLoginRouter(authSvc), `{"email":"cashier@example.com","password":"pw"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "no-store, max-age=0" {
		t.Errorf("Cache-Control = %q, want no-store, max-age=0", cc)
	}

	body := decodeBody(t, rec)
	if body["user"] == nil || body["session"] == nil {
		t.Errorf("body missing user/session: %v", body)
	}
	if _, hasStore := body["store"]; !hasStore {
		t.Error("body must carry a store key even when null")
	}

	names := map[string]bool{}
	for _, ck := range rec.Result().Cookies() {
		names[ck.Name] = true
	}
	for _, want := range []string{"access_token", "refresh_token", "auth_session", "authenticated", "sb-myproject-auth-token"} {
		if !names[want] {
			t.Errorf("cookie %q missing from login response", want)
		}
	}
}

func TestAuthHandlers_Login_MissingFields(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	called := false
	authSvc.LoginFunc = func(ctx context.Context, email, password string, client *domain.ClientContext) (*domain.AuthResult, error) {
		called = true
		return nil, nil
	}
	r := newLoginRouter(authSvc)

	for _, body := range []string{`{}`, `{"email":"a@b.com"}`, `{"password":"pw"}`, `not-json`} {
		rec := postLogin(t, r, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
		}
		got := decodeBody(t, rec)
		if got["error"] != "Email and password are required" {
			t.Errorf("body %q: error = %v", body, got["error"])
		}
	}
	if called {
		t.Error("rejected requests must not reach the auth service")
	}
}

func TestAuthHandlers_Login_InvalidCredentials(t *testing.T) {
	remaining := 3
	authSvc := mocks.NewMockAuthService()
	authSvc.LoginFunc = func(ctx context.Context, email, password string, client *domain.ClientContext) (*domain.AuthResult, error) {
		return nil, &domain.CredentialsError{AttemptsRemaining: &remaining}
	}

	rec := postLogin(t, newLoginRouter(authSvc), `{"email":"a@b.com","password":"bad"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "Invalid email or password" {
		t.Errorf("error = %v", body["error"])
	}
	if body["attemptsRemaining"] != float64(3) {
		t.Errorf("attemptsRemaining = %v, want 3", body["attemptsRemaining"])
	}
}

func TestAuthHandlers_Login_UnknownAccountNullRemaining(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.LoginFunc = func(ctx context.Context, email, password string, client *domain.ClientContext) (*domain.AuthResult, error) {
		return nil, &domain.CredentialsError{}
	}

	rec := postLogin(t, newLoginRouter(authSvc), `{"email":"ghost@b.com","password":"pw"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	body := decodeBody(t, rec)
	val, exists := body["attemptsRemaining"]
	if !exists {
		t.Fatal("attemptsRemaining key must be present")
	}
	if val != nil {
		t.Errorf("attemptsRemaining = %v, want null", val)
	}
}

func TestAuthHandlers_Login_JustLocked(t *testing.T) {
	until := time.Now().Add(15 * time.Minute).UTC().Truncate(time.Second)
	authSvc := mocks.NewMockAuthService()
	authSvc.LoginFunc = func(ctx context.Context, email, password string, client *domain.ClientContext) (*domain.AuthResult, error) {
		return nil, &domain.AccountLockedError{Until: until, JustLocked: true}
	}

	rec := postLogin(t, newLoginRouter(authSvc), `{"email":"a@b.com","password":"bad"}`)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["attemptsRemaining"] != float64(0) {
		t.Errorf("attemptsRemaining = %v, want 0", body["attemptsRemaining"])
	}
	if body["lockoutUntil"] != until.Format(time.RFC3339) {
		t.Errorf("lockoutUntil = %v, want %s", body["lockoutUntil"], until.Format(time.RFC3339))
	}
	if _, has := body["timeRemaining"]; has {
		t.Error("the triggering attempt reports attemptsRemaining, not timeRemaining")
	}
}

func TestAuthHandlers_Login_AlreadyLocked(t *testing.T) {
	until := time.Now().Add(10 * time.Minute)
	authSvc := mocks.NewMockAuthService()
	authSvc.LoginFunc = func(ctx context.Context, email, password string, client *domain.ClientContext) (*domain.AuthResult, error) {
		return nil, &domain.AccountLockedError{Until: until}
	}

	rec := postLogin(t, newLoginRouter(authSvc), `{"email":"a@b.com","password":"pw"}`)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	body := decodeBody(t, rec)
	if _, has := body["timeRemaining"]; !has {
		t.Error("an already locked account reports timeRemaining")
	}
	if _, has := body["attemptsRemaining"]; has {
		t.Error("an already locked account does not report attemptsRemaining")
	}
}

func TestAuthHandlers_Login_EmailNotConfirmed(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.LoginFunc = func(ctx context.Context, email, password string, client *domain.ClientContext) (*domain.AuthResult, error) {
		return nil, domain.ErrEmailNotConfirmed
	}

	rec := postLogin(t, newLoginRouter(authSvc), `{"email":"a@b.com","password":"pw"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["code"] != "email_not_confirmed" {
		t.Errorf("code = %v, want email_not_confirmed", body["code"])
	}
}

func TestAuthHandlers_Login_SuspendedAndInactive(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "suspended", err: domain.ErrAccountSuspended},
		{name: "inactive", err: domain.ErrAccountInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			authSvc.LoginFunc = func(ctx context.Context, email, password string, client *domain.ClientContext) (*domain.AuthResult, error) {
				return nil, tt.err
			}

			rec := postLogin(t, newLoginRouter(authSvc), `{"email":"a@b.com","password":"pw"}`)
			if rec.Code != http.StatusForbidden {
				t.Errorf("status = %d, want 403", rec.Code)
			}
		})
	}
}

func TestAuthHandlers_Login_UnexpectedErrorIsOpaque(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.LoginFunc = func(ctx context.Context, email, password string, client *domain.ClientContext) (*domain.AuthResult, error) {
		return nil, context.DeadlineExceeded
	}

	rec := postLogin(t, newLoginRouter(authSvc), `{"email":"a@b.com","password":"pw"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "Internal server error" {
		t.Errorf("error = %v, internals must not leak", body["error"])
	}
}

func TestAuthHandlers_LoginStatus(t *testing.T) {
	r := newLoginRouter(mocks.NewMockAuthService())
	req := httptest.NewRequest(http.MethodHead, "/api/auth/login", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestAuthHandlers_Logout_ClearsCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authSvc := mocks.NewMockAuthService()
	h := NewAuthHandlers(authSvc, mocks.NewMockConfirmationService(), &SessionCookieWriter{BackendURL: "https://myproject.supabase.co"})

	r := gin.New()
	r.POST("/api/auth/logout", func(c *gin.Context) {
		c.Set("session_id", "sess-1")
		h.Logout(c)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	cleared := map[string]bool{}
	for _, ck := range rec.Result().Cookies() {
		if ck.MaxAge < 0 {
			cleared[ck.Name] = true
		}
	}
	for _, want := range []string{"access_token", "refresh_token", "auth_session", "authenticated"} {
		if !cleared[want] {
			t.Errorf("cookie %q was not expired on logout", want)
		}
	}
}

func TestAuthHandlers_Register_DefaultsRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authSvc := mocks.NewMockAuthService()

	gotRole := ""
	gotPhone := ""
	authSvc.RegisterFunc = func(ctx context.Context, email, name, phone, password, role string, storeID *uuid.UUID) (*domain.Account, error) {
		gotRole = role
		gotPhone = phone
		return &domain.Account{ID: uuid.New(), Email: email, Name: name, Phone: phone, Role: role}, nil
	}

	h := NewAuthHandlers(authSvc, mocks.NewMockConfirmationService(), &SessionCookieWriter{})
	r := gin.New()
	r.POST("/api/auth/register", h.Register)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		bytes.NewBufferString(`{"email":"new@example.com","name":"New","phone":"+15551230003","password":"longenough"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if gotRole != "cashier" {
		t.Errorf("role = %q, want cashier by default", gotRole)
	}
	if gotPhone != "+15551230003" {
		t.Errorf("phone = %q, want +15551230003", gotPhone)
	}
}
