package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc    domain.AuthService
	confirmSvc domain.ConfirmationService
	cookies    *SessionCookieWriter
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, confirmSvc domain.ConfirmationService, cookies *SessionCookieWriter) *AuthHandlers {
	return &AuthHandlers{
		authSvc:    authSvc,
		confirmSvc: confirmSvc,
		cookies:    cookies,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone,omitempty" binding:"omitempty,e164"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role,omitempty"`
	StoreID  string `json:"store_id,omitempty"`
}

// ConfirmRequest represents an email confirmation request
type ConfirmRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// ResendConfirmRequest represents a confirmation resend request
type ResendConfirmRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Login handles POST /api/auth/login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	client := &domain.ClientContext{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password, client)
	if err != nil {
		h.writeLoginRejection(c, err)
		return
	}

	if err := h.cookies.Write(c, result.Session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.Header("Cache-Control", "no-store, max-age=0")
	c.JSON(http.StatusOK, gin.H{
		"user":    accountPayload(result.Account),
		"store":   storePayload(result.Store),
		"session": sessionPayload(result.Session, result.ExpiresIn),
	})
}

// writeLoginRejection maps orchestrator errors to the documented response
// shapes. Anything unrecognized is an opaque 500.
func (h *AuthHandlers) writeLoginRejection(c *gin.Context, err error) {
	var locked *domain.AccountLockedError
	if errors.As(err, &locked) {
		body := gin.H{
			"error":       "Account temporarily locked due to too many failed login attempts",
			"lockoutUntil": locked.Until.UTC().Format(time.RFC3339),
		}
		if locked.JustLocked {
			body["attemptsRemaining"] = 0
		} else {
			body["timeRemaining"] = formatTimeRemaining(time.Until(locked.Until))
		}
		c.JSON(http.StatusTooManyRequests, body)
		return
	}

	var creds *domain.CredentialsError
	if errors.As(err, &creds) {
		body := gin.H{"error": "Invalid email or password"}
		if creds.AttemptsRemaining != nil {
			body["attemptsRemaining"] = *creds.AttemptsRemaining
		} else {
			body["attemptsRemaining"] = nil
		}
		c.JSON(http.StatusUnauthorized, body)
		return
	}

	switch {
	case errors.Is(err, domain.ErrEmailNotConfirmed):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Email not confirmed",
			"message": "Please confirm your email address before logging in.",
			"code":    "email_not_confirmed",
		})
	case errors.Is(err, domain.ErrAccountSuspended):
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is suspended. Please contact support."})
	case errors.Is(err, domain.ErrAccountInactive):
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is not active. Please contact your administrator."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// LoginStatus handles HEAD /api/auth/login: a liveness probe with no side
// effects.
func (h *AuthHandlers) LoginStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Register handles POST /api/auth/register
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := req.Role
	if role == "" {
		role = "cashier"
	}

	var storeID *uuid.UUID
	if req.StoreID != "" {
		id, err := uuid.Parse(req.StoreID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid store ID"})
			return
		}
		storeID = &id
	}

	account, err := h.authSvc.Register(c.Request.Context(), req.Email, req.Name, req.Phone, req.Password, role, storeID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Account already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message":    "Account registered. Please confirm your email address.",
			"account_id": account.ID,
		},
	})
}

// Confirm handles POST /api/auth/confirm
func (h *AuthHandlers) Confirm(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.confirmSvc.Confirm(c.Request.Context(), req.Email, req.Code); err != nil {
		switch {
		case errors.Is(err, domain.ErrConfirmationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Confirmation code not found"})
		case errors.Is(err, domain.ErrConfirmationInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid confirmation code"})
		case errors.Is(err, domain.ErrConfirmationMaxAttempts):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Maximum attempts exceeded"})
		case errors.Is(err, domain.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Confirmation failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Email confirmed"}})
}

// ResendConfirmation handles POST /api/auth/confirm/resend
func (h *AuthHandlers) ResendConfirmation(c *gin.Context) {
	var req ResendConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if canResend, wait, err := h.confirmSvc.CanResend(c.Request.Context(), req.Email); err == nil && !canResend {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Please wait before requesting a new code", "retryAfter": wait})
		return
	}

	if err := h.confirmSvc.Send(c.Request.Context(), req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send confirmation code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Confirmation code sent"}})
}

// Me handles GET /api/auth/me (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account ID not found in context"})
		return
	}

	account, err := h.authSvc.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": accountPayload(account)})
}

// Logout handles POST /api/auth/logout (requires authentication)
func (h *AuthHandlers) Logout(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID not found"})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), sessionID.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}

	h.cookies.Clear(c)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Logged out successfully"}})
}

// KeepAlive handles POST /api/auth/keepalive (requires authentication). The
// browser client pings this periodically to keep the session fresh.
func (h *AuthHandlers) KeepAlive(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID not found"})
		return
	}

	if err := h.authSvc.KeepAlive(c.Request.Context(), sessionID.(string)); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) || errors.Is(err, domain.ErrSessionExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Keep-alive failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "ok"}})
}

func accountPayload(account *domain.Account) gin.H {
	var storeID interface{}
	if account.StoreID != nil {
		storeID = account.StoreID.String()
	}
	return gin.H{
		"id":             account.ID,
		"email":          account.Email,
		"name":           account.Name,
		"phone":          account.Phone,
		"role":           account.Role,
		"store_id":       storeID,
		"is_store_owner": account.IsStoreOwner,
		"status":         account.Status,
	}
}

func storePayload(store *domain.Store) interface{} {
	if store == nil {
		return nil
	}
	return gin.H{
		"id":              store.ID,
		"organization_id": store.OrganizationID,
		"name":            store.Name,
		"address":         store.Address,
	}
}

func sessionPayload(session *domain.Session, expiresIn int64) gin.H {
	return gin.H{
		"access_token":  session.AccessToken,
		"refresh_token": session.RefreshToken,
		"token_type":    "Bearer",
		"expires_in":    expiresIn,
		"expires_at":    session.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

func accountIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("account_id")
	if !exists {
		return uuid.Nil, false
	}
	idStr, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// formatTimeRemaining renders a countdown as "Xm Ys", clamped at zero.
func formatTimeRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d / time.Minute)
	seconds := int((d % time.Minute) / time.Second)
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}
