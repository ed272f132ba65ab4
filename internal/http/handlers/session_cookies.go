package handlers

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// Cookie names and lifetimes. The composite cookie and its project-scoped
// duplicate are readable by client code; the bearer cookies are not.
const (
	accessCookieName    = "access_token"
	refreshCookieName   = "refresh_token"
	compositeCookieName = "auth_session"
	authFlagCookieName  = "authenticated"

	accessCookieMaxAge  = 7 * 24 * 60 * 60
	refreshCookieMaxAge = 30 * 24 * 60 * 60
)

// CompositeSession is the client-readable session payload. On the wire it is
// a fixed positional 5-element JSON array:
//
//	[access_token, refresh_token, provider_token, provider_refresh_token, factors]
//
// index 0: access token (string)
// index 1: refresh token (string)
// index 2: provider token (string or null)
// index 3: provider refresh token (string or null)
// index 4: auth factors (any or null)
//
// The ordering is a compatibility contract with the auth client: readers
// index positionally, never by key. Renumbering is a breaking format change.
type CompositeSession struct {
	AccessToken          string
	RefreshToken         string
	ProviderToken        *string
	ProviderRefreshToken *string
	Factors              json.RawMessage
}

// MarshalJSON implements json.Marshaler using the positional array format.
func (s CompositeSession) MarshalJSON() ([]byte, error) {
	return json.Marshal([5]interface{}{
		s.AccessToken,
		s.RefreshToken,
		s.ProviderToken,
		s.ProviderRefreshToken,
		s.Factors,
	})
}

// UnmarshalJSON implements json.Unmarshaler for the positional array format.
func (s *CompositeSession) UnmarshalJSON(data []byte) error {
	var arr []json.RawMessage
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	if len(arr) != 5 {
		return fmt.Errorf("composite session: expected 5 elements, got %d", len(arr))
	}
	if err := json.Unmarshal(arr[0], &s.AccessToken); err != nil {
		return fmt.Errorf("composite session: access token: %w", err)
	}
	if err := json.Unmarshal(arr[1], &s.RefreshToken); err != nil {
		return fmt.Errorf("composite session: refresh token: %w", err)
	}
	if err := json.Unmarshal(arr[2], &s.ProviderToken); err != nil {
		return fmt.Errorf("composite session: provider token: %w", err)
	}
	if err := json.Unmarshal(arr[3], &s.ProviderRefreshToken); err != nil {
		return fmt.Errorf("composite session: provider refresh token: %w", err)
	}
	if string(arr[4]) != "null" {
		s.Factors = arr[4]
	}
	return nil
}

// SessionCookieWriter serializes a session into the fixed cookie set the
// browser client expects.
type SessionCookieWriter struct {
	// BackendURL is the configured auth backend URL; its host's first label
	// names the project-scoped duplicate cookie.
	BackendURL string
	// Secure marks cookies Secure; enabled in production.
	Secure bool
}

// Write emits the session cookies on the response.
func (w *SessionCookieWriter) Write(c *gin.Context, session *domain.Session) error {
	w.setCookie(c, accessCookieName, session.AccessToken, accessCookieMaxAge, true)
	w.setCookie(c, refreshCookieName, session.RefreshToken, refreshCookieMaxAge, true)

	composite := CompositeSession{
		AccessToken:          session.AccessToken,
		RefreshToken:         session.RefreshToken,
		ProviderToken:        session.ProviderToken,
		ProviderRefreshToken: session.ProviderRefreshToken,
		Factors:              session.Factors,
	}
	payload, err := json.Marshal(composite)
	if err != nil {
		return fmt.Errorf("failed to marshal composite session: %w", err)
	}

	w.setCookie(c, compositeCookieName, string(payload), accessCookieMaxAge, false)
	w.setCookie(c, authFlagCookieName, "true", accessCookieMaxAge, false)

	// The auth client looks for the composite payload under a name derived
	// from the project ref; missing derivation just skips the duplicate.
	if name, ok := w.projectCookieName(); ok {
		w.setCookie(c, name, string(payload), accessCookieMaxAge, false)
	}

	return nil
}

// Clear expires every session cookie, including the project-scoped duplicate.
func (w *SessionCookieWriter) Clear(c *gin.Context) {
	names := []string{accessCookieName, refreshCookieName, compositeCookieName, authFlagCookieName}
	if name, ok := w.projectCookieName(); ok {
		names = append(names, name)
	}
	for _, name := range names {
		w.setCookie(c, name, "", -1, true)
	}
}

func (w *SessionCookieWriter) setCookie(c *gin.Context, name, value string, maxAge int, httpOnly bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", w.Secure, httpOnly)
}

// projectCookieName derives "sb-<ref>-auth-token" from the backend URL's
// first host label. IP hosts and single-label hosts have no project ref.
func (w *SessionCookieWriter) projectCookieName() (string, bool) {
	u, err := url.Parse(w.BackendURL)
	if err != nil {
		return "", false
	}
	host := u.Hostname()
	if host == "" || net.ParseIP(host) != nil {
		return "", false
	}
	label, rest, found := strings.Cut(host, ".")
	if !found || label == "" || rest == "" {
		return "", false
	}
	return fmt.Sprintf("sb-%s-auth-token", label), true
}
