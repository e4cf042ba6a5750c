package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// TokenCookieName carries the signed session token.
	TokenCookieName = "auth_token"
	// SessionCookieName carries the opaque per-login id. It is written once
	// at login and never read back by any verification path.
	SessionCookieName = "session_id"
)

// CookiePolicy is the process-wide cookie attribute set, constructed once at
// startup and read-only afterwards. Every cookie this service issues is
// HttpOnly with SameSite=Lax; Secure follows the deployment environment.
type CookiePolicy struct {
	Domain string
	Secure bool
	Path   string
}

// NewCookiePolicy builds the policy value with the default path.
func NewCookiePolicy(domain string, secure bool) CookiePolicy {
	return CookiePolicy{
		Domain: domain,
		Secure: secure,
		Path:   "/",
	}
}

// SetAuthCookies attaches the token cookie with the token's own expiry and
// the session-id cookie with default (session) expiry.
func (p CookiePolicy) SetAuthCookies(c *gin.Context, token string, tokenTTL time.Duration, sessionID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(TokenCookieName, token, int(tokenTTL.Seconds()), p.Path, p.Domain, p.Secure, true)
	c.SetCookie(SessionCookieName, sessionID, 0, p.Path, p.Domain, p.Secure, true)
}

// ClearTokenCookie expires the token cookie.
func (p CookiePolicy) ClearTokenCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(TokenCookieName, "", -1, p.Path, p.Domain, p.Secure, true)
}

// ReadToken extracts the session token from the request: the token cookie
// first, then an Authorization bearer fallback for non-browser callers.
func ReadToken(c *gin.Context) (string, bool) {
	if value, err := c.Cookie(TokenCookieName); err == nil && value != "" {
		return value, true
	}
	return bearerToken(c)
}
