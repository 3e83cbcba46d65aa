package middleware

import (
	"fmt"
	"net/http"
	"time"

	"house-points/internal/model"
	"house-points/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	cookieName   = "session"
	principalKey = "principal"
)

// Sessions issues and verifies the session cookie. The cookie payload is an
// HS256 token holding only {role, uid, exp}; the principal itself is reloaded
// from storage on every request so revoked accounts drop out immediately.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	auth   *service.AuthService
}

func NewSessions(secret string, ttl time.Duration, auth *service.AuthService) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl, auth: auth}
}

// Issue sets the session cookie. Cross-origin frontends send credentials, so
// the cookie must be SameSite=None with Secure; HttpOnly keeps it away from
// scripts.
func (s *Sessions) Issue(c *gin.Context, p model.Principal) error {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": string(p.Role),
		"uid":  p.ID(),
		"exp":  time.Now().Add(s.ttl).Unix(),
	}).SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(cookieName, token, int(s.ttl.Seconds()), "/", "", true, true)
	return nil
}

func (s *Sessions) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(cookieName, "", -1, "/", "", true, true)
}

// Authenticate resolves the current principal or aborts with 401. An invalid
// or stale session is indistinguishable from no session.
func (s *Sessions) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cookieName)
		if err != nil {
			abortUnauthorized(c)
			return
		}
		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return s.secret, nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c)
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c)
			return
		}
		uid, ok := claims["uid"].(float64)
		role, ok2 := claims["role"].(string)
		if !ok || !ok2 {
			abortUnauthorized(c)
			return
		}

		p, err := s.auth.LoadPrincipal(c.Request.Context(), model.Role(role), int(uid))
		if err != nil {
			abortUnauthorized(c)
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// RequireAdmin gates a route on the admin role. Runs after Authenticate and
// performs no writes, so a failed check cannot leave partial effects.
func (s *Sessions) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if p, ok := Current(c); !ok || p.Role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

func (s *Sessions) RequireCaptain() gin.HandlerFunc {
	return func(c *gin.Context) {
		if p, ok := Current(c); !ok || p.Role != model.RoleCaptain {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Captain access required"})
			return
		}
		c.Next()
	}
}

// Current returns the principal set by Authenticate.
func Current(c *gin.Context) (model.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return model.Principal{}, false
	}
	p, ok := v.(model.Principal)
	return p, ok
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}
