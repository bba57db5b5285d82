package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/zaalasociety/academy-api/internal/models"
	"github.com/zaalasociety/academy-api/internal/session"
	appErrors "github.com/zaalasociety/academy-api/pkg/errors"
	"github.com/zaalasociety/academy-api/pkg/response"
)

// ContextPrincipalKey is the gin context key storing the session principal.
const ContextPrincipalKey = "currentPrincipal"

// ContextSessionTokenKey is the gin context key storing the opaque session token.
const ContextSessionTokenKey = "sessionToken"

type sessionReader interface {
	Get(ctx context.Context, token string) (*session.Session, error)
}

// SessionGuard resolves the session cookie into a principal and blocks
// requests that do not carry a live session.
func SessionGuard(store sessionReader, cookies *session.CookieCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := cookies.Read(c)
		if err != nil {
			cookies.Clear(c)
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "please log in to access this page"))
			c.Abort()
			return
		}

		sess, err := store.Get(c.Request.Context(), token)
		if err != nil {
			cookies.Clear(c)
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "please log in to access this page"))
			c.Abort()
			return
		}

		c.Set(ContextPrincipalKey, sess.Principal)
		c.Set(ContextSessionTokenKey, sess.Token)
		c.Next()
	}
}

// RequireRole blocks principals whose role does not match. A session carries
// one principal, so a student hitting an instructor route is simply the
// wrong role, never both.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextPrincipalKey)
		if !exists {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "please log in to access this page"))
			c.Abort()
			return
		}
		principal := value.(models.Principal)
		if principal.Role != role {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "this page requires a "+string(role)+" account"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// Principal returns the authenticated principal from the gin context.
func Principal(c *gin.Context) (models.Principal, bool) {
	value, exists := c.Get(ContextPrincipalKey)
	if !exists {
		return models.Principal{}, false
	}
	principal, ok := value.(models.Principal)
	return principal, ok
}

// SessionToken returns the opaque session token from the gin context.
func SessionToken(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextSessionTokenKey)
	if !exists {
		return "", false
	}
	token, ok := value.(string)
	return token, ok
}
