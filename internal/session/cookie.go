package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	appErrors "github.com/zaalasociety/academy-api/pkg/errors"
)

// CookieCodec issues and reads the session cookie. The cookie value is a
// signed HS256 token whose ID claim holds the opaque session token.
type CookieCodec struct {
	name   string
	secret []byte
	ttl    time.Duration
	secure bool
}

// NewCookieCodec constructs a codec for the configured cookie.
func NewCookieCodec(name, secret string, ttl time.Duration, secure bool) *CookieCodec {
	if name == "" {
		name = "academy_session"
	}
	return &CookieCodec{name: name, secret: []byte(secret), ttl: ttl, secure: secure}
}

// Issue writes the session cookie for an established session.
func (cc *CookieCodec) Issue(c *gin.Context, sess *Session) error {
	claims := jwt.RegisteredClaims{
		ID:        sess.Token,
		IssuedAt:  jwt.NewNumericDate(sess.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cc.secret)
	if err != nil {
		return fmt.Errorf("sign session cookie: %w", err)
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cc.name,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(cc.ttl.Seconds()),
		HttpOnly: true,
		Secure:   cc.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Read extracts and verifies the session token from the request cookie.
func (cc *CookieCodec) Read(c *gin.Context) (string, error) {
	raw, err := c.Cookie(cc.name)
	if err != nil {
		return "", appErrors.ErrUnauthorized
	}

	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return cc.secret, nil
	})
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid session cookie")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return "", appErrors.Clone(appErrors.ErrUnauthorized, "invalid session cookie")
	}
	return claims.ID, nil
}

// Clear expires the session cookie.
func (cc *CookieCodec) Clear(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cc.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cc.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
