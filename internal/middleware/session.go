package middleware

import (
	"context"
	"net/http"

	"pospenjualan/internal/access"
	"pospenjualan/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const SessionKey = "session"

// sessionStore is the slice of the session store the middleware needs;
// *session.Store satisfies it.
type sessionStore interface {
	Get(ctx context.Context, token string) (*model.Session, error)
	Touch(ctx context.Context, sess *model.Session) error
	Rotate(ctx context.Context, sess *model.Session) (bool, error)
}

// CookieConfig carries the session cookie parameters.
type CookieConfig struct {
	Name   string
	MaxAge int
	Secure bool
}

// SessionAuth loads the session behind the cookie, rotates the identifier
// when due (re-setting the cookie), and records activity. A missing or
// expired session redirects to the login page — no error body.
func SessionAuth(store sessionStore, cookie CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookie.Name)
		if err != nil || token == "" {
			redirectToLogin(c)
			return
		}

		sess, err := store.Get(c.Request.Context(), token)
		if err != nil {
			redirectToLogin(c)
			return
		}

		rotated, err := store.Rotate(c.Request.Context(), sess)
		if err != nil {
			log.Error().Err(err).Msg("session: rotate")
		}
		if rotated {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookie.Name, sess.Token, cookie.MaxAge, "/", "", cookie.Secure, true)
		}
		if err := store.Touch(c.Request.Context(), sess); err != nil {
			log.Error().Err(err).Msg("session: touch")
		}

		c.Set(SessionKey, sess)
		c.Next()
	}
}

// GetSession retrieves the typed session from the Gin context; nil when the
// request is unauthenticated.
func GetSession(c *gin.Context) *model.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*model.Session)
	return sess
}

// RequireLevel gates a route group on the role ordinal. An insufficient role
// is answered with a redirect to the fallback page, mirroring how the UI
// bounces users off pages they cannot see.
func RequireLevel(required model.Role, fallback string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !access.HasAccess(GetSession(c), required) {
			c.Redirect(http.StatusSeeOther, fallback)
			c.Abort()
			return
		}
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
}
