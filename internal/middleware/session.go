package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Session makes sure every visitor carries a session cookie and stores its id in the context.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(m.config.SessionCookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(m.config.SessionCookieName, id, int(m.config.SessionTTL.Seconds()), "/", "", m.config.SecureCookie, true)
		c.Set(sessionIDKey, id)
		c.Next()
	}
}

// SessionID returns the session id set by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
