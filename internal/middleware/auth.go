package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/portal-labs/application-portal-api/internal/constants"
	apierrors "github.com/portal-labs/application-portal-api/internal/errors"
	"github.com/portal-labs/application-portal-api/internal/models"
	"github.com/portal-labs/application-portal-api/internal/session"
)

// RequireAuth checks that the request carries an active session cookie
// and stores the session identity in the context for handlers.
func RequireAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(constants.SessionCookieName)
		if err != nil {
			apierrors.Unauthorized(c, "Please log in")
			c.Abort()
			return
		}

		identity, ok := sessions.Read(token)
		if !ok {
			apierrors.Unauthorized(c, "Please log in")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyIdentity, identity)
		c.Next()
	}
}

// RequireAdmin checks that the authenticated identity has the admin role.
// It must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			apierrors.Unauthorized(c, "Please log in")
			c.Abort()
			return
		}

		if identity.Role != models.RoleAdmin {
			apierrors.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentIdentity retrieves the session identity from the context.
func CurrentIdentity(c *gin.Context) (session.Identity, bool) {
	value, exists := c.Get(constants.ContextKeyIdentity)
	if !exists {
		return session.Identity{}, false
	}

	identity, ok := value.(session.Identity)
	return identity, ok
}
