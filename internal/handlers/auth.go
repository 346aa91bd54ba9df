package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portal-labs/application-portal-api/internal/constants"
	apierrors "github.com/portal-labs/application-portal-api/internal/errors"
	"github.com/portal-labs/application-portal-api/internal/services"
	"github.com/portal-labs/application-portal-api/internal/session"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	sessions    *session.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

// Login authenticates a user and issues the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Username and password are required")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.Unauthorized(c, "Invalid credentials")
			return
		}
		apierrors.InternalError(c, "An error occurred during login")
		return
	}

	token := h.sessions.Create(session.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	setSessionCookie(c, token, int(constants.SessionTTL.Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
	})
}

// Logout destroys the current session. Logging out without a session is
// still a success.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(constants.SessionCookieName); err == nil {
		h.sessions.Destroy(token)
	}
	setSessionCookie(c, "", -1)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
	})
}

// CurrentUser returns the identity bound to the session cookie.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	token, err := c.Cookie(constants.SessionCookieName)
	if err != nil {
		apierrors.Unauthorized(c, "Please log in")
		return
	}

	identity, ok := h.sessions.Read(token)
	if !ok {
		apierrors.Unauthorized(c, "Please log in")
		return
	}

	c.JSON(http.StatusOK, identity)
}

// setSessionCookie writes the session cookie. Secure is intentionally
// false: the portal is deployed behind plain HTTP on the internal
// network. Token theft on the wire is an accepted deployment risk there.
func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.SessionCookieName, token, maxAge, "/", "", false, true)
}
