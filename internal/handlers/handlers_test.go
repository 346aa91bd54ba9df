package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/portal-labs/application-portal-api/internal/constants"
	"github.com/portal-labs/application-portal-api/internal/middleware"
	"github.com/portal-labs/application-portal-api/internal/repository"
	"github.com/portal-labs/application-portal-api/internal/services"
	"github.com/portal-labs/application-portal-api/internal/session"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router      *gin.Engine
	sessions    *session.Manager
	authService *services.AuthService
	userService *services.UserService
	appService  *services.ApplicationService
}

// setupTestEnv builds the full router against an in-memory store, with
// the bootstrap admin created, mirroring the wiring in cmd/server.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	userRepo := store.Users()
	appRepo := store.Applications()

	sessions := session.NewManager(constants.SessionTTL)
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	appService := services.NewApplicationService(appRepo)

	require.NoError(t, authService.EnsureAdmin("123456"))

	authHandler := NewAuthHandler(authService, sessions)
	userHandler := NewUserHandler(userService)
	appHandler := NewApplicationHandler(appService)

	r := gin.New()
	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/user", authHandler.CurrentUser)

	users := api.Group("/users")
	users.Use(middleware.RequireAuth(sessions), middleware.RequireAdmin())
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	apps := api.Group("/applications")
	apps.Use(middleware.RequireAuth(sessions))
	apps.POST("", appHandler.Submit)
	apps.GET("/mine", appHandler.ListMine)
	apps.GET("", middleware.RequireAdmin(), appHandler.List)
	apps.PUT("/:id", middleware.RequireAdmin(), appHandler.Review)
	apps.DELETE("/:id", middleware.RequireAdmin(), appHandler.Delete)

	return &testEnv{
		router:      r,
		sessions:    sessions,
		authService: authService,
		userService: userService,
		appService:  appService,
	}
}

// do performs a JSON request against the test router. A nil body sends
// an empty request; cookies are forwarded as-is.
func (env *testEnv) do(t *testing.T, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// login authenticates and returns the session cookie.
func (env *testEnv) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()

	w := env.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			return cookie
		}
	}
	t.Fatalf("no session cookie in login response")
	return nil
}

// createUser provisions a user directly through the service.
func (env *testEnv) createUser(t *testing.T, username, password string) {
	t.Helper()
	_, err := env.userService.Create(services.CreateUserInput{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
}
