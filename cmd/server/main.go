package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/portal-labs/application-portal-api/internal/config"
	"github.com/portal-labs/application-portal-api/internal/constants"
	"github.com/portal-labs/application-portal-api/internal/database"
	"github.com/portal-labs/application-portal-api/internal/handlers"
	"github.com/portal-labs/application-portal-api/internal/middleware"
	"github.com/portal-labs/application-portal-api/internal/repository"
	"github.com/portal-labs/application-portal-api/internal/services"
	"github.com/portal-labs/application-portal-api/internal/session"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Select the storage backend
	var userRepo repository.UserRepository
	var appRepo repository.ApplicationRepository
	if cfg.StorageDriver == "memory" {
		store := repository.NewMemoryStore()
		userRepo = store.Users()
		appRepo = store.Applications()
		log.Println("Using in-memory storage")
	} else {
		db, err := database.Connect(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		userRepo = repository.NewUserRepository(db)
		appRepo = repository.NewApplicationRepository(db)
	}

	// Session manager with periodic reclamation of expired sessions
	sessions := session.NewManager(constants.SessionTTL)
	stopSweeper := sessions.StartSweeper(constants.SessionSweepInterval)
	defer stopSweeper()

	// Initialize services
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	appService := services.NewApplicationService(appRepo)

	// Ensure the bootstrap admin account exists
	if err := authService.EnsureAdmin(cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to initialize admin user: %v", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, sessions)
	userHandler := handlers.NewUserHandler(userService)
	appHandler := handlers.NewApplicationHandler(appService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Application Portal API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/user", authHandler.CurrentUser)
		}

		// User management routes (admin only)
		users := api.Group("/users")
		users.Use(middleware.RequireAuth(sessions), middleware.RequireAdmin())
		{
			users.GET("", userHandler.List)
			users.POST("", userHandler.Create)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
		}

		// Application routes (authenticated; review endpoints admin only)
		apps := api.Group("/applications")
		apps.Use(middleware.RequireAuth(sessions))
		{
			apps.POST("", appHandler.Submit)
			apps.GET("/mine", appHandler.ListMine)
			apps.GET("", middleware.RequireAdmin(), appHandler.List)
			apps.PUT("/:id", middleware.RequireAdmin(), appHandler.Review)
			apps.DELETE("/:id", middleware.RequireAdmin(), appHandler.Delete)
		}
	}

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
