package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/sanyamseac/game/internal/auth"
	"github.com/sanyamseac/game/internal/config"
	"github.com/sanyamseac/game/internal/database"
	"github.com/sanyamseac/game/internal/handler"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "github.com/sanyamseac/game/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Elimination Game API
// @version         1.0
// @description     This is the API for the elimination voting game.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey SessionAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	if err := database.EnsureAdmin(database.DB, config.AppConfig.AdminEmail, config.AppConfig.AdminPassword); err != nil {
		log.Fatalf("Failed to ensure admin account: %v", err)
	}

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterPlayer)
			authRoutes.POST("/login", handler.LoginAdmin)
			authRoutes.POST("/logout", auth.AuthMiddleware(), handler.Logout)
			authRoutes.GET("/me", auth.AuthMiddleware(), handler.GetMe)
		}

		// Public routes: the spectator display polls these without a session
		public := apiV1.Group("")
		public.Use(auth.OptionalAuthMiddleware())
		{
			public.GET("/display", handler.GetDisplay)
			public.GET("/display/qr", handler.GetDisplayQR)
			public.GET("/events", handler.StreamEvents)
			public.GET("/votes/:level", handler.GetVoteTally)
			public.GET("/game/snapshot", handler.GetSnapshot)
		}

		// Player routes (protected)
		gameRoutes := apiV1.Group("/game")
		gameRoutes.Use(auth.AuthMiddleware())
		{
			gameRoutes.GET("", handler.GetGameState)
			gameRoutes.GET("/eliminated", handler.GetEliminated)
			gameRoutes.POST("/levels/:level/vote", handler.CastVote)
		}

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			adminRoutes.GET("/dashboard", handler.GetDashboard)
			adminRoutes.POST("/registration/toggle", handler.ToggleRegistration)

			gameAdmin := adminRoutes.Group("/game")
			{
				gameAdmin.POST("/start", handler.StartGame)
				gameAdmin.POST("/end-voting", handler.EndVoting)
				gameAdmin.POST("/reveal", handler.RevealResults)
				gameAdmin.POST("/advance", handler.AdvanceLevel)
				gameAdmin.POST("/reset", handler.ResetGame)
			}

			timer := adminRoutes.Group("/timer")
			{
				timer.POST("/start", handler.StartTimer)
				timer.POST("/stop", handler.StopTimer)
			}
		}
	}

	fmt.Printf("Server is running on %s\n", config.AppConfig.ServerAddr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ServerAddr))
}
