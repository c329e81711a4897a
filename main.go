package main

import (
	"fmt"
	"log"
	"os"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file found, using environment variables")
	}

	if os.Getenv("SESSION_SECRET_KEY") == "" && os.Getenv("GO_ENV") != "test" {
		log.Fatal("Required environment variable SESSION_SECRET_KEY is not set")
	}

	utils.InitValidator()
}

func setupRouter(cfg *config.Config, store *repository.Store) *gin.Engine {
	router := gin.Default()

	// Repositories over the JSON file store
	usersRepo := repository.GetUsersRepo(store)
	notesRepo := repository.GetNotesRepo(store)
	eventsRepo := repository.GetEventsRepo(store)
	sessionRepo := repository.GetSessionRepo(store)

	// Services
	userService := &usecase.UserService{UsersRepo: usersRepo}
	notesService := &usecase.NotesService{NotesRepo: notesRepo}
	eventsService := &usecase.EventsService{EventsRepo: eventsRepo}
	questService := &usecase.QuestService{
		UsersRepo:  usersRepo,
		NotesRepo:  notesRepo,
		EventsRepo: eventsRepo,
	}
	notificationService := &usecase.NotificationService{
		NotesRepo:  notesRepo,
		EventsRepo: eventsRepo,
	}
	statsHandler := handler.NewStatsHandler(usersRepo, notesRepo, eventsRepo, sessionRepo)

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(cfg.MaxRequestBytes))
	router.Use(middleware.SessionMiddleware(sessionRepo))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":        "ok",
			"session_cache": services.GlobalSessionCache.IsConnected(),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no session required)
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegistrationHandler(c, userService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, userService, sessionRepo, cfg.SessionDuration)
			})
		}
	}

	// Protected routes (session required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.POST("/logout", func(c *gin.Context) {
				handler.LogoutHandler(c, sessionRepo)
			})
			user.GET("/profile", func(c *gin.Context) {
				handler.GetProfileHandler(c, userService)
			})
			user.PUT("/profile", func(c *gin.Context) {
				handler.UpdateProfileHandler(c, userService)
			})
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("/active", func(c *gin.Context) {
				handler.GetActiveSessionsHandler(c, sessionRepo)
			})
			sessions.POST("/logout-all", func(c *gin.Context) {
				handler.LogoutAllSessionsHandler(c, sessionRepo)
			})
		}

		notes := protected.Group("/notes")
		{
			notes.GET("", func(c *gin.Context) {
				handler.GetUserNotesHandler(c, notesService)
			})
			notes.POST("", func(c *gin.Context) {
				handler.CreateNoteHandler(c, notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, notesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, notesService)
			})
		}

		events := protected.Group("/events")
		{
			events.GET("", func(c *gin.Context) {
				handler.GetUserEventsHandler(c, eventsService)
			})
			events.POST("", func(c *gin.Context) {
				handler.CreateEventHandler(c, eventsService)
			})
			events.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteEventHandler(c, eventsService)
			})
		}

		protected.GET("/notifications", func(c *gin.Context) {
			handler.GetNotificationsHandler(c, notificationService, sessionRepo)
		})

		quests := protected.Group("/quests")
		{
			quests.GET("", func(c *gin.Context) {
				handler.GetDailyQuestsHandler(c, questService)
			})
			quests.POST("/:id/toggle", func(c *gin.Context) {
				handler.ToggleQuestHandler(c, questService)
			})
		}

		protected.POST("/darkmode/toggle", func(c *gin.Context) {
			handler.ToggleDarkModeHandler(c, questService, sessionRepo)
		})

		protected.GET("/stats", statsHandler.GetUserStats)
	}

	return router
}

func main() {
	cfg := config.Load()

	services.InitTokenSigner(cfg.SessionSecret)
	services.InitSessionCache(cfg.RedisURL)

	store, err := repository.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to init store: %v", err)
	}
	log.Printf("JSON store ready in %s", store.Dir())

	router := setupRouter(cfg, store)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
