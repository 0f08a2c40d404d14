package app

import (
	"github.com/vedp205/chronos-home/internal/auth"
	"github.com/vedp205/chronos-home/internal/cache"
	"github.com/vedp205/chronos-home/internal/config"
	"github.com/vedp205/chronos-home/internal/handlers"
	"github.com/vedp205/chronos-home/internal/repo"
	"github.com/vedp205/chronos-home/internal/service"
	"github.com/vedp205/chronos-home/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client, store *storage.LocalStore, log *zap.Logger) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	sessionStore := auth.NewStore(rdb, cfg.Auth.SessionTTL.Duration())
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(sessionStore, userSvc)
	registerAuthRoutes(api, sessionStore, authHandler)

	protected := api.Group("", auth.RequireSession(sessionStore))

	dueWindow := cfg.Notify.Window.Duration()

	todoRepo := repo.NewPGTodoRepo(db)
	todoCache := cache.NewTodoCache(rdb, cfg.Redis.DefaultTTL.Duration())
	todoSvc := service.NewTodoService(todoRepo, todoCache, dueWindow)
	registerTodoRoutes(protected, handlers.NewTodoHandler(todoSvc))

	projectSvc := service.NewProjectService(repo.NewPGProjectRepo(db))
	registerProjectRoutes(protected, handlers.NewProjectHandler(projectSvc))

	credentialSvc := service.NewCredentialService(repo.NewPGCredentialRepo(db))
	registerCredentialRoutes(protected, handlers.NewCredentialHandler(credentialSvc))

	noteSvc := service.NewNoteService(repo.NewPGNoteRepo(db))
	registerNoteRoutes(protected, handlers.NewNoteHandler(noteSvc))

	mediaSvc := service.NewMediaService(repo.NewPGMediaRepo(db), store)
	registerMediaRoutes(protected, handlers.NewMediaHandler(mediaSvc))

	notificationSvc := service.NewNotificationService(repo.NewPGNotificationRepo(db))
	registerNotificationRoutes(protected, handlers.NewNotificationHandler(notificationSvc))

	statsSvc := service.NewStatsService(repo.NewPGStatsRepo(db), dueWindow)
	protected.GET("/stats", handlers.NewStatsHandler(statsSvc).Get)

	log.Info("routes registered")
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Chronos Home API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api *gin.RouterGroup, sessions *auth.Store, h *handlers.AuthHandler) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)
	api.GET("/auth/me", auth.RequireSession(sessions), h.Me)
}

func registerTodoRoutes(api *gin.RouterGroup, h *handlers.TodoHandler) {
	api.POST("/todos", h.Create)
	api.GET("/todos", h.List)
	api.GET("/todos/search", h.Search)
	api.GET("/todos/due-soon", h.DueSoon)
	api.GET("/todos/:id", h.GetByID)
	api.PATCH("/todos/:id", h.Update)
	api.DELETE("/todos/:id", h.Delete)
	api.POST("/todos/:id/toggle", h.Toggle)
}

func registerProjectRoutes(api *gin.RouterGroup, h *handlers.ProjectHandler) {
	api.POST("/projects", h.Create)
	api.GET("/projects", h.List)
	api.GET("/projects/:id", h.GetByID)
	api.PUT("/projects/:id", h.Update)
	api.DELETE("/projects/:id", h.Delete)
}

func registerCredentialRoutes(api *gin.RouterGroup, h *handlers.CredentialHandler) {
	api.POST("/credentials", h.Create)
	api.GET("/credentials", h.List)
	api.GET("/credentials/:id", h.GetByID)
	api.PUT("/credentials/:id", h.Update)
	api.DELETE("/credentials/:id", h.Delete)
}

func registerNoteRoutes(api *gin.RouterGroup, h *handlers.NoteHandler) {
	api.POST("/notes", h.Create)
	api.GET("/notes", h.List)
	api.GET("/notes/:id", h.GetByID)
	api.PUT("/notes/:id", h.Update)
	api.DELETE("/notes/:id", h.Delete)
}

func registerMediaRoutes(api *gin.RouterGroup, h *handlers.MediaHandler) {
	api.POST("/media", h.Upload)
	api.GET("/media", h.List)
	api.GET("/media/:id/stream", h.Stream)
	api.DELETE("/media/:id", h.Delete)
}

func registerNotificationRoutes(api *gin.RouterGroup, h *handlers.NotificationHandler) {
	api.GET("/notifications", h.List)
	api.POST("/notifications/read", h.MarkAllRead)
}
