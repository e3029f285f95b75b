package app

import (
	"github.com/Hamza-Shahid10/ENotebook-Backend/internal/auth"
	"github.com/Hamza-Shahid10/ENotebook-Backend/internal/cache"
	"github.com/Hamza-Shahid10/ENotebook-Backend/internal/config"
	"github.com/Hamza-Shahid10/ENotebook-Backend/internal/handlers"
	"github.com/Hamza-Shahid10/ENotebook-Backend/internal/repo"
	"github.com/Hamza-Shahid10/ENotebook-Backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
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

	api := r.Group("/api")

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret)
	guard := auth.RequireAuth(tokens, cfg.Auth.TokenHeader)

	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(tokens, userSvc)
	registerAuthRoutes(api.Group("/auth"), authHandler, guard)

	noteRepo := repo.NewPGNoteRepo(db)
	noteCache := cache.NewNoteCache(rdb, cfg.Redis.DefaultTTL.Duration())
	noteSvc := service.NewNoteService(noteRepo, noteCache)
	noteHandler := handlers.NewNoteHandler(noteSvc)
	registerNoteRoutes(api.Group("/notes", guard), noteHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "ENotebook API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api",
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

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler, guard gin.HandlerFunc) {
	api.POST("/create-user", h.Register)
	api.POST("/login", h.Login)
	api.POST("/get-user", guard, h.GetUser)
	// User management shares the guard: there is no unauthenticated admin surface.
	api.GET("/fetch-all-users", guard, h.FetchAll)
	api.GET("/fetch-user/:id", guard, h.FetchByID)
	api.PUT("/update-user/:id", guard, h.Update)
	api.DELETE("/delete-user/:id", guard, h.Delete)
}

func registerNoteRoutes(api *gin.RouterGroup, h *handlers.NoteHandler) {
	api.GET("/fetch-all-notes", h.List)
	api.POST("/add-note", h.Add)
	api.PUT("/update-note/:id", h.Update)
	api.DELETE("/delete-note/:id", h.Delete)
}
