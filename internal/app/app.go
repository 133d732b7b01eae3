// Package app wires every service into one HTTP server.
package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"socialhub/pkg/cache"
	"socialhub/pkg/config"
	"socialhub/pkg/database"
	"socialhub/pkg/jwt"
	"socialhub/pkg/logger"
	"socialhub/pkg/middleware"
	"socialhub/pkg/storage"
	"socialhub/services/activity"
	"socialhub/services/auth"
	"socialhub/services/feed"
	"socialhub/services/media"
	"socialhub/services/post"
	"socialhub/services/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "socialhub/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	store       storage.Storage
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	store, err := storage.New(cfg)
	if err != nil {
		log.Error("Failed to set up media storage: %v", err)
		return nil, err
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		store:       store,
		jwtService:  jwt.NewService(cfg.JWTSecret),
	}, nil
}

// Handler builds the router with every route mounted.
func (a *App) Handler() http.Handler {
	if a.cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), middleware.Recovery(a.log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{a.cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	r.Use(middleware.NewMetrics(registry).Handler())
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if local, ok := a.store.(*storage.Local); ok {
		r.Static("/uploads", local.Dir())
	}

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Backend is running", "status": "OK"})
	})

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(a.jwtService))

	auth.New(a.log, a.db, a.jwtService).RegisterRoutes(api)
	media.New(a.log, a.store).RegisterRoutes(api)

	user.New(a.log, a.db, a.redisClient).RegisterRoutes(api.Group("/users"), protected.Group("/users"))
	activity.New(a.cfg, a.log, a.db, a.redisClient).RegisterRoutes(protected.Group("/users"))

	post.New(a.log, a.db, a.redisClient).RegisterRoutes(api.Group("/posts"), protected.Group("/posts"))
	feed.New(a.log, a.db, a.redisClient).RegisterRoutes(protected.Group("/posts"))

	r.NoRoute(middleware.NotFound)

	return r
}

func (a *App) Run() error {
	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		a.log.Info("Server starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down server...")
}

func (a *App) Shutdown() error {
	// The server has 5 seconds to finish in-flight requests
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	shutdownErr := a.httpServer.Shutdown(ctx)
	if shutdownErr != nil {
		a.log.Error("Server forced to shutdown: %v", shutdownErr)
	}

	if sqlDB, err := a.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if shutdownErr != nil {
		return shutdownErr
	}
	a.log.Info("Server exited")
	return nil
}
