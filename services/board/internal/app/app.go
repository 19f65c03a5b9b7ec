package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"corkboard/pkg/config"
	"corkboard/pkg/logger"
	"corkboard/pkg/middleware"
	"corkboard/pkg/queue"
	"corkboard/pkg/s3"
	"corkboard/services/board/internal/capacity"
	boardHTTP "corkboard/services/board/internal/controller/http"
	"corkboard/services/board/internal/repo/persistent"
	"corkboard/services/board/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "corkboard/services/board/docs" // Swagger docs
)

// NewRouter builds the gin engine for the board. redisClient may be nil, in
// which case write routes are not rate limited.
func NewRouter(cfg *config.Config, log *logger.Logger, boardHandler *boardHTTP.BoardHandler, redisClient *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.GET("/posts", boardHandler.ListPosts)
		api.GET("/posts/archive", boardHandler.ListArchive)
		api.GET("/posts/:id", boardHandler.GetPost)
	}

	writes := api.Group("")
	if redisClient != nil {
		writes.Use(middleware.RateLimitMiddleware(redisClient, middleware.RateLimitConfig{
			Limit:  cfg.RateLimitPerMinute,
			Window: time.Minute,
			Logger: log,
		}))
	}
	{
		writes.POST("/posts", boardHandler.CreatePost)
		writes.POST("/posts/resolve", boardHandler.ResolvePost)
		writes.PUT("/posts/:id/position", boardHandler.UpdatePosition)
	}

	return r
}

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	// Initialize repositories
	postRepo := persistent.NewPostRepository(db)

	var publisher usecase.EventPublisher
	if queueClient != nil {
		publisher = queueClient
	}

	// Initialize use cases
	limits := capacity.Limits{MaxActive: cfg.MaxActive, MaxCore: cfg.MaxCore}
	boardUseCase := usecase.NewBoardUseCase(postRepo, limits, publisher, log)

	// Initialize HTTP handlers
	boardHandler := boardHTTP.NewBoardHandler(boardUseCase, s3Client, log)

	r := NewRouter(cfg, log, boardHandler, redisClient)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("Board service starting on port %s (active limit %d, core limit %d)", cfg.ServerPort, limits.MaxActive, limits.MaxCore)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down board service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Stop accepting requests before closing the stores they use
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if queueClient != nil {
		queueClient.Close()
	}

	log.Info("Board service exited")
}
