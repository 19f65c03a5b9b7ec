package main

import (
	"corkboard/pkg/cache"
	"corkboard/pkg/config"
	"corkboard/pkg/database"
	"corkboard/pkg/logger"
	"corkboard/pkg/queue"
	"corkboard/pkg/s3"
	boardApp "corkboard/services/board/internal/app"

	"github.com/gin-gonic/gin"
)

// @title           Corkboard API
// @version         1.0
// @description     Capacity-bounded shared post board
// @host            localhost:8080
// @BasePath        /api/v1

func init() {
	gin.SetMode(gin.ReleaseMode)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	var queueClient *queue.Client
	if cfg.EventsEnabled {
		queueClient, err = queue.NewRabbitMQClient(cfg, log)
		if err != nil {
			log.Warn("Board events disabled, RabbitMQ unavailable: %v", err)
			queueClient = nil
		}
	}

	boardApp.Run(cfg, log, db, s3Client, queueClient, redisClient)
}
