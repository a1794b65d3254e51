package app

import (
	"context"
	"log"
	"os"

	"github.com/kotani6053/nakatu.yasumi/internal/messaging/kafka"
	"github.com/kotani6053/nakatu.yasumi/internal/record"
	"github.com/kotani6053/nakatu.yasumi/internal/shared/connection"

	"github.com/gin-gonic/gin"
)

func BuildApp(router *gin.Engine) error {
	// 1. Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	log.Println("database connection established")

	if err := gormDB.AutoMigrate(&record.LeaveRecord{}); err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	if err := kafka.EnsureOutboxTable(context.Background(), sqlDB); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	log.Println("redis connection established")

	// 2. Modules & routes
	return registerModules(router, sqlDB, gormDB, redisClient)
}
