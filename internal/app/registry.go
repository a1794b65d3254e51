package app

import (
	"context"
	"database/sql"

	"github.com/kotani6053/nakatu.yasumi/internal/messaging/kafka"
	"github.com/kotani6053/nakatu.yasumi/internal/middleware"
	"github.com/kotani6053/nakatu.yasumi/internal/record"
	"github.com/kotani6053/nakatu.yasumi/internal/stream"
	"github.com/kotani6053/nakatu.yasumi/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	recordRepo := record.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Snapshot fan-out ---
	hub := stream.NewHub()
	bridge := stream.NewBridge(rdb, recordRepo, hub)
	go bridge.Run(context.Background())

	// --- Services ---
	recordService := record.NewServiceWithOutbox(db, recordRepo, outboxRepo, bridge)
	dayCountCache := view.NewDayCountCache(rdb)
	viewService := view.NewService(recordRepo, dayCountCache)

	// --- Handlers ---
	recordHandler := record.NewHandler(recordService, rdb)
	viewHandler := view.NewHandler(viewService)
	streamHandler := stream.NewHandler(hub)

	// --- Middleware & routes ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(20, 40))
	{
		record.RegisterRoutes(api, recordHandler, rdb)
		view.RegisterRoutes(api, viewHandler)
		stream.RegisterRoutes(api, streamHandler)
	}

	return nil
}
