package main

import (
	"os"
	"time"

	"github.com/kotani6053/nakatu.yasumi/internal/app"
	"github.com/kotani6053/nakatu.yasumi/internal/bootstrap"
	"github.com/kotani6053/nakatu.yasumi/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	r := gin.Default()

	// build dependency + routes
	if err := app.BuildApp(r); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	auditLogger := bootstrap.NewStdoutAuditLogger()
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:        port,
			ReadTimeout: 5 * time.Second,
			// No write timeout: /records/stream holds its connection open.
			WriteTimeout: 0,
			IdleTimeout:  60 * time.Second,
		},
		auditLogger,
	)
}
