package record

import (
	"github.com/kotani6053/nakatu.yasumi/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
) {
	records := r.Group("/records")
	{
		records.GET("", handler.GetAll)
		records.GET("/:id", handler.GetById)
		records.POST("", middleware.Idempotency(rdb), handler.Create)
		records.PUT("/:id", handler.Update)
		records.DELETE("/:id", handler.Delete)
	}
}
