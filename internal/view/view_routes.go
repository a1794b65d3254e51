package view

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	views := r.Group("/views")
	{
		views.GET("", handler.Views)
		views.GET("/day-counts", handler.DayCounts)
		views.GET("/options", handler.FormOptions)
	}
}
