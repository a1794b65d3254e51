package view

import (
	"net/http"
	"strconv"
	"time"

	"github.com/kotani6053/nakatu.yasumi/internal/shared/apperror"
	"github.com/kotani6053/nakatu.yasumi/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("view.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("view.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("view request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Views(c *gin.Context) {
	ctx := c.Request.Context()

	refDate := c.DefaultQuery("date", time.Now().UTC().Format("2006-01-02"))
	dayMode := c.DefaultQuery("day", "today")
	periodMode := c.DefaultQuery("period", "today")

	resp, err := h.service.Views(ctx, refDate, dayMode, periodMode)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DayCounts(c *gin.Context) {
	ctx := c.Request.Context()

	now := time.Now().UTC()
	year, _ := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	month, _ := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))

	resp, err := h.service.DayCounts(ctx, year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) FormOptions(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.FormOptions(), nil)
}
