package stream

import (
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	hub    *Hub
	logger *zap.Logger
}

func NewHandler(hub *Hub, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("stream.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("stream.handler")
	}
	return &Handler{hub: hub, logger: l}
}

// Stream serves the record set over SSE. Each event carries the complete
// current set; clients replace their local state wholesale on every event.
func (h *Handler) Stream(c *gin.Context) {
	ch, unsubscribe := h.hub.Subscribe(4)
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	h.logger.Debug("stream subscriber connected",
		zap.Int("subscribers", h.hub.SubscriberCount()),
	)

	c.Stream(func(w io.Writer) bool {
		select {
		case snapshot, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("records", snapshot)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})

	h.logger.Debug("stream subscriber disconnected")
}
