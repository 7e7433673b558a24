package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/puwasa/pos-terminal/internal/events"
)

// EventsHandler streams terminal events to the UI over SSE.
type EventsHandler struct {
	hub *events.Hub
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(hub *events.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream subscribes the client to bill-saved notifications. Each write of
// the receipt artifact produces one event; the connection stays open until
// the client goes away.
func (h *EventsHandler) Stream(c *gin.Context) {
	ch := h.hub.Subscribe()
	defer h.hub.Unsubscribe(ch)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("last-bill-updated", ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
