// internal/interfaces/http/handlers/events.go
package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/pkg/bus"
)

// EventsHandler streams ledger change signals to rendering surfaces over
// Server-Sent Events. Clients re-read the ledgers on every event; the
// payload only narrows which surfaces need to react.
type EventsHandler struct {
	bus bus.Bus
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(b bus.Bus) *EventsHandler {
	return &EventsHandler{bus: b}
}

type change struct {
	topic   string
	payload string
}

// Stream handles GET /events
func (h *EventsHandler) Stream(c *gin.Context) {
	// Buffered so a slow client drops signals instead of blocking the bus.
	changes := make(chan change, 16)

	forward := func(topic string) bus.Handler {
		return func(payload string) {
			select {
			case changes <- change{topic: topic, payload: payload}:
			default:
			}
		}
	}

	unsubStock := h.bus.Subscribe(bus.TopicStockChanged, forward(bus.TopicStockChanged))
	defer unsubStock()
	unsubCart := h.bus.Subscribe(bus.TopicCartChanged, forward(bus.TopicCartChanged))
	defer unsubCart()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev := <-changes:
			c.SSEvent(ev.topic, ev.payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
