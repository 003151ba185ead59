// Package listeners wires order lifecycle events to their side
// effects: the queued invoice email and the admin dashboard feed.
package listeners

import (
	"github.com/shashiranjanraj/goldenaura/app/jobs"
	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/app/services"
	"github.com/shashiranjanraj/goldenaura/pkg/event"
	"github.com/shashiranjanraj/goldenaura/pkg/logger"
	"github.com/shashiranjanraj/goldenaura/pkg/queue"
	"github.com/shashiranjanraj/goldenaura/pkg/ws"
)

// Register attaches all event listeners. feed is the hub behind the
// admin order stream. Call once at boot.
func Register(feed *ws.Hub) {
	event.Listen(services.EventOrderPaid, func(payload interface{}) {
		order, ok := payload.(*models.Order)
		if !ok {
			return
		}

		if err := queue.Dispatch(&jobs.InvoiceEmailJob{OrderID: order.ID}); err != nil {
			logger.Error("listeners: queue invoice email", "order_id", order.ID, "error", err)
		}
		feed.BroadcastJSON(map[string]interface{}{
			"event":    "order.paid",
			"order_id": order.ID,
			"amount":   order.Amount,
			"status":   order.Status,
		})
	})

	event.Listen(services.EventOrderStatus, func(payload interface{}) {
		order, ok := payload.(*models.Order)
		if !ok {
			return
		}
		feed.BroadcastJSON(map[string]interface{}{
			"event":    "order.status",
			"order_id": order.ID,
			"status":   order.Status,
		})
	})
}
