// Package jobs defines the background jobs processed by queue workers.
package jobs

import (
	"fmt"

	"github.com/shashiranjanraj/goldenaura/app/notifications"
	"github.com/shashiranjanraj/goldenaura/app/repositories"
	"github.com/shashiranjanraj/goldenaura/pkg/notification"
	"github.com/shashiranjanraj/goldenaura/pkg/queue"
)

// InvoiceEmailJob mails the invoice for a paid order. Queued rather
// than sent inline so SMTP latency never holds up the payment
// confirmation response.
type InvoiceEmailJob struct {
	OrderID uint `json:"order_id"`
}

func (j *InvoiceEmailJob) Handle() error {
	order, err := repositories.NewOrderRepository().FindByID(j.OrderID)
	if err != nil {
		return fmt.Errorf("invoice job: load order %d: %w", j.OrderID, err)
	}
	if order.Delivery.Email == "" {
		return nil
	}

	if errs := notification.Send(order.Delivery.Email, &notifications.OrderConfirmation{Order: order}); len(errs) > 0 {
		return fmt.Errorf("invoice job: order %d: %w", j.OrderID, errs[0])
	}
	return nil
}

// Register makes every job type deserialisable by the queue workers.
// Call once at boot, before StartWorkers.
func Register() {
	queue.Register("*jobs.InvoiceEmailJob", func() queue.Job { return &InvoiceEmailJob{} })
}
