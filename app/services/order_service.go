package services

import (
	"errors"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/app/repositories"
	"github.com/shashiranjanraj/goldenaura/pkg/event"
	"gorm.io/gorm"
)

// OrderService covers reads and admin transitions on the order ledger.
// Order creation lives in CheckoutService; nothing here ever mutates an
// order's line items.
type OrderService struct {
	orders *repositories.OrderRepository
}

func NewOrderService() *OrderService {
	return &OrderService{orders: repositories.NewOrderRepository()}
}

// ListMine returns the caller's orders, newest first.
func (s *OrderService) ListMine(userID uint) ([]models.Order, error) {
	return s.orders.List(repositories.OrderFilter{UserID: &userID})
}

// ListAll returns every order, optionally filtered by status (admin).
func (s *OrderService) ListAll(status string) ([]models.Order, error) {
	if status != "" && !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.orders.List(repositories.OrderFilter{Status: status})
}

// Get loads one order; the caller must be the owner or an admin.
func (s *OrderService) Get(id uint, requesterID uint, isAdmin bool) (models.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, err
	}

	owner := order.UserID != nil && *order.UserID == requesterID
	if !owner && !isAdmin {
		return models.Order{}, ErrForbidden
	}
	return order, nil
}

// SetStatus moves an order along the lifecycle. The target must be a
// recognised status and the edge must exist in the forward-only graph.
func (s *OrderService) SetStatus(id uint, status string) (models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return models.Order{}, ErrInvalidStatus
	}

	order, err := s.orders.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, err
	}

	if !models.CanTransition(order.Status, status) {
		return models.Order{}, ErrInvalidTransition
	}
	if order.Status == status {
		return order, nil
	}

	if err := s.orders.UpdateStatus(&order, status); err != nil {
		return models.Order{}, err
	}

	event.FireAsync(EventOrderStatus, &order)
	return order, nil
}

// Delete removes an order entirely (admin only).
func (s *OrderService) Delete(id uint) error {
	affected, err := s.orders.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
