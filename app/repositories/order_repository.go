package repositories

import (
	"time"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/pkg/orm"
)

// OrderFilter narrows an order listing.
type OrderFilter struct {
	UserID *uint
	Status string
}

// OrderRepository handles database operations for the order ledger.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create persists the order and its line items atomically. GORM writes
// the association rows inside the same transaction as the order, so a
// half-written order can never be observed.
func (r *OrderRepository) Create(order *models.Order) error {
	return orm.DB().Transaction(func(tx *orm.Query) error {
		return tx.Create(order)
	})
}

// FindByID loads one order with its items.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var order models.Order
	err := orm.DB().Model(&models.Order{}).
		Preload("Items").
		Where("id = ?", id).
		First(&order)
	return order, err
}

// FindByGatewayOrderID looks up an order by the gateway intent id.
func (r *OrderRepository) FindByGatewayOrderID(gatewayID string) (models.Order, error) {
	var order models.Order
	err := orm.DB().Model(&models.Order{}).
		Preload("Items").
		Where("razorpay_order_id = ?", gatewayID).
		First(&order)
	return order, err
}

// List returns orders matching the filter, newest first.
func (r *OrderRepository) List(f OrderFilter) ([]models.Order, error) {
	q := orm.DB().Model(&models.Order{}).Preload("Items")
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var orders []models.Order
	err := q.Order("created_at DESC").Get(&orders)
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, err
}

// UpdateStatus writes the new status on an existing order.
func (r *OrderRepository) UpdateStatus(order *models.Order, status string) error {
	order.Status = status
	return orm.DB().Model(order).Updates(map[string]interface{}{"status": status})
}

// Delete removes an order (admin only). Items are soft-deleted with it.
func (r *OrderRepository) Delete(id uint) (int64, error) {
	var affected int64
	err := orm.DB().Transaction(func(tx *orm.Query) error {
		n, err := tx.Exec(
			"UPDATE orders SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL", id,
		)
		if err != nil {
			return err
		}
		affected = n
		_, err = tx.Exec(
			"UPDATE order_items SET deleted_at = CURRENT_TIMESTAMP WHERE order_id = ? AND deleted_at IS NULL", id,
		)
		return err
	})
	return affected, err
}

// Count returns the total number of orders.
func (r *OrderRepository) Count() (int64, error) {
	var n int64
	err := orm.DB().Model(&models.Order{}).Count(&n)
	return n, err
}

// Revenue sums the amount of every non-cancelled order.
func (r *OrderRepository) Revenue() (float64, error) {
	var orders []models.Order
	err := orm.DB().Model(&models.Order{}).
		Where("status <> ?", models.OrderCancelled).
		Get(&orders)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, o := range orders {
		total += o.Amount
	}
	return total, nil
}

// DailyRevenue groups revenue per day since the cutoff.
type DailyRevenue struct {
	Day   string  `json:"day"`
	Total float64 `json:"total"`
}

// RevenueSince returns one bucket per day for orders created after cutoff.
func (r *OrderRepository) RevenueSince(cutoff time.Time) ([]DailyRevenue, error) {
	var orders []models.Order
	err := orm.DB().Model(&models.Order{}).
		Where("created_at >= ? AND status <> ?", cutoff, models.OrderCancelled).
		Order("created_at ASC").
		Get(&orders)
	if err != nil {
		return nil, err
	}

	byDay := map[string]float64{}
	var days []string
	for _, o := range orders {
		day := o.CreatedAt.Format("2006-01-02")
		if _, seen := byDay[day]; !seen {
			days = append(days, day)
		}
		byDay[day] += o.Amount
	}

	out := make([]DailyRevenue, 0, len(days))
	for _, d := range days {
		out = append(out, DailyRevenue{Day: d, Total: byDay[d]})
	}
	return out, nil
}
