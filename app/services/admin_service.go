package services

import (
	"sync"
	"time"

	"github.com/shashiranjanraj/goldenaura/app/repositories"
	"github.com/shashiranjanraj/goldenaura/pkg/workerpool"
)

// DashboardStats is the admin overview payload.
type DashboardStats struct {
	Products int64                       `json:"products"`
	Orders   int64                       `json:"orders"`
	Users    int64                       `json:"users"`
	Revenue  float64                     `json:"revenue"`
	SevenDay []repositories.DailyRevenue `json:"seven_day"`
}

// statsPool bounds the concurrent dashboard queries so a burst of
// admin page loads can't pile up goroutines against the database.
var statsPool = workerpool.New(8)

// AdminService aggregates dashboard figures.
type AdminService struct {
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
	users    *repositories.UserRepository
}

func NewAdminService() *AdminService {
	return &AdminService{
		orders:   repositories.NewOrderRepository(),
		products: repositories.NewProductRepository(),
		users:    repositories.NewUserRepository(),
	}
}

// Stats computes product/order/user counts, lifetime revenue, and the
// seven-day revenue series. The five queries are independent and run
// concurrently through the pool.
func (s *AdminService) Stats() (DashboardStats, error) {
	var (
		stats DashboardStats
		wg    sync.WaitGroup
		mu    sync.Mutex
		first error
	)

	run := func(fn func() error) {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				if first == nil {
					first = err
				}
				mu.Unlock()
			}
		}
		if err := statsPool.SubmitWait(task); err != nil {
			wg.Done()
			mu.Lock()
			if first == nil {
				first = err
			}
			mu.Unlock()
		}
	}

	cutoff := time.Now().AddDate(0, 0, -7)
	run(func() (err error) { stats.Products, err = s.products.Count(); return })
	run(func() (err error) { stats.Orders, err = s.orders.Count(); return })
	run(func() (err error) { stats.Users, err = s.users.Count(); return })
	run(func() (err error) { stats.Revenue, err = s.orders.Revenue(); return })
	run(func() (err error) { stats.SevenDay, err = s.orders.RevenueSince(cutoff); return })
	wg.Wait()

	if first != nil {
		return DashboardStats{}, first
	}
	if stats.SevenDay == nil {
		stats.SevenDay = []repositories.DailyRevenue{}
	}
	return stats, nil
}
