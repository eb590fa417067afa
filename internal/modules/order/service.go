package order

import (
	"context"
	"fmt"
	"time"

	"restaurantapi/internal/domain"
)

type Service struct {
	orders      OrderRepositoryInterface
	restaurants RestaurantChecker
	now         func() time.Time
}

func NewService(orders OrderRepositoryInterface, restaurants RestaurantChecker) *Service {
	return &Service{orders: orders, restaurants: restaurants, now: time.Now}
}

func (s *Service) ensureRestaurant(ctx context.Context, restaurantID int64) error {
	ok, err := s.restaurants.Exists(ctx, restaurantID)
	if err != nil {
		return fmt.Errorf("check restaurant %d: %w", restaurantID, err)
	}
	if !ok {
		return ErrRestaurantNotFound
	}
	return nil
}

// IndexRestaurant returns the restaurant's orders, newest first, with their
// lifecycle status filled in.
func (s *Service) IndexRestaurant(ctx context.Context, restaurantID int64) ([]domain.Order, error) {
	if err := s.ensureRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}

	orders, err := s.orders.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	for i := range orders {
		orders[i].Status = orders[i].DeriveStatus()
	}
	return orders, nil
}

func (s *Service) Analytics(ctx context.Context, restaurantID int64) (*Analytics, error) {
	if err := s.ensureRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)

	a := &Analytics{RestaurantID: restaurantID}
	var err error

	if a.NumYesterdayOrders, err = s.orders.CountCreatedBetween(ctx, restaurantID, yesterday, today); err != nil {
		return nil, fmt.Errorf("count yesterday orders: %w", err)
	}
	if a.NumPendingOrders, err = s.orders.CountPending(ctx, restaurantID); err != nil {
		return nil, fmt.Errorf("count pending orders: %w", err)
	}
	if a.NumDeliveredTodayOrders, err = s.orders.CountDeliveredSince(ctx, restaurantID, today); err != nil {
		return nil, fmt.Errorf("count delivered orders: %w", err)
	}
	if a.InvoicedToday, err = s.orders.SumDeliveredSince(ctx, restaurantID, today); err != nil {
		return nil, fmt.Errorf("sum invoiced today: %w", err)
	}

	return a, nil
}
