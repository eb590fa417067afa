package order

import (
	"context"
	"time"

	"restaurantapi/internal/domain"

	"github.com/shopspring/decimal"
)

type OrderRepositoryInterface interface {
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Order, error)
	CountCreatedBetween(ctx context.Context, restaurantID int64, from, to time.Time) (int64, error)
	CountPending(ctx context.Context, restaurantID int64) (int64, error)
	CountDeliveredSince(ctx context.Context, restaurantID int64, since time.Time) (int64, error)
	SumDeliveredSince(ctx context.Context, restaurantID int64, since time.Time) (decimal.Decimal, error)
}

type RestaurantChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
