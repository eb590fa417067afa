package restaurant

import (
	"context"

	"restaurantapi/internal/domain"
)

type RestaurantRepositoryInterface interface {
	List(ctx context.Context) ([]domain.Restaurant, error)
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	Create(ctx context.Context, r *domain.Restaurant) error
	Update(ctx context.Context, r *domain.Restaurant) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type OrderCounter interface {
	CountUndelivered(ctx context.Context, restaurantID int64) (int64, error)
}

type CategoryChecker interface {
	RestaurantCategoryExists(ctx context.Context, id int64) (bool, error)
}
