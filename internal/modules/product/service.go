package product

import (
	"context"
	"errors"
	"fmt"

	"restaurantapi/internal/domain"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

type ProductRepositoryInterface interface {
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Product, error)
}

type RestaurantChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	products    ProductRepositoryInterface
	restaurants RestaurantChecker
}

func NewService(products ProductRepositoryInterface, restaurants RestaurantChecker) *Service {
	return &Service{products: products, restaurants: restaurants}
}

// IndexRestaurant returns the restaurant's products in menu order.
func (s *Service) IndexRestaurant(ctx context.Context, restaurantID int64) ([]domain.Product, error) {
	ok, err := s.restaurants.Exists(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("check restaurant %d: %w", restaurantID, err)
	}
	if !ok {
		return nil, ErrRestaurantNotFound
	}

	products, err := s.products.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}
