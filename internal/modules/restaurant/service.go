package restaurant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurantapi/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	restaurants RestaurantRepositoryInterface
	orders      OrderCounter
}

func NewService(restaurants RestaurantRepositoryInterface, orders OrderCounter) *Service {
	return &Service{restaurants: restaurants, orders: orders}
}

func (s *Service) List(ctx context.Context) ([]domain.Restaurant, error) {
	restaurants, err := s.restaurants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	if restaurants == nil {
		restaurants = []domain.Restaurant{}
	}
	return restaurants, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Restaurant, error) {
	restaurant, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("get restaurant %d: %w", id, err)
	}
	return restaurant, nil
}

// Create stores a new restaurant owned by ownerID. New restaurants start
// offline unless the request names a status.
func (s *Service) Create(ctx context.Context, ownerID int64, req RestaurantRequest, images Images) (*domain.Restaurant, error) {
	restaurant := &domain.Restaurant{
		UserID: ownerID,
		Status: domain.RestaurantOffline,
	}
	apply(restaurant, req, images)

	if err := s.restaurants.Create(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("create restaurant: %w", err)
	}

	return s.Get(ctx, restaurant.ID)
}

func (s *Service) Update(ctx context.Context, id int64, req RestaurantRequest, images Images) (*domain.Restaurant, error) {
	restaurant, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(restaurant, req, images)

	if err := s.restaurants.Update(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("update restaurant %d: %w", id, err)
	}

	return s.Get(ctx, id)
}

// Delete soft deletes the restaurant. Restaurants with orders still in
// flight are kept.
func (s *Service) Delete(ctx context.Context, id int64) error {
	pending, err := s.orders.CountUndelivered(ctx, id)
	if err != nil {
		return fmt.Errorf("count orders for restaurant %d: %w", id, err)
	}
	if pending > 0 {
		return ErrRestaurantHasOrders
	}

	deleted, err := s.restaurants.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete restaurant %d: %w", id, err)
	}
	if !deleted {
		return ErrRestaurantNotFound
	}
	return nil
}

func apply(r *domain.Restaurant, req RestaurantRequest, images Images) {
	r.Name = strings.TrimSpace(req.Name)
	r.Description = req.Description
	r.Address = strings.TrimSpace(req.Address)
	r.PostalCode = strings.TrimSpace(req.PostalCode)
	r.URL = req.URL
	r.Email = req.Email
	r.Phone = req.Phone
	r.RestaurantCategoryID = req.RestaurantCategoryID
	r.RestaurantCategory = nil
	if req.ShippingCosts != nil {
		r.ShippingCosts = decimal.NewFromFloat(*req.ShippingCosts).Round(2)
	}
	if req.Status != "" {
		r.Status = domain.RestaurantStatus(req.Status)
	}
	if images.Logo != "" {
		r.Logo = images.Logo
	}
	if images.HeroImage != "" {
		r.HeroImage = images.HeroImage
	}
}
