package repository

import (
	"context"
	"time"

	"restaurantapi/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

// ListByRestaurant returns the restaurant's orders, newest first.
func (r *OrderRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Order, error) {
	orders := []domain.Order{}
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) scope(ctx context.Context, restaurantID int64) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("restaurant_id = ?", restaurantID)
}

// CountCreatedBetween counts orders with from <= created_at < to.
func (r *OrderRepository) CountCreatedBetween(ctx context.Context, restaurantID int64, from, to time.Time) (int64, error) {
	var n int64
	err := r.scope(ctx, restaurantID).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&n).Error
	return n, err
}

// CountPending counts orders nobody has started yet.
func (r *OrderRepository) CountPending(ctx context.Context, restaurantID int64) (int64, error) {
	var n int64
	err := r.scope(ctx, restaurantID).
		Where("started_at IS NULL").
		Count(&n).Error
	return n, err
}

func (r *OrderRepository) CountDeliveredSince(ctx context.Context, restaurantID int64, since time.Time) (int64, error) {
	var n int64
	err := r.scope(ctx, restaurantID).
		Where("delivered_at >= ?", since).
		Count(&n).Error
	return n, err
}

// SumDeliveredSince totals the price of orders delivered since the given instant.
func (r *OrderRepository) SumDeliveredSince(ctx context.Context, restaurantID int64, since time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.scope(ctx, restaurantID).
		Select("SUM(price)").
		Where("delivered_at >= ?", since).
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// CountUndelivered counts orders still in flight.
func (r *OrderRepository) CountUndelivered(ctx context.Context, restaurantID int64) (int64, error) {
	var n int64
	err := r.scope(ctx, restaurantID).
		Where("delivered_at IS NULL").
		Count(&n).Error
	return n, err
}
