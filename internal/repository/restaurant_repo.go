package repository

import (
	"context"
	"time"

	"restaurantapi/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// List returns every live restaurant grouped by category.
func (r *RestaurantRepository) List(ctx context.Context) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Preload("RestaurantCategory").
		Order("restaurant_category_id ASC").
		Order("id ASC").
		Find(&restaurants).Error
	return restaurants, err
}

// GetByID fetches a restaurant with its category and products.
func (r *RestaurantRepository) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant

	err := r.db.WithContext(ctx).
		Where("restaurants.id = ? AND deleted_at IS NULL", id).
		Preload("RestaurantCategory").
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC").Order("id ASC")
		}).
		Preload("Products.ProductCategory").
		First(&restaurant).Error
	if err != nil {
		return nil, err
	}

	return &restaurant, nil
}

// GetOwnerID returns the owning user without loading relations.
func (r *RestaurantRepository) GetOwnerID(ctx context.Context, id int64) (int64, error) {
	var restaurant domain.Restaurant
	err := r.db.WithContext(ctx).
		Select("id", "user_id").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&restaurant).Error
	if err != nil {
		return 0, err
	}
	return restaurant.UserID, nil
}

func (r *RestaurantRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Restaurant{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Count(&count).Error
	return count > 0, err
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(restaurant).Error
}

// Update writes the restaurant columns; loaded relations are left untouched.
func (r *RestaurantRepository) Update(ctx context.Context, restaurant *domain.Restaurant) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(restaurant).Error
}

// Delete soft deletes a restaurant (sets deleted_at)
func (r *RestaurantRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Restaurant{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	return res.RowsAffected > 0, res.Error
}
