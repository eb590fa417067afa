package repository

import (
	"context"

	"restaurantapi/internal/domain"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) RestaurantCategoryExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.RestaurantCategory{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepository) CreateRestaurantCategory(ctx context.Context, c *domain.RestaurantCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CategoryRepository) CreateProductCategory(ctx context.Context, c *domain.ProductCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}
