package repository

import (
	"context"

	"restaurantapi/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Product, error) {
	products := []domain.Product{}
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Preload("ProductCategory").
		Order("sort_order ASC").
		Order("id ASC").
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}
