package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductCategory struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Product struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name" gorm:"not null"`
	Description       string          `json:"description,omitempty"`
	Price             decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Image             string          `json:"image,omitempty"`
	Order             int             `json:"order" gorm:"column:sort_order"`
	Availability      bool            `json:"availability"`
	RestaurantID      int64           `json:"restaurant_id" gorm:"index"`
	ProductCategoryID int64           `json:"product_category_id"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	ProductCategory *ProductCategory `json:"product_category,omitempty"`
}
