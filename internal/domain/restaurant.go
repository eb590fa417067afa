package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RestaurantStatus string

const (
	RestaurantOnline            RestaurantStatus = "online"
	RestaurantOffline           RestaurantStatus = "offline"
	RestaurantClosed            RestaurantStatus = "closed"
	RestaurantTemporarilyClosed RestaurantStatus = "temporarily closed"
)

func (s RestaurantStatus) Valid() bool {
	switch s {
	case RestaurantOnline, RestaurantOffline, RestaurantClosed, RestaurantTemporarilyClosed:
		return true
	}
	return false
}

type RestaurantCategory struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Restaurant struct {
	ID                    int64            `json:"id"`
	Name                  string           `json:"name" gorm:"not null"`
	Description           string           `json:"description,omitempty"`
	Address               string           `json:"address" gorm:"not null"`
	PostalCode            string           `json:"postal_code" gorm:"not null"`
	URL                   string           `json:"url,omitempty"`
	ShippingCosts         decimal.Decimal  `json:"shipping_costs" gorm:"type:decimal(10,2);not null"`
	AverageServiceMinutes *float64         `json:"average_service_minutes,omitempty"`
	Email                 string           `json:"email,omitempty"`
	Phone                 string           `json:"phone,omitempty"`
	Logo                  string           `json:"logo,omitempty"`
	HeroImage             string           `json:"hero_image,omitempty"`
	Status                RestaurantStatus `json:"status" gorm:"not null"`
	RestaurantCategoryID  int64            `json:"restaurant_category_id" gorm:"index"`
	UserID                int64            `json:"user_id" gorm:"index"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
	DeletedAt             *time.Time       `json:"-" gorm:"index"`

	// Relations (loaded on demand)
	RestaurantCategory *RestaurantCategory `json:"restaurant_category,omitempty"`
	Products           []Product           `json:"products,omitempty"`
}
