package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderInProcess OrderStatus = "in process"
	OrderSent      OrderStatus = "sent"
	OrderDelivered OrderStatus = "delivered"
)

type Order struct {
	ID            int64           `json:"id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	StartedAt     *time.Time      `json:"started_at,omitempty"`
	SentAt        *time.Time      `json:"sent_at,omitempty"`
	DeliveredAt   *time.Time      `json:"delivered_at,omitempty"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Address       string          `json:"address"`
	ShippingCosts decimal.Decimal `json:"shipping_costs" gorm:"type:decimal(10,2);not null"`
	RestaurantID  int64           `json:"restaurant_id" gorm:"index"`
	UserID        int64           `json:"user_id" gorm:"index"`

	Status OrderStatus `json:"status" gorm:"-"`
}

// DeriveStatus computes the lifecycle state from the recorded timestamps.
func (o Order) DeriveStatus() OrderStatus {
	switch {
	case o.DeliveredAt != nil:
		return OrderDelivered
	case o.SentAt != nil:
		return OrderSent
	case o.StartedAt != nil:
		return OrderInProcess
	default:
		return OrderPending
	}
}
