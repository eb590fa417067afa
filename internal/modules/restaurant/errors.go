package restaurant

import "errors"

var (
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrRestaurantHasOrders = errors.New("restaurant has undelivered orders")
)
