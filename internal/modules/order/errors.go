package order

import "errors"

var ErrRestaurantNotFound = errors.New("restaurant not found")
