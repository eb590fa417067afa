package restaurant

// RestaurantRequest is the body accepted by create and update. It binds from
// multipart form values or from JSON.
type RestaurantRequest struct {
	Name                 string   `form:"name" json:"name" validate:"required,max=255"`
	Description          string   `form:"description" json:"description" validate:"max=2000"`
	Address              string   `form:"address" json:"address" validate:"required,max=255"`
	PostalCode           string   `form:"postal_code" json:"postal_code" validate:"required,max=255"`
	URL                  string   `form:"url" json:"url" validate:"omitempty,url"`
	ShippingCosts        *float64 `form:"shipping_costs" json:"shipping_costs" validate:"required,gte=0"`
	Email                string   `form:"email" json:"email" validate:"omitempty,email"`
	Phone                string   `form:"phone" json:"phone" validate:"omitempty,min=9,max=15"`
	Status               string   `form:"status" json:"status"`
	RestaurantCategoryID int64    `form:"restaurant_category_id" json:"restaurant_category_id" validate:"required,gt=0"`

	// owner is taken from the token, never from the body
	UserID *int64 `form:"user_id" json:"user_id"`
}

// Images carries the public URLs of freshly uploaded files. Empty means unchanged.
type Images struct {
	Logo      string
	HeroImage string
}
