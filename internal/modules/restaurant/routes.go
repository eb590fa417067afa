package restaurant

import (
	"restaurantapi/internal/domain"
	"restaurantapi/internal/middleware"
	"restaurantapi/internal/pkg/upload"

	"github.com/gin-gonic/gin"
)

type OrdersController interface {
	IndexRestaurant(c *gin.Context)
	Analytics(c *gin.Context)
}

type ProductsController interface {
	IndexRestaurant(c *gin.Context)
}

// Routes holds everything the restaurant route table composes.
type Routes struct {
	Restaurants *Handler
	Validation  *Validation
	Orders      OrdersController
	Products    ProductsController
	Upload      *upload.Handler

	Auth      gin.HandlerFunc
	Ownership gin.HandlerFunc

	// EnforceAuth closes the routes that historically shipped without gates
	// (create, destroy, orders, analytics).
	EnforceAuth bool
}

// RegisterRoutes wires the restaurant endpoints. Handler order inside each
// chain is part of the contract: identity, role, ownership, upload,
// validation, then the controller.
func RegisterRoutes(r gin.IRouter, rt Routes) {
	images := rt.Upload.Fields(
		upload.Field{Name: "logo", MaxCount: 1},
		upload.Field{Name: "heroImage", MaxCount: 1},
	)
	isOwner := middleware.RequireRole(string(domain.RoleOwner))

	var signedIn, owned []gin.HandlerFunc
	if rt.EnforceAuth {
		signedIn = []gin.HandlerFunc{rt.Auth, isOwner}
		owned = []gin.HandlerFunc{rt.Auth, isOwner, rt.Ownership}
	}

	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("", rt.Restaurants.Index)
		restaurants.POST("", chain(signedIn, images, rt.Validation.Create(), rt.Restaurants.Create)...)

		restaurants.GET("/:restaurantId", rt.Restaurants.Show)
		restaurants.PUT("/:restaurantId",
			rt.Auth,
			isOwner,
			rt.Ownership,
			images,
			rt.Validation.Update(),
			rt.Restaurants.Update,
		)
		restaurants.DELETE("/:restaurantId", chain(owned, rt.Restaurants.Destroy)...)

		restaurants.GET("/:restaurantId/orders", chain(owned, rt.Orders.IndexRestaurant)...)
		restaurants.GET("/:restaurantId/products", rt.Products.IndexRestaurant)
		restaurants.GET("/:restaurantId/analytics", chain(owned, rt.Orders.Analytics)...)
	}
}

// OpenRoutes lists the endpoints served without authentication gates for
// the given enforcement setting, beyond the public reads.
func OpenRoutes(enforceAuth bool) []string {
	if enforceAuth {
		return nil
	}
	return []string{
		"POST /restaurants",
		"DELETE /restaurants/:restaurantId",
		"GET /restaurants/:restaurantId/orders",
		"GET /restaurants/:restaurantId/analytics",
	}
}

func chain(gates []gin.HandlerFunc, handlers ...gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(gates)+len(handlers))
	out = append(out, gates...)
	return append(out, handlers...)
}
