package product

import (
	"errors"
	"net/http"

	"restaurantapi/internal/modules/restaurant"
	"restaurantapi/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// IndexRestaurant handles GET /restaurants/:restaurantId/products
func (h *Handler) IndexRestaurant(c *gin.Context) {
	id, ok := restaurant.RestaurantID(c)
	if !ok {
		return
	}

	products, err := h.service.IndexRestaurant(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrRestaurantNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Restaurant not found")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"products": products})
}
