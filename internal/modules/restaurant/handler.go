package restaurant

import (
	"errors"
	"net/http"
	"strconv"

	"restaurantapi/internal/middleware"
	"restaurantapi/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Index godoc
// @Summary List restaurants
// @Tags Restaurants
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /restaurants [get]
func (h *Handler) Index(c *gin.Context) {
	restaurants, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"restaurants": restaurants})
}

// Create godoc
// @Summary Create a restaurant
// @Tags Restaurants
// @Accept multipart/form-data,json
// @Produce json
// @Param logo formData file false "Logo image"
// @Param heroImage formData file false "Hero image"
// @Success 201 {object} map[string]interface{}
// @Failure 400,401,403,500 {object} map[string]interface{}
// @Router /restaurants [post]
func (h *Handler) Create(c *gin.Context) {
	req, ok := validatedRequest(c)
	if !ok {
		handleError(c, errors.New("restaurant request was not validated"))
		return
	}

	ownerID := c.GetInt64(middleware.ContextUserID)
	restaurant, err := h.service.Create(c.Request.Context(), ownerID, *req, uploadedImages(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"restaurant": restaurant})
}

// Show godoc
// @Summary Get a restaurant with its products
// @Tags Restaurants
// @Produce json
// @Param restaurantId path integer true "Restaurant ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404 {object} map[string]interface{}
// @Router /restaurants/{restaurantId} [get]
func (h *Handler) Show(c *gin.Context) {
	id, ok := RestaurantID(c)
	if !ok {
		return
	}

	restaurant, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"restaurant": restaurant})
}

// Update godoc
// @Summary Update a restaurant (owner only)
// @Tags Restaurants
// @Accept multipart/form-data,json
// @Produce json
// @Security BearerAuth
// @Param restaurantId path integer true "Restaurant ID"
// @Param logo formData file false "Logo image"
// @Param heroImage formData file false "Hero image"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403,404,500 {object} map[string]interface{}
// @Router /restaurants/{restaurantId} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := RestaurantID(c)
	if !ok {
		return
	}

	req, ok := validatedRequest(c)
	if !ok {
		handleError(c, errors.New("restaurant request was not validated"))
		return
	}

	restaurant, err := h.service.Update(c.Request.Context(), id, *req, uploadedImages(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"restaurant": restaurant})
}

// Destroy godoc
// @Summary Delete a restaurant
// @Tags Restaurants
// @Produce json
// @Param restaurantId path integer true "Restaurant ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403,404,409 {object} map[string]interface{}
// @Router /restaurants/{restaurantId} [delete]
func (h *Handler) Destroy(c *gin.Context) {
	id, ok := RestaurantID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Successfully deleted"})
}

// RestaurantID parses the :restaurantId path parameter, writing a 400 when
// it is not a positive integer.
func RestaurantID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("restaurantId"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid restaurant ID")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRestaurantNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Restaurant not found")
	case errors.Is(err, ErrRestaurantHasOrders):
		response.Error(c, http.StatusConflict, "RESTAURANT_HAS_ORDERS", "Restaurant still has undelivered orders")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
