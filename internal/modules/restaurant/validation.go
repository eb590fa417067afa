package restaurant

import (
	"net/http"
	"strings"

	"restaurantapi/internal/domain"
	"restaurantapi/internal/pkg/metrics"
	"restaurantapi/internal/pkg/response"
	"restaurantapi/internal/pkg/upload"
	"restaurantapi/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

const requestContextKey = "restaurant_request"

var imageFields = []string{"logo", "heroImage"}

// Validation checks restaurant payloads before they reach the controller.
// It runs after the upload step, so a rejected request may leave the files
// it carried in the upload directory.
type Validation struct {
	categories CategoryChecker
}

func NewValidation(categories CategoryChecker) *Validation {
	return &Validation{categories: categories}
}

func (v *Validation) Create() gin.HandlerFunc { return v.check }

func (v *Validation) Update() gin.HandlerFunc { return v.check }

func (v *Validation) check(c *gin.Context) {
	var req RestaurantRequest
	if err := c.ShouldBind(&req); err != nil {
		v.reject(c, http.StatusBadRequest, "Invalid request body", map[string]string{"_": err.Error()})
		return
	}

	details := validator.Validate(req)
	if details == nil {
		details = map[string]string{}
	}
	if req.UserID != nil {
		details["user_id"] = "forbidden"
	}
	if req.Status != "" && !domain.RestaurantStatus(req.Status).Valid() {
		details["status"] = "oneof"
	}
	for _, field := range imageFields {
		if f, ok := upload.FileFor(c, field); ok && !strings.HasPrefix(f.MimeType, "image/") {
			details[field] = "image"
		}
	}

	if _, bad := details["restaurant_category_id"]; !bad && req.RestaurantCategoryID > 0 {
		exists, err := v.categories.RestaurantCategoryExists(c.Request.Context(), req.RestaurantCategoryID)
		if err != nil {
			_ = c.Error(err)
			metrics.GateRejections.WithLabelValues("validation", "INTERNAL_ERROR").Inc()
			response.Abort(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to validate restaurant category")
			return
		}
		if !exists {
			details["restaurant_category_id"] = "exists"
		}
	}

	if len(details) > 0 {
		v.reject(c, http.StatusBadRequest, "Invalid restaurant data", details)
		return
	}

	c.Set(requestContextKey, &req)
	c.Next()
}

func (v *Validation) reject(c *gin.Context, status int, message string, details map[string]string) {
	metrics.GateRejections.WithLabelValues("validation", "VALIDATION_ERROR").Inc()
	response.AbortWithDetails(c, status, "VALIDATION_ERROR", message, details)
}

func validatedRequest(c *gin.Context) (*RestaurantRequest, bool) {
	v, ok := c.Get(requestContextKey)
	if !ok {
		return nil, false
	}
	req, ok := v.(*RestaurantRequest)
	return req, ok
}

func uploadedImages(c *gin.Context) Images {
	var images Images
	if f, ok := upload.FileFor(c, "logo"); ok {
		images.Logo = f.URL
	}
	if f, ok := upload.FileFor(c, "heroImage"); ok {
		images.HeroImage = f.URL
	}
	return images
}
