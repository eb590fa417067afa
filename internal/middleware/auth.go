package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"restaurantapi/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// JWTAuth requires a valid bearer token and exposes user_id and role to the
// rest of the chain.
func JWTAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			reject(c, "auth", http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Missing Authorization header")
			return
		}

		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			reject(c, "auth", http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
			return
		}

		tokenStr := strings.TrimSpace(parts[1])
		if tokenStr == "" {
			reject(c, "auth", http.StatusUnauthorized, "INVALID_TOKEN", "Empty token")
			return
		}

		claims, err := tokens.ValidateToken(tokenStr)
		if err != nil {
			reject(c, "auth", http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RestaurantOwnerLookup resolves the owning user of a restaurant.
type RestaurantOwnerLookup interface {
	GetOwnerID(ctx context.Context, restaurantID int64) (int64, error)
}

// OwnershipChecker provides middleware to verify resource ownership
type OwnershipChecker struct {
	restaurants RestaurantOwnerLookup
}

// NewOwnershipChecker creates a new ownership checker
func NewOwnershipChecker(restaurants RestaurantOwnerLookup) *OwnershipChecker {
	return &OwnershipChecker{restaurants: restaurants}
}

// CheckRestaurantOwnership verifies the user owns the restaurant.
// Expects the restaurant ID in URL param "restaurantId".
func (oc *OwnershipChecker) CheckRestaurantOwnership() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64(ContextUserID)
		if userID == 0 {
			reject(c, "ownership", http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}

		restaurantID, err := strconv.ParseInt(c.Param("restaurantId"), 10, 64)
		if err != nil || restaurantID <= 0 {
			reject(c, "ownership", http.StatusBadRequest, "INVALID_ID", "Invalid restaurant ID")
			return
		}

		ownerID, err := oc.restaurants.GetOwnerID(c.Request.Context(), restaurantID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				reject(c, "ownership", http.StatusNotFound, "NOT_FOUND", "Restaurant not found")
				return
			}
			_ = c.Error(err)
			reject(c, "ownership", http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load restaurant")
			return
		}

		if ownerID != userID {
			reject(c, "ownership", http.StatusForbidden, "NOT_OWNER", "You don't own this restaurant")
			return
		}

		c.Next()
	}
}
