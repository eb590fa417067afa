package order

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)
	r := gin.New()
	r.GET("/restaurants/:restaurantId/orders", h.IndexRestaurant)
	r.GET("/restaurants/:restaurantId/analytics", h.Analytics)
	return r
}

func TestHandler_Analytics_UnknownRestaurant(t *testing.T) {
	restaurants := new(MockRestaurantChecker)
	restaurants.On("Exists", mock.Anything, int64(404)).Return(false, nil)
	r := newTestRouter(NewService(new(MockOrderRepository), restaurants))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/restaurants/404/analytics", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestHandler_Orders_InvalidID(t *testing.T) {
	r := newTestRouter(NewService(new(MockOrderRepository), new(MockRestaurantChecker)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/restaurants/abc/orders", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ID")
}

func TestHandler_Analytics_Body(t *testing.T) {
	orders := new(MockOrderRepository)
	restaurants := new(MockRestaurantChecker)
	restaurants.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	orders.On("CountCreatedBetween", mock.Anything, int64(1), mock.Anything, mock.Anything).Return(int64(1), nil)
	orders.On("CountPending", mock.Anything, int64(1)).Return(int64(0), nil)
	orders.On("CountDeliveredSince", mock.Anything, int64(1), mock.Anything).Return(int64(1), nil)
	orders.On("SumDeliveredSince", mock.Anything, int64(1), mock.Anything).Return(decimal.NewFromInt(12), nil)
	r := newTestRouter(NewService(orders, restaurants))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/restaurants/1/analytics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Analytics map[string]any `json:"analytics"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.EqualValues(t, 1, body.Data.Analytics["restaurant_id"])
	assert.EqualValues(t, 1, body.Data.Analytics["num_yesterday_orders"])
	assert.Equal(t, "12", body.Data.Analytics["invoiced_today"])
}
