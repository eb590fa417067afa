package order

import "github.com/shopspring/decimal"

// Analytics summarises a restaurant's activity relative to the current day.
type Analytics struct {
	RestaurantID            int64           `json:"restaurant_id"`
	NumYesterdayOrders      int64           `json:"num_yesterday_orders"`
	NumPendingOrders        int64           `json:"num_pending_orders"`
	NumDeliveredTodayOrders int64           `json:"num_delivered_today_orders"`
	InvoicedToday           decimal.Decimal `json:"invoiced_today"`
}
