package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "restaurants"

var (
	// GateRejections counts requests stopped by a middleware before the controller ran.
	GateRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_rejections_total",
		Help:      "Requests rejected by an authorization, upload or validation gate.",
	}, []string{"gate", "code"})

	Uploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Uploaded files by form field and result.",
	}, []string{"field", "result"})
)

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
