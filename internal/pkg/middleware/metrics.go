package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// unmatchedRoute 没有匹配到路由的请求共用这个标签
const unmatchedRoute = "unmatched"

type MetricsBuilder struct {
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
	inflight prometheus.Gauge
}

// NewMetricsBuilder 在 reg 上注册 HTTP 指标，reg 为 nil 时使用默认的 Registerer
func NewMetricsBuilder(reg prometheus.Registerer) *MetricsBuilder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	labels := []string{"method", "route", "status_class"}
	return &MetricsBuilder{
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "jobportal",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			// 上传简历和导出 Excel 比普通接口慢，桶的上限放宽到 10s
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, labels),
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobportal",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, labels),
		inflight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "jobportal",
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests being served",
		}),
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		b.inflight.Inc()
		defer b.inflight.Dec()
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		class := statusClass(ctx.Writer.Status())
		b.duration.WithLabelValues(ctx.Request.Method, route, class).Observe(time.Since(start).Seconds())
		b.requests.WithLabelValues(ctx.Request.Method, route, class).Inc()
	}
}

// statusClass 200 -> 2xx
func statusClass(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return strconv.Itoa(code/100) + "xx"
}
