package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type MetricsBuilder struct {
	namespace  string
	summaryVec *prometheus.SummaryVec
	activeReqs prometheus.Gauge
}

func NewMetricsBuilder(namespace string) *MetricsBuilder {
	return &MetricsBuilder{namespace: namespace}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	labels := []string{"method", "pattern", "status"}
	b.summaryVec = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: b.namespace,
		Subsystem: "http",
		Name:      "response_seconds",
		Help:      "HTTP 响应时间",
		Objectives: map[float64]float64{
			0.5:  0.05,
			0.9:  0.01,
			0.99: 0.001,
		},
	}, labels)
	b.activeReqs = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: b.namespace,
		Subsystem: "http",
		Name:      "active_requests",
		Help:      "正在处理的 HTTP 请求数",
	})
	prometheus.MustRegister(b.summaryVec, b.activeReqs)
	return func(ctx *gin.Context) {
		start := time.Now()
		b.activeReqs.Inc()
		defer func() {
			b.activeReqs.Dec()
			pattern := ctx.FullPath()
			// 没有匹配上路由
			if pattern == "" {
				pattern = "unknown"
			}
			b.summaryVec.WithLabelValues(ctx.Request.Method, pattern,
				strconv.Itoa(ctx.Writer.Status())).
				Observe(time.Since(start).Seconds())
		}()
		ctx.Next()
	}
}
