package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gitcraft"

// Collector 服务的 Prometheus 指标集合
// 启动时创建一次，传给需要记录指标的组件
type Collector struct {
	Reconcile       *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec
	HTTPDurationSec *prometheus.HistogramVec
}

// New 创建指标并注册到 reg
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		Reconcile: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Subsystem: "user", Name: "reconcile_total", Help: "User reconciliation operations by outcome."},
			[]string{"operation", "outcome"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests by route and status."},
			[]string{"method", "route", "status"},
		),
		HTTPDurationSec: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request latency.", Buckets: prometheus.DefBuckets},
			[]string{"method", "route"},
		),
	}
	reg.MustRegister(c.Reconcile, c.HTTPRequests, c.HTTPDurationSec)
	return c
}

// Observe 实现 usecase.OutcomeRecorder
func (c *Collector) Observe(operation, outcome string) {
	c.Reconcile.WithLabelValues(operation, outcome).Inc()
}
