package middleware

import (
	"strconv"
	"time"

	"gitcraft-go-server/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics 按匹配到的路由记录请求数和耗时
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched" // 404 路径不进入 label，避免基数膨胀
		}
		method := c.Request.Method

		collector.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		collector.HTTPDurationSec.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
