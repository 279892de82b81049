package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	BadRequests     *prometheus.CounterVec
	MessagesPosted  prometheus.Counter
	FollowRequests  prometheus.Counter
	LikeToggles     prometheus.Counter
	RequestDuration *prometheus.HistogramVec
}

func InitMetrics() *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by path and status",
			},
			[]string{"path", "status"},
		),
		BadRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_bad_requests_total",
				Help: "Total number of 4xx HTTP responses by path",
			},
			[]string{"path"},
		),
		MessagesPosted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "messages_posted_total",
				Help: "Total number of messages successfully posted",
			},
		),
		FollowRequests: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "follow_requests_total",
				Help: "Total number of successful follow requests",
			},
		),
		LikeToggles: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "like_toggles_total",
				Help: "Total number of successful like toggles",
			},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency by path",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path"},
		),
	}

	prometheus.MustRegister(m.RequestsTotal)
	prometheus.MustRegister(m.BadRequests)
	prometheus.MustRegister(m.MessagesPosted)
	prometheus.MustRegister(m.FollowRequests)
	prometheus.MustRegister(m.LikeToggles)
	prometheus.MustRegister(m.RequestDuration)

	return m
}

// Collect counts every response by route template and status class.
func (m *Metrics) Collect() gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := prometheus.NewTimer(m.RequestDuration.WithLabelValues(c.FullPath()))
		c.Next()
		timer.ObserveDuration()

		status := c.Writer.Status()
		m.RequestsTotal.WithLabelValues(c.FullPath(), strconv.Itoa(status)).Inc()
		if status >= 400 && status < 500 {
			m.BadRequests.WithLabelValues(c.FullPath()).Inc()
		}
	}
}
