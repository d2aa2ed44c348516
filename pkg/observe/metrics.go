package observe

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors the service exposes on /metrics.
type Metrics struct {
	Requests *prometheus.CounterVec
	Upstream *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_search_http_requests_total",
				Help: "Total HTTP requests by route, method and status.",
			},
			[]string{"route", "method", "status"},
		),
		Upstream: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_search_upstream_requests_total",
				Help: "Provider requests by endpoint and outcome.",
			},
			[]string{"endpoint", "outcome"},
		),
	}

	reg.MustRegister(m.Requests, m.Upstream)

	return m
}

// ObserveUpstream counts one provider call. A nil receiver is a no-op.
func (m *Metrics) ObserveUpstream(endpoint, outcome string) {
	if m == nil {
		return
	}
	m.Upstream.WithLabelValues(endpoint, outcome).Inc()
}

// Middleware counts every request by its matched route.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		m.Requests.WithLabelValues(route, c.Method(), strconv.Itoa(status)).Inc()

		return err
	}
}
