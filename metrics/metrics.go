package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AirHelp/numstats/parser"
	"github.com/AirHelp/numstats/stat"
)

const (
	namespace = "numstats"

	unmatchedRoute = "unmatched"

	resultOK           = "ok"
	resultInvalidInput = "invalid_input"
	resultError        = "error"
)

type Metrics struct {
	registry *prometheus.Registry

	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	computations *prometheus.CounterVec
}

func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests served by the statistics API.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests served by the statistics API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "computations_total",
			Help:      "Number of statistic computations by operation and result.",
		}, []string{"operation", "result"}),
	}

	cs := []prometheus.Collector{
		m.requests,
		m.duration,
		m.computations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}

	for _, c := range cs {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) ObserveComputation(op stat.Operation, err error) {
	result := resultOK

	switch {
	case err == nil:
	case errors.Is(err, parser.ErrInvalidInput):
		result = resultInvalidInput
	default:
		result = resultError
	}

	m.computations.WithLabelValues(string(op), result).Inc()
}

// Middleware counts requests per registered route. Errors are handed to the
// echo error handler first so the final status is known.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			route := c.Path()

			if route == "" || status == http.StatusNotFound || status == http.StatusMethodNotAllowed {
				route = unmatchedRoute
			}

			m.requests.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()
			m.duration.WithLabelValues(req.Method, route).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}

func (m *Metrics) HTTPHandler() http.Handler {
	return promhttp.InstrumentMetricHandler(m.registry, promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
