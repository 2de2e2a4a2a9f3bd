package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "auction"

// Registry is the process-wide metrics registry. Modules register their collectors on it.
type Registry struct {
	*prometheus.Registry

	requestDuration   *prometheus.HistogramVec
	idempotentReplays prometheus.Counter
}

func New() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests by route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
	idempotentReplays := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotent_replays_total",
		Help:      "Number of responses replayed for a repeated idempotency key.",
	})
	reg.MustRegister(requestDuration, idempotentReplays)

	return &Registry{
		Registry:          reg,
		requestDuration:   requestDuration,
		idempotentReplays: idempotentReplays,
	}
}

// Namespace is the metric namespace shared by every collector of this service.
func Namespace() string {
	return namespace
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{}))
}

// Middleware observes the duration of every request.
func (r *Registry) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else if status < fiber.StatusBadRequest {
				status = fiber.StatusInternalServerError
			}
		}
		r.requestDuration.
			WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
		return err //nolint:wrapcheck
	}
}

// ObserveReplay counts a replayed idempotent response. It fits idempotency.Config.OnReplay.
func (r *Registry) ObserveReplay(*fiber.Ctx) {
	r.idempotentReplays.Inc()
}
