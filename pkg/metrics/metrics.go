// Package metrics expone métricas Prometheus del servicio: peticiones HTTP y estado del pool.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	SubsystemHTTP = "http"
	SubsystemDB   = "db"
)

// Metrics registro propio (no el global) para poder instanciarlo en tests.
type Metrics struct {
	registry  *prometheus.Registry
	namespace string
	labels    prometheus.Labels

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New crea el registro con métricas de proceso/Go y las de HTTP.
func New(namespace, env string) *Metrics {
	m := &Metrics{
		registry:  prometheus.NewRegistry(),
		namespace: namespace,
		labels:    prometheus.Labels{"env": env},
	}
	m.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   SubsystemHTTP,
		Name:        "requests_total",
		Help:        "Peticiones HTTP atendidas.",
		ConstLabels: m.labels,
	}, []string{"method", "route", "status"})
	m.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   namespace,
		Subsystem:   SubsystemHTTP,
		Name:        "request_duration_seconds",
		Help:        "Latencia de las peticiones HTTP.",
		ConstLabels: m.labels,
		Buckets:     prometheus.DefBuckets,
	}, []string{"method", "route"})

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
	)
	return m
}

// Middleware cuenta y mide cada petición. route es la plantilla (/api/customers/:id),
// no la URL, para acotar la cardinalidad.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		m.requests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// RegisterPool publica el estado del pool de conexiones. stat se invoca en cada scrape.
func (m *Metrics) RegisterPool(stat func() *pgxpool.Stat) error {
	gauge := func(name, help string, fn func(s *pgxpool.Stat) float64) prometheus.Collector {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   m.namespace,
			Subsystem:   SubsystemDB,
			Name:        name,
			Help:        help,
			ConstLabels: m.labels,
		}, func() float64 { return fn(stat()) })
	}
	collectorsList := []prometheus.Collector{
		gauge("pool_total_conns", "Conexiones abiertas.", func(s *pgxpool.Stat) float64 { return float64(s.TotalConns()) }),
		gauge("pool_acquired_conns", "Conexiones en uso.", func(s *pgxpool.Stat) float64 { return float64(s.AcquiredConns()) }),
		gauge("pool_idle_conns", "Conexiones libres.", func(s *pgxpool.Stat) float64 { return float64(s.IdleConns()) }),
		gauge("pool_max_conns", "Tamaño máximo del pool.", func(s *pgxpool.Stat) float64 { return float64(s.MaxConns()) }),
		gauge("pool_empty_acquire_total", "Adquisiciones que esperaron por una conexión.", func(s *pgxpool.Stat) float64 { return float64(s.EmptyAcquireCount()) }),
	}
	for _, c := range collectorsList {
		if err := m.registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Handler expone /metrics sobre fiber.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// Registry acceso directo para tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
