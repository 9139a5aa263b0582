package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SimulationCollector объединяет метрики Prometheus для построения кривых
// и HTTP API сервиса.
type SimulationCollector struct {
	gatherer prometheus.Gatherer

	CurvesBuilt    *prometheus.CounterVec
	MotorsExcluded prometheus.Counter
	BuildDuration  prometheus.Histogram
	ActiveSessions prometheus.Gauge
	HTTPRequests   *prometheus.CounterVec
}

// NewSimulationCollector регистрирует метрики в переданном реестре
// (глобальном, если reg == nil).
func NewSimulationCollector(reg prometheus.Registerer) (*SimulationCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	built, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stepper_curves_built_total",
		Help: "Total number of torque curve sets built, labeled by trigger (request, session, recompute).",
	}, []string{"trigger"}), "stepper_curves_built_total")
	if err != nil {
		return nil, err
	}

	excluded, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stepper_motors_excluded_total",
		Help: "Total number of motors skipped because of invalid data.",
	}), "stepper_motors_excluded_total")
	if err != nil {
		return nil, err
	}

	duration, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "stepper_curve_build_duration_seconds",
		Help:    "Time spent building one curve set.",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	}), "stepper_curve_build_duration_seconds")
	if err != nil {
		return nil, err
	}

	sessions, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "stepper_active_sessions",
		Help: "Current number of simulation sessions.",
	}), "stepper_active_sessions")
	if err != nil {
		return nil, err
	}

	requests, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stepper_http_requests_total",
		Help: "Total number of handled HTTP requests, labeled by method, route and status.",
	}, []string{"method", "route", "status"}), "stepper_http_requests_total")
	if err != nil {
		return nil, err
	}

	return &SimulationCollector{
		gatherer:       gatherer,
		CurvesBuilt:    built,
		MotorsExcluded: excluded,
		BuildDuration:  duration,
		ActiveSessions: sessions,
		HTTPRequests:   requests,
	}, nil
}

// ObserveBuild учитывает одно построение кривых.
func (c *SimulationCollector) ObserveBuild(trigger string, excluded int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.CurvesBuilt.WithLabelValues(trigger).Inc()
	c.MotorsExcluded.Add(float64(excluded))
	c.BuildDuration.Observe(elapsed.Seconds())
}

// SetActiveSessions обновляет число сессий.
func (c *SimulationCollector) SetActiveSessions(n int) {
	if c == nil {
		return
	}
	c.ActiveSessions.Set(float64(n))
}

// ObserveRequest учитывает обработанный HTTP запрос.
func (c *SimulationCollector) ObserveRequest(method, route string, status int) {
	if c == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	c.HTTPRequests.WithLabelValues(method, route, fmt.Sprint(status)).Inc()
}

// Handler отдает готовый обработчик /metrics.
func (c *SimulationCollector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
