package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/fieldplan/tourplan/core/metrics"
)

// PromSink records planning events in Prometheus metrics.
type PromSink struct {
	runs     *prometheus.CounterVec
	visits   prometheus.Counter
	km       prometheus.Counter
	geocodes *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewPromSink registers planning metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. Already
// registered collectors are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_runs_total",
		Help: "Total number of planning runs",
	}, []string{"outcome"})
	visits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "plan_visits_total",
		Help: "Total number of scheduled visits",
	})
	km := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "plan_km_total",
		Help: "Total planned travel distance in km",
	})
	geocodes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geocode_requests_total",
		Help: "Total number of geocode resolutions",
	}, []string{"degraded"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "plan_run_duration_seconds",
		Help:    "Wall time of a full planning run",
		Buckets: prometheus.DefBuckets,
	})

	collectors := []prometheus.Collector{runs, visits, km, geocodes, duration}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			collectors[i] = are.ExistingCollector
		}
	}
	runs = collectors[0].(*prometheus.CounterVec)
	visits = collectors[1].(prometheus.Counter)
	km = collectors[2].(prometheus.Counter)
	geocodes = collectors[3].(*prometheus.CounterVec)
	duration = collectors[4].(prometheus.Histogram)

	return &PromSink{runs: runs, visits: visits, km: km, geocodes: geocodes, duration: duration}, nil
}

// RecordPlanRun increments run counters and observes the run duration.
func (s *PromSink) RecordPlanRun(ev coremetrics.PlanRunEvent) error {
	outcome := "complete"
	if ev.Unmatched > 0 {
		outcome = "partial"
	}
	s.runs.WithLabelValues(outcome).Inc()
	s.visits.Add(float64(ev.Visits))
	s.km.Add(ev.TotalKm)
	s.duration.Observe(ev.Duration.Seconds())
	return nil
}

// RecordGeocode counts resolutions by degradation.
func (s *PromSink) RecordGeocode(ev coremetrics.GeocodeEvent) error {
	s.geocodes.WithLabelValues(strconv.FormatBool(ev.Degraded)).Inc()
	return nil
}
