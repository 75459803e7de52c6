// Package metrics defines the observability events emitted by the planning
// pipeline and the sink interfaces that record them.
package metrics

import "time"

// PlanRunEvent summarises one completed planning run.
type PlanRunEvent struct {
	RunID     string
	Orders    int
	Matched   int
	Unmatched int
	Visits    int
	Degraded  int
	TotalKm   float64
	Duration  time.Duration
	Time      time.Time
}

// GeocodeEvent records a single address resolution.
type GeocodeEvent struct {
	Region   string
	Degraded bool
	Time     time.Time
}

// MetricsSink records planning events for observability purposes.
type MetricsSink interface {
	RecordPlanRun(ev PlanRunEvent) error
	RecordGeocode(ev GeocodeEvent) error
}

// Config selects which sinks are active.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPlanRun(PlanRunEvent) error { return nil }
func (NopSink) RecordGeocode(GeocodeEvent) error { return nil }
