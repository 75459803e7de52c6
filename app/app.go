// Package app assembles the planning service from its configuration:
// logger, metrics sinks, geocoding pool and planner.
package app

import (
	"context"
	"fmt"

	"github.com/fieldplan/tourplan/config"
	"github.com/fieldplan/tourplan/core/geocode"
	"github.com/fieldplan/tourplan/core/logger"
	coremetrics "github.com/fieldplan/tourplan/core/metrics"
	"github.com/fieldplan/tourplan/core/planner"
	infralogger "github.com/fieldplan/tourplan/infra/logger"
	inframetrics "github.com/fieldplan/tourplan/infra/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// App bundles the wired components of one service instance.
type App struct {
	Planner *planner.Planner
	Log     logger.Logger

	cfg     *config.Config
	closers []func()
}

// New wires an App from the loaded configuration.
func New(cfg *config.Config) (*App, error) {
	log := infralogger.New("app")

	var sinks []coremetrics.MetricsSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := inframetrics.NewPromSink(prometheus.DefaultRegisterer)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	a := &App{cfg: cfg, Log: log}
	if cfg.Metrics.InfluxEnabled {
		sink := inframetrics.NewInfluxSinkWithFallback(cfg.Metrics)
		sinks = append(sinks, sink)
		if is, ok := sink.(*inframetrics.InfluxSink); ok {
			a.closers = append(a.closers, is.Close)
		}
	}
	var sink coremetrics.MetricsSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = inframetrics.NewMultiSink(sinks...)
	}

	resolver := &geocode.FallbackResolver{
		Provider: geocode.NewNominatimResolver(cfg.Geocode),
		Regional: config.RegionalCentroids(),
		National: config.NationalCentroid,
		Log:      infralogger.New("geocode"),
	}
	pool := geocode.NewPool(cfg.Geocode, resolver)

	plannerCfg, err := cfg.Planning.Build()
	if err != nil {
		return nil, fmt.Errorf("planning config: %w", err)
	}
	p, err := planner.New(plannerCfg, pool, infralogger.New("planner"), sink)
	if err != nil {
		return nil, err
	}
	a.Planner = p
	return a, nil
}

// StartMetricsServer exposes the Prometheus endpoint when enabled. It blocks
// until the context is cancelled.
func (a *App) StartMetricsServer(ctx context.Context) error {
	if !a.cfg.Metrics.PrometheusEnabled {
		return nil
	}
	return inframetrics.StartPromServer(ctx, a.cfg.Metrics.PrometheusPort)
}

// Close releases held resources.
func (a *App) Close() error {
	for _, f := range a.closers {
		f()
	}
	return nil
}
