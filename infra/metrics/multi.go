package metrics

import (
	"errors"

	coremetrics "github.com/fieldplan/tourplan/core/metrics"
)

// MultiSink fans events out to several sinks, collecting all errors.
type MultiSink struct {
	sinks []coremetrics.MetricsSink
}

// NewMultiSink combines the given sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordPlanRun(ev coremetrics.PlanRunEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordPlanRun(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordGeocode(ev coremetrics.GeocodeEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordGeocode(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
