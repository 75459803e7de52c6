package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/fieldplan/tourplan/core/metrics"
)

func TestPromSinkRecordPlanRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	ev := coremetrics.PlanRunEvent{
		RunID:    "run-1",
		Orders:   10,
		Matched:  8,
		Visits:   8,
		TotalKm:  420.5,
		Duration: 3 * time.Second,
		Time:     time.Now(),
	}
	if err := sink.RecordPlanRun(ev); err != nil {
		t.Fatalf("record: %v", err)
	}
	if got := testutil.ToFloat64(sink.visits); got != 8 {
		t.Fatalf("visits counter = %v", got)
	}
	if got := testutil.ToFloat64(sink.km); got != 420.5 {
		t.Fatalf("km counter = %v", got)
	}
}

func TestPromSinkRecordGeocode(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := sink.RecordGeocode(coremetrics.GeocodeEvent{Region: "Lazio", Degraded: i == 0}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if got := testutil.ToFloat64(sink.geocodes.WithLabelValues("true")); got != 1 {
		t.Fatalf("degraded counter = %v", got)
	}
	if got := testutil.ToFloat64(sink.geocodes.WithLabelValues("false")); got != 2 {
		t.Fatalf("ok counter = %v", got)
	}
}

func TestPromSinkReregister(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSink(reg); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := NewPromSink(reg); err != nil {
		t.Fatalf("second registration must reuse collectors: %v", err)
	}
}

func TestMultiSinkFanOut(t *testing.T) {
	reg := prometheus.NewRegistry()
	prom, err := NewPromSink(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	multi := NewMultiSink(coremetrics.NopSink{}, prom)
	if err := multi.RecordPlanRun(coremetrics.PlanRunEvent{Visits: 2}); err != nil {
		t.Fatalf("multi record: %v", err)
	}
	if got := testutil.ToFloat64(prom.visits); got != 2 {
		t.Fatalf("fan-out missed prom sink: %v", got)
	}
}
