// Package planner composes matching, geocoding, clustering, tour
// construction, assignment and daily scheduling into a single planning run.
// It is the only entry point external collaborators use.
package planner

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fieldplan/tourplan/core/assign"
	"github.com/fieldplan/tourplan/core/cluster"
	"github.com/fieldplan/tourplan/core/geocode"
	"github.com/fieldplan/tourplan/core/logger"
	"github.com/fieldplan/tourplan/core/match"
	"github.com/fieldplan/tourplan/core/metrics"
	"github.com/fieldplan/tourplan/core/model"
	"github.com/fieldplan/tourplan/core/schedule"
	"github.com/fieldplan/tourplan/core/tour"
)

// Planner runs the full optimization pipeline. Each run is an independent
// synchronous batch computation; only geocoding touches the network.
type Planner struct {
	cfg  Config
	pool *geocode.Pool
	log  logger.Logger
	sink metrics.MetricsSink
}

// New creates a Planner. The pool may not be nil; use a pool backed by a nil
// provider to plan offline with regional centroids only.
func New(cfg Config, pool *geocode.Pool, log logger.Logger, sink metrics.MetricsSink) (*Planner, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("planner config: %w", err)
	}
	if pool == nil {
		return nil, fmt.Errorf("geocode pool is required")
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Planner{cfg: cfg, pool: pool, log: log, sink: sink}, nil
}

// GeneratePlan reconciles orders against the customer master data and turns
// the matches into a dated visit schedule. Unmatched orders are reported in
// the plan, never guessed at. start selects the first candidate working day;
// a zero start means today.
//
// Only configuration and validation problems abort the run. Geocoding
// degradations and unmatched orders are accumulated into the plan report.
func (p *Planner) GeneratePlan(ctx context.Context, customers []model.Customer, orders []model.Order, start time.Time) (*model.Plan, error) {
	began := time.Now()
	if start.IsZero() {
		start = began
	}

	for _, c := range customers {
		if err := c.Validate(p.cfg.MinWorkHours, p.cfg.MaxWorkHours); err != nil {
			return nil, fmt.Errorf("customer master data: %w", err)
		}
	}

	visits, unmatched := match.Match(customers, orders)
	p.log.Infof("matched %d of %d orders (%d unmatched)", len(visits), len(orders), len(unmatched))
	if len(visits) == 0 {
		return nil, fmt.Errorf("no orders matched the customer master data; check that name and address correspond exactly")
	}

	degraded := p.pool.Run(ctx, visits)
	for _, v := range visits {
		if err := p.sink.RecordGeocode(metrics.GeocodeEvent{Region: v.Customer.Region, Degraded: v.CoordsDegraded, Time: time.Now()}); err != nil {
			p.log.Warnf("record geocode: %v", err)
		}
	}
	if degraded > 0 {
		p.log.Warnf("%d visits use regional fallback coordinates", degraded)
	}

	points := make([]model.Coordinates, len(visits))
	for i, v := range visits {
		points[i] = v.Coords
	}
	labels, err := cluster.KMeans(points, p.cfg.Clusters, p.cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("cluster visits: %w", err)
	}
	for i, v := range visits {
		v.Zone = labels[i]
	}

	if _, err := assign.Assign(visits, p.cfg.Inspectors); err != nil {
		return nil, err
	}

	entries, err := p.buildTours(visits, start)
	if err != nil {
		return nil, err
	}

	plan := &model.Plan{
		RunID:     uuid.NewString(),
		Entries:   entries,
		Unmatched: unmatched,
		Renewals:  p.Renewals(customers, began),
	}
	plan.Stats = buildStats(plan, len(orders), len(visits), degraded)

	if err := p.sink.RecordPlanRun(metrics.PlanRunEvent{
		RunID:     plan.RunID,
		Orders:    len(orders),
		Matched:   len(visits),
		Unmatched: len(unmatched),
		Visits:    len(entries),
		Degraded:  degraded,
		TotalKm:   plan.Stats.TotalKm,
		Duration:  time.Since(began),
		Time:      began,
	}); err != nil {
		p.log.Warnf("record plan run: %v", err)
	}
	p.log.Infof("plan %s: %d visits over %d weeks, %.0f km", plan.RunID, len(entries), plan.Stats.WeeksNeeded, plan.Stats.TotalKm)
	return plan, nil
}

// buildTours sequences and schedules each inspector's visits. Zones are
// walked in ascending order and concatenated into one tour per inspector, so
// a single date cursor covers the whole workload and days never overlap.
func (p *Planner) buildTours(visits []*model.Visit, start time.Time) ([]model.ScheduleEntry, error) {
	byInspector := make(map[string]map[int][]*model.Visit)
	for _, v := range visits {
		if byInspector[v.Inspector] == nil {
			byInspector[v.Inspector] = make(map[int][]*model.Visit)
		}
		byInspector[v.Inspector][v.Zone] = append(byInspector[v.Inspector][v.Zone], v)
	}

	sched := &schedule.Scheduler{Params: p.cfg.Work, Calendar: p.cfg.Calendar, Log: p.log}
	var entries []model.ScheduleEntry

	for _, insp := range p.cfg.Inspectors {
		zones := byInspector[insp.Name]
		if len(zones) == 0 {
			continue
		}
		zoneIDs := make([]int, 0, len(zones))
		for z := range zones {
			zoneIDs = append(zoneIDs, z)
		}
		sort.Ints(zoneIDs)

		var full []*model.Visit
		for _, z := range zoneIDs {
			ordered := tour.Sequence(zones[z], insp.Base)
			if p.cfg.TwoOpt {
				ordered = tour.TwoOpt(ordered, insp.Base)
			}
			full = append(full, ordered...)
		}
		for i, v := range full {
			v.Seq = i + 1
		}

		inspEntries, err := sched.Schedule(full, insp.Name, start)
		if err != nil {
			return nil, fmt.Errorf("schedule %s: %w", insp.Name, err)
		}
		entries = append(entries, inspEntries...)
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Inspector != b.Inspector {
			return a.Inspector < b.Inspector
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.Visit.Seq < b.Visit.Seq
	})
	return entries, nil
}
