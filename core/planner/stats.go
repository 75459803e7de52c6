package planner

import (
	"time"

	"github.com/fieldplan/tourplan/core/model"
)

// buildStats aggregates workload figures from a finished plan.
func buildStats(plan *model.Plan, orders, matched, degraded int) model.Stats {
	st := model.Stats{
		TotalOrders:      orders,
		MatchedOrders:    matched,
		UnmatchedOrders:  len(plan.Unmatched),
		PlannedVisits:    len(plan.Entries),
		DegradedGeocodes: degraded,
		PerInspector:     make(map[string]model.InspectorStats),
	}

	type dayKey struct {
		inspector string
		date      time.Time
	}
	days := make(map[dayKey]struct{})
	weeks := make(map[int]struct{})

	for _, e := range plan.Entries {
		is := st.PerInspector[e.Inspector]
		is.Visits++
		is.Km += e.Visit.KmFromPrev
		is.WorkHours += e.Visit.Customer.WorkHours
		st.PerInspector[e.Inspector] = is

		st.TotalKm += e.Visit.KmFromPrev
		days[dayKey{e.Inspector, e.Date}] = struct{}{}
		weeks[e.Week] = struct{}{}
	}

	for k := range days {
		is := st.PerInspector[k.inspector]
		is.Days++
		st.PerInspector[k.inspector] = is
	}

	st.ActiveInspectors = len(st.PerInspector)
	st.WeeksNeeded = len(weeks)
	return st
}
