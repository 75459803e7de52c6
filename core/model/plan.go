package model

import "time"

// ScheduleEntry is a dated visit, the terminal output of a planning run.
// Entries are immutable once produced; manual edits happen outside the core.
type ScheduleEntry struct {
	Visit     *Visit
	Inspector string
	Date      time.Time
	Week      int     // ISO week number
	DayHours  float64 // cumulative hours on Date after this visit
}

// Renewal flags a customer whose contract reference date is approaching.
type Renewal struct {
	Customer     Customer
	DaysToExpiry int
}

// Stats summarises a planning run.
type Stats struct {
	TotalOrders      int
	MatchedOrders    int
	UnmatchedOrders  int
	PlannedVisits    int
	DegradedGeocodes int
	ActiveInspectors int
	WeeksNeeded      int
	TotalKm          float64
	PerInspector     map[string]InspectorStats
}

// InspectorStats aggregates workload per inspector.
type InspectorStats struct {
	Visits    int
	Km        float64
	WorkHours float64
	Days      int
}

// Plan is the complete result of one planning run, owned by the orchestrator.
type Plan struct {
	RunID     string
	Entries   []ScheduleEntry
	Unmatched []Order // orders needing manual remediation
	Renewals  []Renewal
	Stats     Stats
}
