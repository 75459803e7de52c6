package planner

import (
	"fmt"

	"github.com/fieldplan/tourplan/core/model"
	"github.com/fieldplan/tourplan/core/schedule"
)

// Config carries everything one planning run depends on. It is passed in
// explicitly so concurrent runs with different rosters never share state.
type Config struct {
	// Inspectors is the roster; at least one inspector is required.
	Inspectors []model.Inspector
	// Clusters is the target number of geographic zones.
	Clusters int
	// Seed makes clustering reproducible.
	Seed int64
	// TwoOpt enables the 2-opt improvement pass after nearest-neighbor.
	TwoOpt bool
	// MinWorkHours and MaxWorkHours bound plausible per-visit estimates.
	MinWorkHours float64
	MaxWorkHours float64
	// RenewalAlertDays is the contract-expiry lookahead window.
	RenewalAlertDays int
	// Work are the daily scheduling parameters.
	Work schedule.Params
	// Calendar holds holidays and per-inspector vacations.
	Calendar *schedule.Calendar
}

// SetDefaults applies the standard planning parameters.
func (c *Config) SetDefaults() {
	if c.Clusters == 0 {
		c.Clusters = 8
	}
	if c.Seed == 0 {
		c.Seed = 42
	}
	if c.MinWorkHours == 0 {
		c.MinWorkHours = 0.5
	}
	if c.MaxWorkHours == 0 {
		c.MaxWorkHours = 12
	}
	if c.RenewalAlertDays == 0 {
		c.RenewalAlertDays = 90
	}
	c.Work.SetDefaults()
	if c.Calendar == nil {
		c.Calendar = &schedule.Calendar{}
	}
}

// Validate checks the configuration is usable for a run.
func (c Config) Validate() error {
	if len(c.Inspectors) == 0 {
		return fmt.Errorf("inspector roster is empty")
	}
	seen := make(map[string]bool, len(c.Inspectors))
	for _, insp := range c.Inspectors {
		if insp.Name == "" {
			return fmt.Errorf("inspector with empty name")
		}
		if seen[insp.Name] {
			return fmt.Errorf("duplicate inspector %q", insp.Name)
		}
		seen[insp.Name] = true
	}
	if c.Clusters < 1 {
		return fmt.Errorf("clusters must be positive")
	}
	if c.MinWorkHours < 0 || c.MaxWorkHours <= c.MinWorkHours {
		return fmt.Errorf("work hour bounds [%.1f, %.1f] invalid", c.MinWorkHours, c.MaxWorkHours)
	}
	return c.Work.Validate()
}
