// Package config loads the application configuration from JSON or YAML
// files, with environment-variable overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/fieldplan/tourplan/core/geocode"
	"github.com/fieldplan/tourplan/core/metrics"
	"github.com/fieldplan/tourplan/core/model"
	"github.com/fieldplan/tourplan/core/planner"
	"github.com/fieldplan/tourplan/core/schedule"
)

const dateLayout = "2006-01-02"

type Config struct {
	Planning PlanningConfig `json:"planning"`
	Geocode  geocode.Config `json:"geocode"`
	Metrics  metrics.Config `json:"metrics"`
}

// VacationRange is an inclusive date interval in "2006-01-02" notation.
type VacationRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PlanningConfig is the file-level planning section. Dates are strings so
// the same structure loads from JSON and YAML alike; Build converts them.
type PlanningConfig struct {
	Inspectors       []model.Inspector          `json:"inspectors"`
	Clusters         int                        `json:"clusters"`
	Seed             int64                      `json:"seed"`
	TwoOpt           bool                       `json:"two_opt"`
	MinWorkHours     float64                    `json:"min_work_hours"`
	MaxWorkHours     float64                    `json:"max_work_hours"`
	RenewalAlertDays int                        `json:"renewal_alert_days"`
	Work             schedule.Params            `json:"work"`
	Holidays         map[string]string          `json:"holidays"`
	Vacations        map[string][]VacationRange `json:"vacations"`
}

// SetDefaults fills the planning section with the standard Italian setup.
func (p *PlanningConfig) SetDefaults() {
	if len(p.Inspectors) == 0 {
		p.Inspectors = DefaultRoster()
	}
	if len(p.Holidays) == 0 {
		p.Holidays = DefaultHolidays()
	}
	p.Work.SetDefaults()
}

// Build converts the file-level section into the planner's run configuration.
func (p PlanningConfig) Build() (planner.Config, error) {
	cal := &schedule.Calendar{
		Holidays:  make(map[string]string, len(p.Holidays)),
		Vacations: make(map[string][]schedule.DateRange, len(p.Vacations)),
	}
	for day, name := range p.Holidays {
		if _, err := time.Parse(dateLayout, day); err != nil {
			return planner.Config{}, fmt.Errorf("holiday %q: %w", day, err)
		}
		cal.Holidays[day] = name
	}
	for inspector, ranges := range p.Vacations {
		for _, r := range ranges {
			start, err := time.Parse(dateLayout, r.Start)
			if err != nil {
				return planner.Config{}, fmt.Errorf("vacation for %s: %w", inspector, err)
			}
			end, err := time.Parse(dateLayout, r.End)
			if err != nil {
				return planner.Config{}, fmt.Errorf("vacation for %s: %w", inspector, err)
			}
			if end.Before(start) {
				return planner.Config{}, fmt.Errorf("vacation for %s: %s ends before it starts", inspector, r.Start)
			}
			cal.Vacations[inspector] = append(cal.Vacations[inspector], schedule.DateRange{Start: start, End: end})
		}
	}
	return planner.Config{
		Inspectors:       p.Inspectors,
		Clusters:         p.Clusters,
		Seed:             p.Seed,
		TwoOpt:           p.TwoOpt,
		MinWorkHours:     p.MinWorkHours,
		MaxWorkHours:     p.MaxWorkHours,
		RenewalAlertDays: p.RenewalAlertDays,
		Work:             p.Work,
		Calendar:         cal,
	}, nil
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("FP_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "fp_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Planning.SetDefaults()
	cfg.Geocode.SetDefaults()
	if err := cfg.Geocode.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
