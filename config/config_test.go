package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"planning": {
			"clusters": 5,
			"seed": 7,
			"two_opt": true,
			"inspectors": [
				{"name": "Anna", "base": {"lat": 45.0, "lon": 9.0}},
				{"name": "Bruno", "base": {"lat": 46.0, "lon": 13.0}, "regions": ["Lombardia"]}
			],
			"vacations": {
				"Anna": [{"start": "2026-08-10", "end": "2026-08-21"}]
			}
		},
		"geocode": {"user_agent": "test/1.0"}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Planning.Clusters != 5 || cfg.Planning.Seed != 7 || !cfg.Planning.TwoOpt {
		t.Fatalf("planning section not loaded: %+v", cfg.Planning)
	}
	if len(cfg.Planning.Inspectors) != 2 {
		t.Fatalf("expected 2 inspectors, got %d", len(cfg.Planning.Inspectors))
	}
	if got := cfg.Planning.Inspectors[1].Regions; len(got) != 1 || got[0] != "Lombardia" {
		t.Fatalf("regions not loaded: %v", got)
	}
	if cfg.Geocode.UserAgent != "test/1.0" {
		t.Fatalf("geocode overrides lost: %q", cfg.Geocode.UserAgent)
	}
	if cfg.Geocode.MinIntervalMS != 1000 {
		t.Fatalf("geocode defaults not applied: %d", cfg.Geocode.MinIntervalMS)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
planning:
  clusters: 3
  work:
    daily_cap_hours: 7
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Planning.Clusters != 3 {
		t.Fatalf("clusters = %d", cfg.Planning.Clusters)
	}
	if cfg.Planning.Work.DailyCapHours != 7 {
		t.Fatalf("daily cap = %v", cfg.Planning.Work.DailyCapHours)
	}
	if cfg.Planning.Work.LastDayCapHours != 6.5 {
		t.Fatalf("work defaults not applied: %v", cfg.Planning.Work.LastDayCapHours)
	}
	if len(cfg.Planning.Inspectors) == 0 {
		t.Fatal("default roster not applied")
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeConfig(t, "config.toml", "x = 1")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "config.json", `{"planning": {"clusters": 2}}`)
	t.Setenv("FP_PLANNING__CLUSTERS", "9")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Planning.Clusters != 9 {
		t.Fatalf("env override not applied: %d", cfg.Planning.Clusters)
	}
}

func TestBuildCalendar(t *testing.T) {
	p := PlanningConfig{
		Holidays: map[string]string{"2026-12-25": "Natale"},
		Vacations: map[string][]VacationRange{
			"Anna": {{Start: "2026-08-10", End: "2026-08-21"}},
		},
	}
	cfg, err := p.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if ok, reason := cfg.Calendar.Available(time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC), "Anna"); ok || reason != "Natale" {
		t.Fatalf("holiday not honoured: %v %q", ok, reason)
	}
	if ok, reason := cfg.Calendar.Available(time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC), "Anna"); ok || reason != "vacation" {
		t.Fatalf("vacation not honoured: %v %q", ok, reason)
	}
}

func TestBuildRejectsBadDates(t *testing.T) {
	cases := []PlanningConfig{
		{Holidays: map[string]string{"25/12/2026": "Natale"}},
		{Vacations: map[string][]VacationRange{"Anna": {{Start: "bad", End: "2026-08-21"}}}},
		{Vacations: map[string][]VacationRange{"Anna": {{Start: "2026-08-21", End: "2026-08-10"}}}},
	}
	for i, p := range cases {
		if _, err := p.Build(); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}
