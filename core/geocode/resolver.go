// Package geocode maps postal addresses to geographic coordinates. The
// primary resolver queries an external provider under a shared rate limit;
// a regional-centroid fallback guarantees that every visit receives some
// coordinate, so the pipeline never drops a visit for lack of geocoding.
package geocode

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldplan/tourplan/core/model"
)

// ErrNoResult indicates the provider answered but found no coordinates.
var ErrNoResult = errors.New("geocode: no result")

// Query identifies a location to resolve.
type Query struct {
	PostalCode string
	City       string
	Country    string
}

// Resolver resolves a query to coordinates.
type Resolver interface {
	Resolve(ctx context.Context, q Query) (model.Coordinates, error)
}

// Config defines provider access and concurrency parameters.
type Config struct {
	// BaseURL is the provider endpoint, e.g. https://nominatim.openstreetmap.org.
	BaseURL string `json:"base_url"`
	// UserAgent identifies this client toward the provider.
	UserAgent string `json:"user_agent"`
	// Country is appended to every query.
	Country string `json:"country"`
	// TimeoutSeconds bounds a single provider call.
	TimeoutSeconds int `json:"timeout_seconds"`
	// MinIntervalMS is the minimum spacing between provider requests,
	// shared across all workers. Nominatim requires at least 1000.
	MinIntervalMS int `json:"min_interval_ms"`
	// MaxRetries bounds retry attempts for transient provider failures.
	MaxRetries int `json:"max_retries"`
	// Workers is the number of concurrent geocoding workers.
	Workers int `json:"workers"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if c.UserAgent == "" {
		c.UserAgent = "tourplan/1.0"
	}
	if c.Country == "" {
		c.Country = "Italia"
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 10
	}
	if c.MinIntervalMS == 0 {
		c.MinIntervalMS = 1000
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
	if c.Workers == 0 {
		c.Workers = 4
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.MinIntervalMS < 1000 {
		return fmt.Errorf("min_interval_ms %d below provider minimum of 1000", c.MinIntervalMS)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive")
	}
	return nil
}
