package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fieldplan/tourplan/core/model"
)

type httpStatusError struct {
	Code int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// NominatimResolver resolves queries against a Nominatim-compatible search
// endpoint. Transient failures (429, 5xx, network errors) are retried with
// exponential backoff while respecting context cancellation.
type NominatimResolver struct {
	client    *http.Client
	baseURL   string
	userAgent string
	retries   int
}

// NewNominatimResolver creates a resolver from the configuration.
func NewNominatimResolver(cfg Config) *NominatimResolver {
	return &NominatimResolver{
		client:    &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		retries:   cfg.MaxRetries,
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve implements Resolver.
func (r *NominatimResolver) Resolve(ctx context.Context, q Query) (model.Coordinates, error) {
	endpoint := r.baseURL + "/search"
	params := url.Values{}
	params.Set("postalcode", q.PostalCode)
	params.Set("city", q.City)
	params.Set("country", q.Country)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")

	resp, err := r.doWithRetry(ctx, endpoint+"?"+params.Encode())
	if err != nil {
		return model.Coordinates{}, err
	}
	defer resp.Body.Close()

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return model.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return model.Coordinates{}, ErrNoResult
	}
	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("parse lat %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("parse lon %q: %w", results[0].Lon, err)
	}
	return model.Coordinates{Lat: lat, Lon: lon}, nil
}

func (r *NominatimResolver) do(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &httpStatusError{Code: resp.StatusCode}
	}
	return resp, nil
}

func (r *NominatimResolver) doWithRetry(ctx context.Context, rawURL string) (*http.Response, error) {
	backoff := 200 * time.Millisecond
	var lastErr error

	for attempt := 1; attempt <= r.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		resp, err := r.do(ctx, rawURL)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := false
		var he *httpStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case http.StatusTooManyRequests, 500, 502, 503, 504:
				retry = true
			}
		}
		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}
		if !retry || attempt == r.retries {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}
	return nil, lastErr
}
