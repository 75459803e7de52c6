package geocode

import (
	"context"

	"github.com/fieldplan/tourplan/core/logger"
	"github.com/fieldplan/tourplan/core/model"
)

// FallbackResolver wraps a provider with a precomputed regional centroid map.
// It never fails: when the provider returns no result or errors out, the
// region's centroid is substituted and the result is marked degraded. A
// region absent from the map resolves to the national centroid. Degraded
// precision is logged, not treated as an error, since clustering and tour
// construction still function with reduced geographic fidelity.
type FallbackResolver struct {
	Provider Resolver
	Regional map[string]model.Coordinates
	National model.Coordinates
	Log      logger.Logger
}

// ResolveRegion resolves the query, falling back to the centroid for region.
// The boolean result reports whether the coordinate is degraded.
func (r *FallbackResolver) ResolveRegion(ctx context.Context, q Query, region string) (model.Coordinates, bool) {
	if r.Provider != nil {
		coords, err := r.Provider.Resolve(ctx, q)
		if err == nil {
			return coords, false
		}
		r.Log.Warnf("geocode %s %s failed (%v), using regional centroid", q.PostalCode, q.City, err)
	}
	if coords, ok := r.Regional[region]; ok {
		return coords, true
	}
	r.Log.Warnf("no centroid for region %q, using national fallback", region)
	return r.National, true
}
