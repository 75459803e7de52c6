// Package tour orders the visits of one zone into a low-travel tour.
//
// The baseline is a greedy nearest-neighbor walk from the inspector's base.
// It is a heuristic: each step minimizes the immediate leg, with no claim of
// global optimality. An optional 2-opt pass shortens the result further while
// preserving completeness and determinism. O(n²) per zone is acceptable since
// zone sizes are bounded by the clustering step.
package tour

import (
	"sort"

	"github.com/fieldplan/tourplan/core/geo"
	"github.com/fieldplan/tourplan/core/model"
)

// distTolerance treats near-equal legs as ties, resolved by ascending visit
// ID for determinism.
const distTolerance = 1e-9

// Sequence orders visits by repeatedly moving to the nearest unvisited one,
// starting from base. It sets Seq and KmFromPrev on every visit and returns
// the ordered slice.
func Sequence(visits []*model.Visit, base model.Coordinates) []*model.Visit {
	if len(visits) == 0 {
		return nil
	}

	remaining := make([]*model.Visit, len(visits))
	copy(remaining, visits)
	// Stable scan order so equidistant candidates resolve the same way on
	// every run.
	sort.Slice(remaining, func(i, j int) bool { return remaining[i].ID < remaining[j].ID })

	ordered := make([]*model.Visit, 0, len(visits))
	current := base

	for len(remaining) > 0 {
		bestIdx := 0
		bestDist := geo.DistanceKm(current, remaining[0].Coords)
		for i := 1; i < len(remaining); i++ {
			d := geo.DistanceKm(current, remaining[i].Coords)
			if d < bestDist-distTolerance {
				bestDist = d
				bestIdx = i
			}
		}

		next := remaining[bestIdx]
		next.Seq = len(ordered) + 1
		next.KmFromPrev = bestDist
		ordered = append(ordered, next)
		current = next.Coords
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
	return ordered
}

// Length returns the total tour length in km starting from base.
func Length(tour []*model.Visit, base model.Coordinates) float64 {
	total := 0.0
	current := base
	for _, v := range tour {
		total += geo.DistanceKm(current, v.Coords)
		current = v.Coords
	}
	return total
}
