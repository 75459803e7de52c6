package tour

import (
	"github.com/fieldplan/tourplan/core/geo"
	"github.com/fieldplan/tourplan/core/model"
)

// twoOptMaxPasses caps the number of full improvement sweeps so the pass
// always terminates, even on degenerate inputs.
const twoOptMaxPasses = 32

// TwoOpt improves an open tour with deterministic first-improvement 2-opt
// segment reversals. The tour starts at base and does not return to it. The
// result visits exactly the same set and never has a greater length than the
// input; Seq and KmFromPrev are rewritten to match the new order.
func TwoOpt(tourVisits []*model.Visit, base model.Coordinates) []*model.Visit {
	n := len(tourVisits)
	if n < 3 {
		return tourVisits
	}

	cur := make([]*model.Visit, n)
	copy(cur, tourVisits)

	pos := func(i int) model.Coordinates {
		if i < 0 {
			return base
		}
		return cur[i].Coords
	}

	for pass := 0; pass < twoOptMaxPasses; pass++ {
		improved := false
		for i := 0; i < n-1 && !improved; i++ {
			for j := i + 1; j < n; j++ {
				// Reversing cur[i..j] replaces edges (i-1,i) and (j,j+1)
				// with (i-1,j) and (i,j+1).
				removed := geo.DistanceKm(pos(i-1), cur[i].Coords)
				added := geo.DistanceKm(pos(i-1), cur[j].Coords)
				if j+1 < n {
					removed += geo.DistanceKm(cur[j].Coords, cur[j+1].Coords)
					added += geo.DistanceKm(cur[i].Coords, cur[j+1].Coords)
				}
				if added < removed-distTolerance {
					reverse(cur, i, j)
					improved = true
					break
				}
			}
		}
		if !improved {
			break
		}
	}

	current := base
	for i, v := range cur {
		v.Seq = i + 1
		v.KmFromPrev = geo.DistanceKm(current, v.Coords)
		current = v.Coords
	}
	return cur
}

func reverse(vs []*model.Visit, i, j int) {
	for i < j {
		vs[i], vs[j] = vs[j], vs[i]
		i++
		j--
	}
}
