// Package cluster partitions geocoded visits into geographic service zones.
package cluster

import (
	"errors"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/fieldplan/tourplan/core/model"
)

// ErrNoPoints indicates clustering was requested on an empty set.
var ErrNoPoints = errors.New("cluster: no points")

const maxIterations = 100

// KMeans partitions points into at most k zones using Lloyd's algorithm over
// (lat, lon) pairs. The seeded source makes runs reproducible. Every point
// receives exactly one label in [0, k); clusters may end up empty when k
// exceeds the natural groupings.
func KMeans(points []model.Coordinates, k int, seed int64) ([]int, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrNoPoints
	}
	if k > n {
		k = n
	}
	if k < 1 {
		k = 1
	}

	rng := rand.New(rand.NewSource(seed))

	// Forgy initialization: k distinct points as starting centroids.
	perm := rng.Perm(n)
	centroids := make([]model.Coordinates, k)
	for i := 0; i < k; i++ {
		centroids[i] = points[perm[i]]
	}

	labels := make([]int, n)
	sumLat := make([]float64, k)
	sumLon := make([]float64, k)
	counts := make([]float64, k)

	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, p := range points {
			best := nearestCentroid(p, centroids)
			if labels[i] != best || iter == 0 {
				labels[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}

		floats.Scale(0, sumLat)
		floats.Scale(0, sumLon)
		floats.Scale(0, counts)
		for i, p := range points {
			l := labels[i]
			sumLat[l] += p.Lat
			sumLon[l] += p.Lon
			counts[l]++
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				// Empty cluster keeps its previous centroid.
				continue
			}
			centroids[c] = model.Coordinates{Lat: sumLat[c] / counts[c], Lon: sumLon[c] / counts[c]}
		}
	}
	return labels, nil
}

func nearestCentroid(p model.Coordinates, centroids []model.Coordinates) int {
	best := 0
	bestDist := math.MaxFloat64
	for c, ct := range centroids {
		dLat := p.Lat - ct.Lat
		dLon := p.Lon - ct.Lon
		d := dLat*dLat + dLon*dLon
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}
