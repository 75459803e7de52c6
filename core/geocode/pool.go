package geocode

import (
	"context"
	"sync"
	"time"

	"github.com/fieldplan/tourplan/core/model"
)

// Pool geocodes a batch of visits with a fixed number of workers sharing a
// single rate limiter. Cancelling the context stops new provider requests;
// remaining visits resolve through the fallback so partial runs stay usable.
type Pool struct {
	Resolver *FallbackResolver
	Country  string
	Workers  int
	Limiter  *Limiter
}

// NewPool builds a pool from the configuration.
func NewPool(cfg Config, resolver *FallbackResolver) *Pool {
	return &Pool{
		Resolver: resolver,
		Country:  cfg.Country,
		Workers:  cfg.Workers,
		Limiter:  NewLimiter(time.Duration(cfg.MinIntervalMS) * time.Millisecond),
	}
}

// Run fills Coords and CoordsDegraded on every visit and returns the number
// of degraded resolutions. Every visit ends with a non-zero coordinate.
func (p *Pool) Run(ctx context.Context, visits []*model.Visit) int {
	workers := p.Workers
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan *model.Visit)
	var degraded int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := range jobs {
				coords, deg := p.resolveOne(ctx, v)
				v.Coords = coords
				v.CoordsDegraded = deg
				if deg {
					mu.Lock()
					degraded++
					mu.Unlock()
				}
			}
		}()
	}

	for _, v := range visits {
		jobs <- v
	}
	close(jobs)
	wg.Wait()
	return degraded
}

func (p *Pool) resolveOne(ctx context.Context, v *model.Visit) (model.Coordinates, bool) {
	q := Query{PostalCode: v.Customer.PostalCode, City: v.Customer.City, Country: p.Country}
	// Once the context is done no more provider requests leave; the
	// fallback keeps the remaining visits plannable.
	if err := p.Limiter.Wait(ctx); err != nil {
		if coords, ok := p.Resolver.Regional[v.Customer.Region]; ok {
			return coords, true
		}
		return p.Resolver.National, true
	}
	return p.Resolver.ResolveRegion(ctx, q, v.Customer.Region)
}
