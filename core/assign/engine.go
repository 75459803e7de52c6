// Package assign binds visits to inspectors. A restricted inspector (one
// carrying a regional allow-list) has priority inside its regions; everyone
// else shares the remaining load. The allow-list is a hard constraint driven
// by roster data, never by inspector identity.
package assign

import (
	"fmt"
	"sort"

	"github.com/fieldplan/tourplan/core/model"
)

// ConfigError reports a roster that cannot cover a region. It is fatal: the
// engine never silently drops or misassigns a visit.
type ConfigError struct {
	Region  string
	VisitID string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("no inspector qualifies for region %q (visit %s)", e.Region, e.VisitID)
}

// Assign maps every visit ID to an inspector name.
//
// Per visit: restricted inspectors whose allow-list contains the region take
// precedence; otherwise the least-loaded eligible inspector wins, with roster
// order as the tie-break. The result is deterministic for a fixed roster and
// visit order.
func Assign(visits []*model.Visit, inspectors []model.Inspector) (map[string]string, error) {
	if len(inspectors) == 0 {
		return nil, fmt.Errorf("empty inspector roster")
	}

	load := make(map[string]int, len(inspectors))
	out := make(map[string]string, len(visits))

	ordered := make([]*model.Visit, len(visits))
	copy(ordered, visits)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	for _, v := range ordered {
		region := v.Customer.Region

		var restricted, open []model.Inspector
		for _, insp := range inspectors {
			if !insp.Allows(region) {
				continue
			}
			if insp.Restricted() {
				restricted = append(restricted, insp)
			} else {
				open = append(open, insp)
			}
		}

		pool := restricted
		if len(pool) == 0 {
			pool = open
		}
		if len(pool) == 0 {
			return nil, &ConfigError{Region: region, VisitID: v.ID}
		}

		chosen := pool[0]
		for _, insp := range pool[1:] {
			if load[insp.Name] < load[chosen.Name] {
				chosen = insp
			}
		}

		out[v.ID] = chosen.Name
		load[chosen.Name]++
		v.Inspector = chosen.Name
	}
	return out, nil
}
