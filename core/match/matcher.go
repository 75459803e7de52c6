// Package match joins confirmed orders to customer master records using
// normalized (name, address) keys. Matching is exact by design: an ambiguous
// or missing match is reported for manual correction, never guessed.
package match

import (
	"github.com/fieldplan/tourplan/core/model"
	"github.com/fieldplan/tourplan/core/normalize"
)

type key struct {
	name    string
	address string
}

// Match pairs each order with exactly one customer. Orders whose key matches
// no customer, or a key claimed by more than one customer, are returned in
// unmatched; the pipeline continues with the valid matches.
func Match(customers []model.Customer, orders []model.Order) (matched []*model.Visit, unmatched []model.Order) {
	index := make(map[key]*model.Customer, len(customers))
	ambiguous := make(map[key]bool)
	for i := range customers {
		c := &customers[i]
		k := key{normalize.Normalize(c.Name), normalize.Normalize(c.Address)}
		if _, dup := index[k]; dup {
			ambiguous[k] = true
			continue
		}
		index[k] = c
	}

	for _, o := range orders {
		k := key{normalize.Normalize(o.CustomerName), normalize.Normalize(o.SiteAddress)}
		c, ok := index[k]
		if !ok || ambiguous[k] {
			unmatched = append(unmatched, o)
			continue
		}
		matched = append(matched, &model.Visit{
			ID:       o.ID,
			Customer: *c,
			Order:    o,
		})
	}
	return matched, unmatched
}
