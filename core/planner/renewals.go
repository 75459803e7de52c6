package planner

import (
	"sort"
	"time"

	"github.com/fieldplan/tourplan/core/model"
)

const hoursPerDay = 24

// Renewals lists customers whose contract reference date falls within the
// configured alert window, nearest expiry first. Customers without a
// reference date are skipped.
func (p *Planner) Renewals(customers []model.Customer, now time.Time) []model.Renewal {
	now = now.Truncate(hoursPerDay * time.Hour)
	var out []model.Renewal
	for _, c := range customers {
		if c.ReferenceDate.IsZero() {
			continue
		}
		days := int(c.ReferenceDate.Truncate(hoursPerDay*time.Hour).Sub(now).Hours() / hoursPerDay)
		if days < 0 || days > p.cfg.RenewalAlertDays {
			continue
		}
		out = append(out, model.Renewal{Customer: c, DaysToExpiry: days})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DaysToExpiry != out[j].DaysToExpiry {
			return out[i].DaysToExpiry < out[j].DaysToExpiry
		}
		return out[i].Customer.ID < out[j].Customer.ID
	})
	return out
}
