package planner

import (
	"fmt"

	"github.com/fieldplan/tourplan/core/model"
)

// ValidateReassignment checks whether a manual hand-over of a visit to
// another inspector respects the roster constraints. Plans are immutable;
// callers apply the change in their own copy after a nil return.
func (p *Planner) ValidateReassignment(visit *model.Visit, to string) error {
	if visit == nil {
		return fmt.Errorf("no visit given")
	}
	var target *model.Inspector
	for i := range p.cfg.Inspectors {
		if p.cfg.Inspectors[i].Name == to {
			target = &p.cfg.Inspectors[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("inspector %q is not on the roster", to)
	}
	if !target.Allows(visit.Customer.Region) {
		return fmt.Errorf("inspector %q does not cover region %q", to, visit.Customer.Region)
	}
	if !target.Restricted() && hasRestrictedFor(p.cfg.Inspectors, visit.Customer.Region) {
		p.log.Warnf("visit %s moves out of a restricted inspector's territory (%s)", visit.ID, visit.Customer.Region)
	}
	return nil
}

func hasRestrictedFor(inspectors []model.Inspector, region string) bool {
	for _, insp := range inspectors {
		if insp.Restricted() && insp.Allows(region) {
			return true
		}
	}
	return false
}
