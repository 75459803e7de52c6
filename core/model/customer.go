package model

import (
	"fmt"
	"time"
)

// Customer is an immutable record from the customer master data, loaded once
// per planning run.
type Customer struct {
	ID            string
	Name          string
	Address       string
	PostalCode    string
	City          string
	Region        string
	WorkHours     float64   // estimated on-site work in hours
	ReferenceDate time.Time // contract reference visit date
}

// Validate checks that the customer record can be planned at all.
// Bounds guard against data-entry mistakes that would otherwise surface
// much later as scheduling errors.
func (c Customer) Validate(minHours, maxHours float64) error {
	if c.ID == "" {
		return fmt.Errorf("customer %q: missing id", c.Name)
	}
	if c.WorkHours < minHours || c.WorkHours > maxHours {
		return fmt.Errorf("customer %s: work hours %.1f outside [%.1f, %.1f]",
			c.ID, c.WorkHours, minHours, maxHours)
	}
	return nil
}

// Order is a confirmed intent to visit a customer site. CustomerName and
// SiteAddress are free text and must be matched against the master data
// before the order becomes actionable.
type Order struct {
	ID           string
	CustomerName string
	SiteAddress  string
	OrderDate    time.Time // optional, zero when unknown
}
