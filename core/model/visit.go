package model

// Visit is a matched (Customer, Order) pair flowing through the planning
// pipeline. It is created by the matcher and progressively enriched: the
// geocoder fills Coords, the clusterer Zone, the assignment engine Inspector
// and the sequencer Seq and KmFromPrev. Callers never construct visits
// directly.
type Visit struct {
	ID             string // order id, unique per run
	Customer       Customer
	Order          Order
	Coords         Coordinates
	CoordsDegraded bool // true when a regional fallback coordinate was used
	Zone           int
	Inspector      string
	Seq            int
	KmFromPrev     float64
}
