package model

// Coordinates is a geographic position in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// IsZero reports whether the coordinates are unset.
func (c Coordinates) IsZero() bool {
	return c.Lat == 0 && c.Lon == 0
}
