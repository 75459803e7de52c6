package model

// Inspector is a member of the traveling roster. An empty Regions list means
// the inspector covers any region; a non-empty list is a hard allow-list.
type Inspector struct {
	Name    string      `json:"name"`
	Base    Coordinates `json:"base"`
	Regions []string    `json:"regions,omitempty"`
}

// Restricted reports whether the inspector carries a regional allow-list.
func (i Inspector) Restricted() bool {
	return len(i.Regions) > 0
}

// Allows reports whether the inspector may service the given region.
func (i Inspector) Allows(region string) bool {
	if len(i.Regions) == 0 {
		return true
	}
	for _, r := range i.Regions {
		if r == region {
			return true
		}
	}
	return false
}
