// Package schedule turns ordered tours into dated work-days under calendar
// and working-hour constraints.
package schedule

import "time"

const dateLayout = "2006-01-02"

// DateRange is an inclusive date interval, used for vacations.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether d falls inside the range, comparing dates only.
func (r DateRange) Contains(d time.Time) bool {
	day := truncate(d)
	return !day.Before(truncate(r.Start)) && !day.After(truncate(r.End))
}

// Calendar holds the non-working days of a planning horizon: weekends are
// computed, national holidays and per-inspector vacation ranges are supplied
// externally.
type Calendar struct {
	Holidays  map[string]string      // "2006-01-02" -> holiday name
	Vacations map[string][]DateRange // inspector name -> vacation ranges
}

// Available reports whether the inspector can work on the given date, with
// the blocking reason when not.
func (c *Calendar) Available(date time.Time, inspector string) (bool, string) {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return false, "weekend"
	}
	if name, ok := c.Holidays[date.Format(dateLayout)]; ok {
		return false, name
	}
	for _, r := range c.Vacations[inspector] {
		if r.Contains(date) {
			return false, "vacation"
		}
	}
	return true, ""
}

// maxLookahead bounds the forward search for a working day.
const maxLookahead = 366

// NextAvailable returns the first working day at or after date for the
// inspector. The search is bounded; a fully blocked year returns the start
// date unchanged, which upstream validation prevents in practice.
func (c *Calendar) NextAvailable(date time.Time, inspector string) time.Time {
	d := truncate(date)
	for i := 0; i < maxLookahead; i++ {
		if ok, _ := c.Available(d, inspector); ok {
			return d
		}
		d = d.AddDate(0, 0, 1)
	}
	return truncate(date)
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
