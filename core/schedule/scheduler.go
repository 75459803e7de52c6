package schedule

import (
	"fmt"
	"time"

	"github.com/fieldplan/tourplan/core/geo"
	"github.com/fieldplan/tourplan/core/logger"
	"github.com/fieldplan/tourplan/core/model"
)

// Params are the working-hour rules applied per inspector day.
type Params struct {
	// DailyCapHours is the regular daily limit including travel.
	DailyCapHours float64 `json:"daily_cap_hours"`
	// LastDayCapHours is the reduced limit on LastWeekday, satisfying the
	// early-return rule for the final working day of the week.
	LastDayCapHours float64 `json:"last_day_cap_hours"`
	// LastWeekday designates the early-return day.
	LastWeekday time.Weekday `json:"last_weekday"`
	// BufferHours is added to every visit to absorb uncertainty.
	BufferHours float64 `json:"buffer_hours"`
	// AvgSpeedKmh converts leg distance to travel time.
	AvgSpeedKmh float64 `json:"avg_speed_kmh"`
}

// SetDefaults applies the standard working parameters.
func (p *Params) SetDefaults() {
	if p.DailyCapHours == 0 {
		p.DailyCapHours = 8
	}
	if p.LastDayCapHours == 0 {
		p.LastDayCapHours = 6.5
	}
	if p.LastWeekday == 0 {
		p.LastWeekday = time.Friday
	}
	if p.BufferHours == 0 {
		p.BufferHours = 0.5
	}
	if p.AvgSpeedKmh == 0 {
		p.AvgSpeedKmh = 70
	}
}

// Validate checks the parameters are usable.
func (p Params) Validate() error {
	if p.DailyCapHours <= 0 {
		return fmt.Errorf("daily_cap_hours must be positive")
	}
	if p.LastDayCapHours <= 0 || p.LastDayCapHours > p.DailyCapHours {
		return fmt.Errorf("last_day_cap_hours must be in (0, daily_cap_hours]")
	}
	if p.AvgSpeedKmh <= 0 {
		return fmt.Errorf("avg_speed_kmh must be positive")
	}
	return nil
}

func (p Params) capFor(date time.Time) float64 {
	if date.Weekday() == p.LastWeekday {
		return p.LastDayCapHours
	}
	return p.DailyCapHours
}

// ValidationError flags a visit that can never fit a working day. It is
// raised before any date walking so pathological records cannot loop the
// scheduler.
type ValidationError struct {
	VisitID string
	Hours   float64
	Cap     float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("visit %s requires %.1fh which exceeds the %.1fh daily cap", e.VisitID, e.Hours, e.Cap)
}

// Scheduler walks one inspector's ordered tour and emits dated entries.
type Scheduler struct {
	Params   Params
	Calendar *Calendar
	Log      logger.Logger
}

// Schedule assigns a date to every visit of the tour, in order, starting at
// or after start. State per day is (date, hours used); a visit that does not
// fit the remaining hours moves to the next working day. The scheduler never
// drops a visit: it advances dates until all are placed.
func (s *Scheduler) Schedule(tourVisits []*model.Visit, inspector string, start time.Time) ([]model.ScheduleEntry, error) {
	for _, v := range tourVisits {
		hours := v.Customer.WorkHours + s.Params.BufferHours
		if hours > s.Params.DailyCapHours {
			return nil, &ValidationError{VisitID: v.ID, Hours: hours, Cap: s.Params.DailyCapHours}
		}
	}

	date := s.Calendar.NextAvailable(start, inspector)
	dayHours := 0.0
	entries := make([]model.ScheduleEntry, 0, len(tourVisits))

	for _, v := range tourVisits {
		visitHours := v.Customer.WorkHours + s.Params.BufferHours
		travelHours := geo.TravelHours(v.KmFromPrev, s.Params.AvgSpeedKmh)
		total := visitHours + travelHours

		for dayHours+total > s.Params.capFor(date) {
			if dayHours == 0 && date.Weekday() != s.Params.LastWeekday {
				// A fresh full day still overflows: travel alone pushed
				// past the cap. Place the visit anyway rather than walk
				// forever; precision of the cap yields to completeness.
				s.Log.Warnf("visit %s overflows a fresh day (%.1fh of %.1fh)", v.ID, total, s.Params.capFor(date))
				break
			}
			date = s.Calendar.NextAvailable(date.AddDate(0, 0, 1), inspector)
			dayHours = 0
		}

		dayHours += total
		_, week := date.ISOWeek()
		entries = append(entries, model.ScheduleEntry{
			Visit:     v,
			Inspector: inspector,
			Date:      date,
			Week:      week,
			DayHours:  dayHours,
		})
	}
	return entries, nil
}
