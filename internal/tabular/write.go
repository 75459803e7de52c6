package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/fieldplan/tourplan/core/model"
)

func writeAll(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WritePlan writes the dated schedule, one row per visit.
func WritePlan(path string, plan *model.Plan) error {
	rows := [][]string{{
		"inspector", "date", "week", "seq", "visit_id", "customer", "address",
		"city", "region", "work_hours", "km_from_prev", "day_hours", "degraded_coords",
	}}
	for _, e := range plan.Entries {
		v := e.Visit
		rows = append(rows, []string{
			e.Inspector,
			e.Date.Format(dateLayout),
			strconv.Itoa(e.Week),
			strconv.Itoa(v.Seq),
			v.ID,
			v.Customer.Name,
			v.Customer.Address,
			v.Customer.City,
			v.Customer.Region,
			strconv.FormatFloat(v.Customer.WorkHours, 'f', 1, 64),
			strconv.FormatFloat(v.KmFromPrev, 'f', 1, 64),
			strconv.FormatFloat(e.DayHours, 'f', 1, 64),
			strconv.FormatBool(v.CoordsDegraded),
		})
	}
	return writeAll(path, rows)
}

// WriteUnmatched writes the orders that need manual remediation.
func WriteUnmatched(path string, orders []model.Order) error {
	rows := [][]string{{"id", "customer_name", "site_address"}}
	for _, o := range orders {
		rows = append(rows, []string{o.ID, o.CustomerName, o.SiteAddress})
	}
	return writeAll(path, rows)
}

// WriteRenewals writes the approaching contract renewals, nearest first.
func WriteRenewals(path string, renewals []model.Renewal) error {
	rows := [][]string{{"customer_id", "customer", "region", "reference_date", "days_to_expiry"}}
	for _, r := range renewals {
		rows = append(rows, []string{
			r.Customer.ID,
			r.Customer.Name,
			r.Customer.Region,
			r.Customer.ReferenceDate.Format(dateLayout),
			strconv.Itoa(r.DaysToExpiry),
		})
	}
	return writeAll(path, rows)
}
