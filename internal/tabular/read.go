// Package tabular reads customer and order data from CSV files and writes
// planning results back out. Columns are addressed by header name so files
// exported from spreadsheets keep working when column order changes.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fieldplan/tourplan/core/model"
)

const dateLayout = "2006-01-02"

type header map[string]int

func indexHeader(row []string, required ...string) (header, error) {
	h := make(header, len(row))
	for i, name := range row {
		h[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := h[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return h, nil
}

func (h header) get(row []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func readAll(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: need a header and at least one data row", path)
	}
	return records, nil
}

// ReadCustomers loads the customer master data.
// Required columns: id, name, address, postal_code, city, region, work_hours.
// Optional: reference_date in 2006-01-02 notation.
func ReadCustomers(path string) ([]model.Customer, error) {
	records, err := readAll(path)
	if err != nil {
		return nil, err
	}
	h, err := indexHeader(records[0], "id", "name", "address", "postal_code", "city", "region", "work_hours")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	customers := make([]model.Customer, 0, len(records)-1)
	for i, row := range records[1:] {
		hours, err := strconv.ParseFloat(h.get(row, "work_hours"), 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: work_hours: %w", path, i+2, err)
		}
		c := model.Customer{
			ID:         h.get(row, "id"),
			Name:       h.get(row, "name"),
			Address:    h.get(row, "address"),
			PostalCode: h.get(row, "postal_code"),
			City:       h.get(row, "city"),
			Region:     h.get(row, "region"),
			WorkHours:  hours,
		}
		if raw := h.get(row, "reference_date"); raw != "" {
			ref, err := time.Parse(dateLayout, raw)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: reference_date: %w", path, i+2, err)
			}
			c.ReferenceDate = ref
		}
		customers = append(customers, c)
	}
	return customers, nil
}

// ReadOrders loads confirmed orders.
// Required columns: id, customer_name, site_address. Optional: order_date.
func ReadOrders(path string) ([]model.Order, error) {
	records, err := readAll(path)
	if err != nil {
		return nil, err
	}
	h, err := indexHeader(records[0], "id", "customer_name", "site_address")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	orders := make([]model.Order, 0, len(records)-1)
	for i, row := range records[1:] {
		o := model.Order{
			ID:           h.get(row, "id"),
			CustomerName: h.get(row, "customer_name"),
			SiteAddress:  h.get(row, "site_address"),
		}
		if o.ID == "" {
			return nil, fmt.Errorf("%s row %d: empty order id", path, i+2)
		}
		if raw := h.get(row, "order_date"); raw != "" {
			d, err := time.Parse(dateLayout, raw)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: order_date: %w", path, i+2, err)
			}
			o.OrderDate = d
		}
		orders = append(orders, o)
	}
	return orders, nil
}
