package tabular

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fieldplan/tourplan/core/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadCustomers(t *testing.T) {
	path := writeFile(t, "customers.csv",
		"id,name,address,postal_code,city,region,work_hours,reference_date\n"+
			"C1,Rossi SRL,Via Roma 1,20121,Milano,Lombardia,2.5,2026-06-30\n"+
			"C2,Bianchi SPA,Via Verdi 5,33100,Udine,Friuli Venezia Giulia,4,\n")

	customers, err := ReadCustomers(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(customers))
	}
	c := customers[0]
	if c.ID != "C1" || c.Region != "Lombardia" || c.WorkHours != 2.5 {
		t.Fatalf("unexpected customer: %+v", c)
	}
	want := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	if !c.ReferenceDate.Equal(want) {
		t.Fatalf("reference date = %v", c.ReferenceDate)
	}
	if !customers[1].ReferenceDate.IsZero() {
		t.Fatalf("empty reference date should stay zero")
	}
}

func TestReadCustomersColumnOrderIrrelevant(t *testing.T) {
	path := writeFile(t, "customers.csv",
		"work_hours,region,city,postal_code,address,name,id\n"+
			"3,Lazio,Roma,00100,Via Appia 2,Verdi SNC,C9\n")
	customers, err := ReadCustomers(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if customers[0].ID != "C9" || customers[0].WorkHours != 3 {
		t.Fatalf("column remap failed: %+v", customers[0])
	}
}

func TestReadCustomersMissingColumn(t *testing.T) {
	path := writeFile(t, "customers.csv", "id,name\nC1,Rossi\n")
	if _, err := ReadCustomers(path); err == nil || !strings.Contains(err.Error(), "work_hours") {
		t.Fatalf("expected missing column error, got %v", err)
	}
}

func TestReadCustomersBadHours(t *testing.T) {
	path := writeFile(t, "customers.csv",
		"id,name,address,postal_code,city,region,work_hours\n"+
			"C1,Rossi,Via Roma 1,20121,Milano,Lombardia,molte\n")
	if _, err := ReadCustomers(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestReadOrders(t *testing.T) {
	path := writeFile(t, "orders.csv",
		"id,customer_name,site_address,order_date\n"+
			"O1,Rossi SRL,Via Roma 1,2026-02-10\n"+
			"O2,Bianchi SPA,Via Verdi 5,\n")
	orders, err := ReadOrders(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != "O1" {
		t.Fatalf("unexpected orders: %+v", orders)
	}
	if orders[0].OrderDate.IsZero() || !orders[1].OrderDate.IsZero() {
		t.Fatalf("order dates wrong: %v %v", orders[0].OrderDate, orders[1].OrderDate)
	}
}

func TestWritePlanRoundTrip(t *testing.T) {
	dir := t.TempDir()
	plan := &model.Plan{
		Entries: []model.ScheduleEntry{{
			Visit: &model.Visit{
				ID:         "O1",
				Customer:   model.Customer{Name: "Rossi SRL", City: "Milano", Region: "Lombardia", WorkHours: 2},
				Seq:        1,
				KmFromPrev: 12.3,
			},
			Inspector: "Paolo",
			Date:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			Week:      10,
			DayHours:  2.5,
		}},
		Unmatched: []model.Order{{ID: "O4", CustomerName: "Ghost", SiteAddress: "None"}},
	}

	planPath := filepath.Join(dir, "plan.csv")
	if err := WritePlan(planPath, plan); err != nil {
		t.Fatalf("write plan: %v", err)
	}
	data, err := os.ReadFile(planPath)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	out := string(data)
	for _, want := range []string{"Paolo", "2026-03-02", "Rossi SRL", "12.3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("plan output missing %q:\n%s", want, out)
		}
	}

	unmatchedPath := filepath.Join(dir, "unmatched.csv")
	if err := WriteUnmatched(unmatchedPath, plan.Unmatched); err != nil {
		t.Fatalf("write unmatched: %v", err)
	}
	data, _ = os.ReadFile(unmatchedPath)
	if !strings.Contains(string(data), "Ghost") {
		t.Fatalf("unmatched output missing order:\n%s", data)
	}
}
