package model

import "testing"

func TestInspectorAllows(t *testing.T) {
	restricted := Inspector{Name: "Paolo", Regions: []string{"Lombardia", "Piemonte"}}
	if !restricted.Allows("Lombardia") {
		t.Fatalf("expected Lombardia allowed")
	}
	if restricted.Allows("Toscana") {
		t.Fatalf("Toscana must not be allowed")
	}
	if !restricted.Restricted() {
		t.Fatalf("expected restricted")
	}

	national := Inspector{Name: "Adrian"}
	if !national.Allows("Toscana") || !national.Allows("Lombardia") {
		t.Fatalf("unrestricted inspector must allow any region")
	}
	if national.Restricted() {
		t.Fatalf("expected unrestricted")
	}
}

func TestCustomerValidate(t *testing.T) {
	c := Customer{ID: "C1", Name: "ACME", WorkHours: 3}
	if err := c.Validate(0.5, 12); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.WorkHours = 20
	if err := c.Validate(0.5, 12); err == nil {
		t.Fatalf("expected out-of-bounds error")
	}
	c = Customer{Name: "no id", WorkHours: 3}
	if err := c.Validate(0.5, 12); err == nil {
		t.Fatalf("expected missing id error")
	}
}
