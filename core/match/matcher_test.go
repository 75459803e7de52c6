package match

import (
	"testing"

	"github.com/fieldplan/tourplan/core/model"
)

func customers() []model.Customer {
	return []model.Customer{
		{ID: "C1", Name: "Forma Cucine SPA", Address: "Via Roma 1", Region: "Veneto"},
		{ID: "C2", Name: "Scaffali Nord", Address: "Via Milano 4", Region: "Lombardia"},
	}
}

func TestMatchExact(t *testing.T) {
	orders := []model.Order{
		{ID: "O1", CustomerName: "  forma   cucine spa ", SiteAddress: "VIA ROMA 1"},
		{ID: "O2", CustomerName: "Scaffali Nord", SiteAddress: "via milano 4"},
	}
	matched, unmatched := Match(customers(), orders)
	if len(matched) != 2 || len(unmatched) != 0 {
		t.Fatalf("got %d matched, %d unmatched", len(matched), len(unmatched))
	}
	if matched[0].Customer.ID != "C1" || matched[0].ID != "O1" {
		t.Errorf("O1 matched to %s", matched[0].Customer.ID)
	}
	if matched[1].Customer.ID != "C2" {
		t.Errorf("O2 matched to %s", matched[1].Customer.ID)
	}
}

func TestMatchUnknownOrderReported(t *testing.T) {
	orders := []model.Order{
		{ID: "O1", CustomerName: "Altro Cliente", SiteAddress: "Via Ignota 9"},
		{ID: "O2", CustomerName: "Scaffali Nord", SiteAddress: "Via Milano 4"},
	}
	matched, unmatched := Match(customers(), orders)
	if len(matched) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matched))
	}
	if len(unmatched) != 1 || unmatched[0].ID != "O1" {
		t.Fatalf("expected O1 unmatched, got %v", unmatched)
	}
}

func TestMatchAmbiguousKeyReported(t *testing.T) {
	// Two customers sharing the same normalized key: the order must not be
	// silently bound to either of them.
	cs := append(customers(), model.Customer{
		ID: "C3", Name: "FORMA CUCINE SPA", Address: "via roma 1", Region: "Lazio",
	})
	orders := []model.Order{
		{ID: "O1", CustomerName: "Forma Cucine SPA", SiteAddress: "Via Roma 1"},
	}
	matched, unmatched := Match(cs, orders)
	if len(matched) != 0 {
		t.Fatalf("ambiguous order must not match, got %d", len(matched))
	}
	if len(unmatched) != 1 || unmatched[0].ID != "O1" {
		t.Fatalf("expected O1 reported, got %v", unmatched)
	}
}

func TestMatchEmptyInputs(t *testing.T) {
	matched, unmatched := Match(nil, nil)
	if len(matched) != 0 || len(unmatched) != 0 {
		t.Fatalf("expected empty results")
	}
}
