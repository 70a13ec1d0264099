package ledger

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"ratecard/internal/model"
)

func TestAddPricesAtCurrentRate(t *testing.T) {
	l, p, err := Add(model.Ledger{}, "Logo", 10, 12.5)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if p.Name != "Logo" || p.Hours != 10 {
		t.Fatalf("project = %+v, want name Logo hours 10", p)
	}
	if math.Abs(p.Price-125) > 1e-9 {
		t.Fatalf("Price = %.2f, want 125", p.Price)
	}
	if p.Status != model.StatusPending {
		t.Fatalf("Status = %v, want pending", p.Status)
	}
	if len(l.Projects) != 1 || l.Projects[0].ID != p.ID {
		t.Fatalf("ledger does not contain the new project: %+v", l.Projects)
	}
}

func TestAddValidation(t *testing.T) {
	orig := model.Ledger{Projects: []model.Project{{ID: 1, Name: "Site", Hours: 4, Price: 50}}}

	cases := []struct {
		name  string
		hours float64
		field string
	}{
		{"", 10, "name"},
		{"   ", 10, "name"},
		{"Logo", math.NaN(), "hours"},
		{"Logo", math.Inf(1), "hours"},
		{"Logo", 0, "hours"},
		{"Logo", -2, "hours"},
	}

	for _, c := range cases {
		got, _, err := Add(orig, c.name, c.hours, 12.5)
		if err == nil {
			t.Fatalf("Add(%q, %v) succeeded, want validation error", c.name, c.hours)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Add(%q, %v) error type = %T, want *ValidationError", c.name, c.hours, err)
		}
		if verr.Field != c.field {
			t.Fatalf("Add(%q, %v) field = %q, want %q", c.name, c.hours, verr.Field, c.field)
		}
		if !reflect.DeepEqual(got, orig) {
			t.Fatalf("ledger changed on rejected add: %+v", got)
		}
	}
}

func TestAddAssignsUniqueMonotonicIDs(t *testing.T) {
	var l model.Ledger
	var prev int64
	for i := 0; i < 5; i++ {
		var p model.Project
		var err error
		l, p, err = Add(l, "Retainer", 1, 10)
		if err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
		if p.ID <= prev {
			t.Fatalf("id %d not greater than previous %d", p.ID, prev)
		}
		prev = p.ID
	}
}

func TestDeleteRemovesOnlyMatch(t *testing.T) {
	l := model.Ledger{Projects: []model.Project{
		{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"},
	}}

	got := Delete(l, 2)
	if len(got.Projects) != 2 {
		t.Fatalf("len = %d, want 2", len(got.Projects))
	}
	if got.Projects[0].ID != 1 || got.Projects[1].ID != 3 {
		t.Fatalf("remaining order = %+v, want [1 3]", got.Projects)
	}
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	l := model.Ledger{Projects: []model.Project{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}}
	got := Delete(l, 99)
	if !reflect.DeepEqual(got.Projects, l.Projects) {
		t.Fatalf("ledger changed on unknown delete: %+v", got.Projects)
	}
}

func TestToggleFlipsBothWays(t *testing.T) {
	l := model.Ledger{Projects: []model.Project{{ID: 7, Name: "Logo", Hours: 10, Price: 125}}}

	l = Toggle(l, 7)
	if l.Projects[0].Status != model.StatusPaid {
		t.Fatalf("status after first toggle = %v, want paid", l.Projects[0].Status)
	}
	pending, paid := Totals(l)
	if pending != 0 || math.Abs(paid-125) > 1e-9 {
		t.Fatalf("totals = (%.2f, %.2f), want (0, 125)", pending, paid)
	}

	l = Toggle(l, 7)
	if l.Projects[0].Status != model.StatusPending {
		t.Fatalf("status after second toggle = %v, want pending", l.Projects[0].Status)
	}

	// Unknown id leaves everything alone.
	got := Toggle(l, 99)
	if !reflect.DeepEqual(got, l) {
		t.Fatalf("ledger changed on unknown toggle: %+v", got)
	}
}

func TestRepriceIdempotent(t *testing.T) {
	l := model.Ledger{Projects: []model.Project{
		{ID: 1, Name: "A", Hours: 10, Price: 100, Status: model.StatusPaid},
		{ID: 2, Name: "B", Hours: 3, Price: 30},
	}}

	once := Reprice(l, 12.5)
	twice := Reprice(once, 12.5)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("Reprice not idempotent:\n once: %+v\ntwice: %+v", once, twice)
	}

	if math.Abs(once.Projects[0].Price-125) > 1e-9 {
		t.Fatalf("Price[0] = %.2f, want 125", once.Projects[0].Price)
	}
	if math.Abs(once.Projects[1].Price-37.5) > 1e-9 {
		t.Fatalf("Price[1] = %.2f, want 37.5", once.Projects[1].Price)
	}

	// Hours, status, ids, and order survive repricing.
	if once.Projects[0].Status != model.StatusPaid || once.Projects[0].Hours != 10 {
		t.Fatalf("project metadata changed: %+v", once.Projects[0])
	}
	if once.Projects[0].ID != 1 || once.Projects[1].ID != 2 {
		t.Fatalf("order changed: %+v", once.Projects)
	}
}

func TestTotalsLaw(t *testing.T) {
	l := model.Ledger{Projects: []model.Project{
		{ID: 1, Hours: 2, Price: 25, Status: model.StatusPending},
		{ID: 2, Hours: 4, Price: 50, Status: model.StatusPaid},
		{ID: 3, Hours: 8, Price: 100, Status: model.StatusPending},
	}}

	pending, paid := Totals(l)
	var sum float64
	for _, p := range l.Projects {
		sum += p.Price
	}
	if math.Abs(pending+paid-sum) > 1e-9 {
		t.Fatalf("pending+paid = %.2f, want price sum %.2f", pending+paid, sum)
	}
	if pending != 125 || paid != 50 {
		t.Fatalf("totals = (%.2f, %.2f), want (125, 50)", pending, paid)
	}
}

func TestTotalsEmptyLedger(t *testing.T) {
	pending, paid := Totals(model.Ledger{})
	if pending != 0 || paid != 0 {
		t.Fatalf("totals = (%.2f, %.2f), want (0, 0)", pending, paid)
	}
}
