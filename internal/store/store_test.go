package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"ratecard/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadEmptyStore(t *testing.T) {
	s := openTestStore(t)

	_, found, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Fatal("found = true on a fresh store, want false")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	st := model.State{
		Inputs: model.FinancialInputs{
			Income:         3000,
			Expenses:       450.50,
			TaxRatePercent: 19,
			HoursPerDay:    6,
			DaysPerWeek:    5,
			Currency:       "EUR",
		},
		HourlyRate: 35.48,
		Ledger: model.Ledger{Projects: []model.Project{
			{ID: 101, Name: "Logo", Hours: 10, Price: 354.8, Status: model.StatusPending},
			{ID: 102, Name: "Website", Hours: 40, Price: 1419.2, Status: model.StatusPaid},
		}},
	}

	if err := s.Save(st); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, found, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatal("found = false after save, want true")
	}
	if !reflect.DeepEqual(got, st) {
		t.Fatalf("round trip mismatch:\n got: %+v\nwant: %+v", got, st)
	}
}

func TestSaveOverwritesPrevious(t *testing.T) {
	s := openTestStore(t)

	first := model.DefaultState()
	first.Ledger.Projects = []model.Project{
		{ID: 1, Name: "A", Hours: 1, Price: 10},
		{ID: 2, Name: "B", Hours: 2, Price: 20},
	}
	if err := s.Save(first); err != nil {
		t.Fatalf("Save first: %v", err)
	}

	second := first
	second.Inputs.Income = 5000
	second.Ledger.Projects = []model.Project{{ID: 3, Name: "C", Hours: 3, Price: 30}}
	if err := s.Save(second); err != nil {
		t.Fatalf("Save second: %v", err)
	}

	got, _, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Ledger.Projects) != 1 || got.Ledger.Projects[0].ID != 3 {
		t.Fatalf("projects after overwrite = %+v, want only id 3", got.Ledger.Projects)
	}
	if got.Inputs.Income != 5000 {
		t.Fatalf("income = %.2f, want 5000", got.Inputs.Income)
	}

	count, err := s.ProjectCount()
	if err != nil {
		t.Fatalf("ProjectCount: %v", err)
	}
	if count != 1 {
		t.Fatalf("ProjectCount = %d, want 1", count)
	}
}

func TestLoadPreservesInsertionOrder(t *testing.T) {
	s := openTestStore(t)

	st := model.DefaultState()
	st.Ledger.Projects = []model.Project{
		{ID: 900, Name: "newest-id-first", Hours: 1, Price: 1},
		{ID: 5, Name: "oldest-id-second", Hours: 2, Price: 2},
		{ID: 42, Name: "middle-id-third", Hours: 3, Price: 3},
	}
	if err := s.Save(st); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, _, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i, want := range []int64{900, 5, 42} {
		if got.Ledger.Projects[i].ID != want {
			t.Fatalf("position %d has id %d, want %d (insertion order, not id order)",
				i, got.Ledger.Projects[i].ID, want)
		}
	}
}
