package rate

import (
	"math"
	"testing"

	"ratecard/internal/model"
)

func TestComputeWithTaxBuffer(t *testing.T) {
	in := model.FinancialInputs{
		Income:         1000,
		TaxRatePercent: 20,
		HoursPerDay:    5,
		DaysPerWeek:    5,
	}

	b := Explain(in)
	if b.NetMonthlyNeed != 1000 {
		t.Fatalf("NetMonthlyNeed = %.2f, want 1000", b.NetMonthlyNeed)
	}
	if math.Abs(b.GrossMonthlyNeed-1250) > 1e-9 {
		t.Fatalf("GrossMonthlyNeed = %.2f, want 1250", b.GrossMonthlyNeed)
	}
	if b.TotalHoursPerMonth != 100 {
		t.Fatalf("TotalHoursPerMonth = %.2f, want 100", b.TotalHoursPerMonth)
	}
	if math.Abs(b.HourlyRate-12.5) > 1e-9 {
		t.Fatalf("HourlyRate = %.2f, want 12.5", b.HourlyRate)
	}
	if !b.TaxApplied {
		t.Fatal("TaxApplied = false, want true for 20%% tax")
	}
}

func TestComputeZeroHoursGuard(t *testing.T) {
	in := model.FinancialInputs{
		Income:      0,
		Expenses:    0,
		HoursPerDay: 0,
		DaysPerWeek: 5,
	}
	if got := Compute(in); got != 0 {
		t.Fatalf("Compute with zero hours = %.2f, want 0", got)
	}

	// Nonzero need still yields 0 when no hours are available.
	in.Income = 5000
	if got := Compute(in); got != 0 {
		t.Fatalf("Compute with income but zero hours = %.2f, want 0", got)
	}
}

func TestComputeTaxOutOfRangeIsNoOp(t *testing.T) {
	base := model.FinancialInputs{
		Income:      2000,
		Expenses:    500,
		HoursPerDay: 5,
		DaysPerWeek: 5,
	}

	for _, tax := range []float64{0, -10, 100, 150} {
		in := base
		in.TaxRatePercent = tax
		b := Explain(in)
		if b.GrossMonthlyNeed != b.NetMonthlyNeed {
			t.Fatalf("tax %.0f: GrossMonthlyNeed = %.2f, want net %.2f unchanged",
				tax, b.GrossMonthlyNeed, b.NetMonthlyNeed)
		}
		if b.TaxApplied {
			t.Fatalf("tax %.0f: TaxApplied = true, want false", tax)
		}
		if b.TaxBuffer != 0 {
			t.Fatalf("tax %.0f: TaxBuffer = %.2f, want 0", tax, b.TaxBuffer)
		}
	}
}

func TestComputeAlwaysFiniteNonNegative(t *testing.T) {
	incomes := []float64{0, 1, 999.99, 12000}
	taxes := []float64{0, 15, 42.5, 99.9}
	hours := []float64{0, 1, 6, 12}
	days := []float64{0, 3, 5, 7}

	for _, inc := range incomes {
		for _, tax := range taxes {
			for _, h := range hours {
				for _, d := range days {
					got := Compute(model.FinancialInputs{
						Income:         inc,
						Expenses:       inc / 2,
						TaxRatePercent: tax,
						HoursPerDay:    h,
						DaysPerWeek:    d,
					})
					if math.IsNaN(got) || math.IsInf(got, 0) {
						t.Fatalf("income=%.2f tax=%.1f h=%.0f d=%.0f: rate not finite: %v",
							inc, tax, h, d, got)
					}
					if got < 0 {
						t.Fatalf("income=%.2f tax=%.1f h=%.0f d=%.0f: rate = %.2f, want >= 0",
							inc, tax, h, d, got)
					}
				}
			}
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1250", 1250},
		{" 12.5 ", 12.5},
		{"-300", -300},
		{"", 0},
		{"abc", 0},
		{"12,5", 0},
		{"NaN", 0},
		{"Inf", 0},
	}
	for _, c := range cases {
		if got := ParseAmount(c.in); got != c.want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
