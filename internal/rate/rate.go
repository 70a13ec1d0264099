// Package rate derives an hourly billing rate from monthly financial
// inputs: target income plus expenses, grossed up to cover a tax
// buffer, spread over the billable hours in a month.
package rate

import (
	"math"
	"strconv"
	"strings"

	"ratecard/internal/model"
)

// weeksPerMonth is a fixed 4-week month approximation, not a calendar
// computation.
const weeksPerMonth = 4

// Breakdown holds the intermediate values of a rate derivation, for
// display alongside the final rate.
type Breakdown struct {
	NetMonthlyNeed     float64
	GrossMonthlyNeed   float64
	TaxBuffer          float64 // gross minus net
	TotalHoursPerMonth float64
	HourlyRate         float64
	TaxApplied         bool // false when the tax rate is outside (0, 100)
}

// Compute returns the hourly rate for the given inputs.
// Inputs are assumed normalized (no NaN); use ParseAmount on raw user
// input. Zero available hours yields a rate of exactly 0.
func Compute(in model.FinancialInputs) float64 {
	return Explain(in).HourlyRate
}

// Explain computes the hourly rate and returns the full breakdown.
func Explain(in model.FinancialInputs) Breakdown {
	b := Breakdown{
		NetMonthlyNeed: in.Income + in.Expenses,
	}

	// Reverse-tax grossing: net / (1 - tax/100). Rates outside the
	// open interval (0, 100) make the buffer a no-op rather than a
	// division by zero or a negative multiplier.
	b.GrossMonthlyNeed = b.NetMonthlyNeed
	if in.TaxRatePercent > 0 && in.TaxRatePercent < 100 {
		b.GrossMonthlyNeed = b.NetMonthlyNeed / (1 - in.TaxRatePercent/100)
		b.TaxApplied = true
	}
	b.TaxBuffer = b.GrossMonthlyNeed - b.NetMonthlyNeed

	b.TotalHoursPerMonth = in.HoursPerDay * in.DaysPerWeek * weeksPerMonth
	if b.TotalHoursPerMonth > 0 {
		b.HourlyRate = b.GrossMonthlyNeed / b.TotalHoursPerMonth
	}

	return b
}

// ParseAmount parses a numeric user input field. Empty, unparseable,
// or non-finite values normalize to 0 so the rate stays computable.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
