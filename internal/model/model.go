// Package model defines the core data types for ratecard.
package model

// FinancialInputs holds the monthly financial parameters the hourly
// rate is derived from.
type FinancialInputs struct {
	Income         float64
	Expenses       float64
	TaxRatePercent float64
	HoursPerDay    float64
	DaysPerWeek    float64
	Currency       string
}

// Project is a single tracked engagement priced at the hourly rate.
type Project struct {
	ID     int64
	Name   string
	Hours  float64
	Price  float64 // Hours * hourly rate at last repricing
	Status Status
}

// Ledger is the insertion-ordered collection of projects.
type Ledger struct {
	Projects []Project
}

// State is the full persisted application state: financial inputs,
// the cached hourly rate derived from them, and the project ledger.
type State struct {
	Inputs     FinancialInputs
	HourlyRate float64
	Ledger     Ledger
}

// DefaultState returns the state used when nothing has been saved yet.
func DefaultState() State {
	return State{
		Inputs: FinancialInputs{
			Currency:    "USD",
			HoursPerDay: 6,
			DaysPerWeek: 5,
		},
	}
}
