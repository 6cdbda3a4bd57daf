package domain

import "github.com/shopspring/decimal"

// Plan is an investment plan with its daily simple-interest rate.
type Plan struct {
	Name      string          `json:"name"`
	DailyRate decimal.Decimal `json:"dailyRate"`
}

// PlanTable is an immutable snapshot of the configured plans, consulted only
// at investment-open time. Rates already snapshotted onto investments are
// unaffected by table changes.
type PlanTable map[string]decimal.Decimal

// Rate returns the daily rate for a plan name.
func (t PlanTable) Rate(name string) (decimal.Decimal, bool) {
	rate, ok := t[name]
	return rate, ok
}

// Plans returns the table as a slice for listing endpoints.
func (t PlanTable) Plans() []Plan {
	plans := make([]Plan, 0, len(t))
	for name, rate := range t {
		plans = append(plans, Plan{Name: name, DailyRate: rate})
	}
	return plans
}
