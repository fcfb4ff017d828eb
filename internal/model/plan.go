package model

import "time"

// Plan kinds, one per planner page.
const (
	PlanBudget   = "budget"
	PlanCashFlow = "cashflow"
	PlanSafety   = "safety"
	PlanChildren = "children"
	PlanMarriage = "marriage"
)

// Plan holds the inputs a user saved on a planner page.
type Plan struct {
	UserID    string             `bson:"user"`
	Kind      string             `bson:"kind"`
	Fields    map[string]float64 `bson:"fields"`
	UpdatedAt time.Time          `bson:"updated_at"`
}
