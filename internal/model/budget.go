package model

// Budget is the allocation for one spending category. Spent may exceed Amount.
type Budget struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Spent    float64 `json:"spent"`
	Period   string  `json:"period"`
}

type BudgetsResponse struct {
	Budgets   []Budget `json:"budgets"`
	Total     float64  `json:"total"`
	Spent     float64  `json:"spent"`
	Remaining float64  `json:"remaining"`
}
