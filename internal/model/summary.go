package model

// DashboardSummary bundles accounts, transactions, budgets and goals for one dashboard load.
type DashboardSummary struct {
	Accounts     AccountsSummary     `json:"accounts"`
	Transactions TransactionsSummary `json:"transactions"`
	Budgets      BudgetsSummary      `json:"budgets"`
	Goals        GoalsSummary        `json:"goals"`
	Summary      Totals              `json:"summary"`
}

type AccountsSummary struct {
	Data         []Account `json:"data"`
	TotalBalance float64   `json:"total_balance"`
}

type TransactionsSummary struct {
	Recent []Transaction `json:"recent"`
}

type BudgetsSummary struct {
	Data      []Budget `json:"data"`
	Total     float64  `json:"total"`
	Spent     float64  `json:"spent"`
	Remaining float64  `json:"remaining"`
}

type GoalsSummary struct {
	Data     []Goal  `json:"data"`
	Total    float64 `json:"total"`
	Current  float64 `json:"current"`
	Progress float64 `json:"progress"`
}

type Totals struct {
	NetWorth          float64 `json:"net_worth"`
	IncomeThisMonth   float64 `json:"income_this_month"`
	ExpensesThisMonth float64 `json:"expenses_this_month"`
	SavingsRate       float64 `json:"savings_rate"`
}
