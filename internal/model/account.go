package model

type Account struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

type AccountsResponse struct {
	Accounts     []Account `json:"accounts"`
	TotalBalance float64   `json:"total_balance"`
}
