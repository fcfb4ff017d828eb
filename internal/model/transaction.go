package model

import (
	"strconv"
	"time"
)

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction is one record of expenses or income
type Transaction struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Type        string  `json:"type"` // expense or income
}

func (t Transaction) IsIncome() bool {
	return t.Type == TransactionIncome
}

// Time parses the ISO timestamp sent by the API. The zero time is returned for unparsable dates.
func (t Transaction) Time() time.Time {
	return parseISO(t.Date)
}

type TransactionsParams struct {
	Limit    int
	Skip     int
	Category string
	Type     string
}

// Key identifies a parameter set, used to hold one transactions page per filter.
func (p TransactionsParams) Key() string {
	return strconv.Itoa(p.Limit) + "|" + strconv.Itoa(p.Skip) + "|" + p.Category + "|" + p.Type
}

type TransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
	TotalCount   int           `json:"total_count"`
	CurrentPage  int           `json:"current_page"`
	TotalPages   int           `json:"total_pages"`
}

func parseISO(value string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
