package planner

type Income struct {
	Salary      float64
	Investments float64
	Other       float64
}

func DefaultIncome() Income {
	return Income{Salary: 5000, Investments: 200, Other: 0}
}

// IncomeFromTotal distributes a monthly income total 90/8/2 over salary, investments and other.
func IncomeFromTotal(total float64) Income {
	return Income{
		Salary:      Round(total * 0.9),
		Investments: Round(total * 0.08),
		Other:       Round(total * 0.02),
	}
}

func (i Income) Total() float64 {
	return i.Salary + i.Investments + i.Other
}

type Expenses struct {
	Housing        float64
	Food           float64
	Utilities      float64
	Transportation float64
	Entertainment  float64
	Other          float64
}

func DefaultExpenses() Expenses {
	return Expenses{Housing: 1500, Food: 600, Utilities: 200, Transportation: 300, Entertainment: 200, Other: 100}
}

// ExpensesFromTotal distributes a monthly expense total using common household ratios.
func ExpensesFromTotal(total float64) Expenses {
	return Expenses{
		Housing:        Round(total * 0.35),
		Food:           Round(total * 0.15),
		Utilities:      Round(total * 0.1),
		Transportation: Round(total * 0.15),
		Entertainment:  Round(total * 0.1),
		Other:          Round(total * 0.15),
	}
}

func (e Expenses) Total() float64 {
	return e.Housing + e.Food + e.Utilities + e.Transportation + e.Entertainment + e.Other
}

type CashFlow struct {
	Income   Income
	Expenses Expenses
}

func (c CashFlow) Surplus() float64 {
	return c.Income.Total() - c.Expenses.Total()
}

// SavingsRate prefers a non-zero rate reported by the API and otherwise derives it
// from the surplus. No income yields 0.
func SavingsRate(reported, income, surplus float64) float64 {
	if reported != 0 {
		return reported
	}
	if income == 0 {
		return 0
	}
	return Round(surplus / income * 100)
}
