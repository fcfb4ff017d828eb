package planner

// Split is a 50/30/20 style allocation in whole percentages.
type Split struct {
	Needs   float64
	Wants   float64
	Savings float64
}

// DefaultMonthlyIncome seeds the splitter when no income is known.
const DefaultMonthlyIncome = 5000

func DefaultSplit() Split {
	return Split{Needs: 50, Wants: 30, Savings: 20}
}

// AdjustNeeds sets needs and spreads the remainder over wants and savings in their
// prior ratio. Savings is always the residual.
func AdjustNeeds(prev Split, needs float64) Split {
	needs = Clamp(Round(needs))
	remaining := 100 - needs

	ratio := 0.6
	if other := prev.Wants + prev.Savings; other > 0 {
		ratio = prev.Wants / other
	}
	wants := Round(remaining * ratio)
	if wants > remaining {
		wants = remaining
	}
	if wants < 0 {
		wants = 0
	}
	return Split{Needs: needs, Wants: wants, Savings: remaining - wants}
}

// AdjustWants sets wants within what needs leaves over; savings takes the rest.
func AdjustWants(prev Split, wants float64) Split {
	needs := Clamp(Round(prev.Needs))
	wants = Round(wants)
	if wants < 0 {
		wants = 0
	}
	if wants > 100-needs {
		wants = 100 - needs
	}
	return Split{Needs: needs, Wants: wants, Savings: 100 - needs - wants}
}

// Valid reports whether the split is made of percentages adding up to 100.
func (s Split) Valid() bool {
	for _, v := range []float64{s.Needs, s.Wants, s.Savings} {
		if v < 0 || v > 100 {
			return false
		}
	}
	return s.Needs+s.Wants+s.Savings == 100
}

type Allocation struct {
	Needs   float64
	Wants   float64
	Savings float64
}

func Amounts(income float64, split Split) Allocation {
	return Allocation{
		Needs:   Round(income * split.Needs / 100),
		Wants:   Round(income * split.Wants / 100),
		Savings: Round(income * split.Savings / 100),
	}
}
