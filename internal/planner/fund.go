package planner

const (
	EmergencyMonths      = 6
	EmergencyBuildMonths = 12

	// Assumed-return discount factors applied to the plain monthly requirement.
	EmergencyReturnFactor = 1.0
	MarriageReturnFactor  = 0.85
	ChildrenReturnFactor  = 0.8
)

// FundPlan describes a savings target to reach over Months.
type FundPlan struct {
	Target       float64
	Current      float64
	Months       float64
	ReturnFactor float64
}

type Projection struct {
	Target    float64
	Remaining float64
	Progress  float64
	Monthly   float64
}

// Project computes progress and the monthly contribution still needed.
// With no months left the whole remainder is due at once.
func Project(p FundPlan) Projection {
	remaining := p.Target - p.Current
	if remaining < 0 {
		remaining = 0
	}

	var progress float64
	switch {
	case p.Target > 0:
		progress = Clamp(Round(p.Current / p.Target * 100))
	case p.Current > 0:
		progress = 100
	}

	factor := p.ReturnFactor
	if factor <= 0 {
		factor = 1
	}
	var monthly float64
	switch {
	case remaining == 0:
	case p.Months <= 0:
		monthly = Ceil(remaining)
	default:
		monthly = Ceil(remaining / p.Months / factor)
	}

	return Projection{Target: p.Target, Remaining: remaining, Progress: progress, Monthly: monthly}
}

type EmergencyInput struct {
	MonthlyExpenses float64
	CurrentSavings  float64
	BuildMonths     float64
}

func DefaultEmergency() EmergencyInput {
	return EmergencyInput{MonthlyExpenses: 3000, CurrentSavings: 5000, BuildMonths: EmergencyBuildMonths}
}

func Emergency(in EmergencyInput) Projection {
	return Project(FundPlan{
		Target:       in.MonthlyExpenses * EmergencyMonths,
		Current:      in.CurrentSavings,
		Months:       in.BuildMonths,
		ReturnFactor: EmergencyReturnFactor,
	})
}

type MarriageInput struct {
	TargetAmount   float64
	Years          float64
	CurrentSavings float64
}

func DefaultMarriage() MarriageInput {
	return MarriageInput{TargetAmount: 50000, Years: 3, CurrentSavings: 5000}
}

func Marriage(in MarriageInput) Projection {
	return Project(FundPlan{
		Target:       in.TargetAmount,
		Current:      in.CurrentSavings,
		Months:       in.Years * 12,
		ReturnFactor: MarriageReturnFactor,
	})
}

type ChildrenInput struct {
	ChildAge       float64
	TargetAge      float64
	TargetAmount   float64
	CurrentSavings float64
}

func DefaultChildren() ChildrenInput {
	return ChildrenInput{ChildAge: 5, TargetAge: 18, TargetAmount: 100000, CurrentSavings: 10000}
}

func Children(in ChildrenInput) Projection {
	return Project(FundPlan{
		Target:       in.TargetAmount,
		Current:      in.CurrentSavings,
		Months:       (in.TargetAge - in.ChildAge) * 12,
		ReturnFactor: ChildrenReturnFactor,
	})
}
