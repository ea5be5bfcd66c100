// Package salary implements the payroll formulas: progressive income tax,
// social insurance withholding and net pay. All functions are pure and use
// exact decimal arithmetic, so bracket boundaries line up to the cent.
//
// Inputs are expected to be non-negative; validation happens in the models
// package before any amount reaches this code.
package salary

import "github.com/shopspring/decimal"

// Bracket is one step of the progressive tax table. Income above Floor is
// taxed at Rate, on top of Base (the tax due at Floor itself).
type Bracket struct {
	Floor decimal.Decimal
	Rate  decimal.Decimal
	Base  decimal.Decimal
}

// TaxBrackets is ordered by ascending Floor. Income up to the first Floor is
// tax free.
var TaxBrackets = []Bracket{
	{Floor: decimal.NewFromInt(5000), Rate: decimal.RequireFromString("0.03"), Base: decimal.Zero},
	{Floor: decimal.NewFromInt(8000), Rate: decimal.RequireFromString("0.10"), Base: decimal.NewFromInt(90)},
	{Floor: decimal.NewFromInt(17000), Rate: decimal.RequireFromString("0.20"), Base: decimal.NewFromInt(990)},
	{Floor: decimal.NewFromInt(30000), Rate: decimal.RequireFromString("0.25"), Base: decimal.NewFromInt(3590)},
}

// Insurance contribution rates, withheld from the base salary only.
var (
	PensionRate      = decimal.RequireFromString("0.08")
	MedicalRate      = decimal.RequireFromString("0.02")
	UnemploymentRate = decimal.RequireFromString("0.005")
)

// NetSalary returns base + bonus - insurance - tax, never below zero.
func NetSalary(base, bonus, insurance, tax decimal.Decimal) decimal.Decimal {
	net := base.Add(bonus).Sub(insurance).Sub(tax)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

// Tax applies TaxBrackets to base + bonus. A bracket starts strictly above
// its Floor, so income equal to a Floor is taxed by the bracket below.
func Tax(base, bonus decimal.Decimal) decimal.Decimal {
	income := base.Add(bonus)
	for i := len(TaxBrackets) - 1; i >= 0; i-- {
		b := TaxBrackets[i]
		if income.GreaterThan(b.Floor) {
			return income.Sub(b.Floor).Mul(b.Rate).Add(b.Base)
		}
	}
	return decimal.Zero
}

// InsuranceRate is the combined withholding rate (10.5%).
func InsuranceRate() decimal.Decimal {
	return PensionRate.Add(MedicalRate).Add(UnemploymentRate)
}

// Insurance is the social insurance withheld from base.
func Insurance(base decimal.Decimal) decimal.Decimal {
	return base.Mul(InsuranceRate())
}

// Breakdown holds the derived amounts of one pay line.
type Breakdown struct {
	Insurance decimal.Decimal
	Tax       decimal.Decimal
	Net       decimal.Decimal
}

// Compute derives insurance, tax and net pay from base and bonus.
func Compute(base, bonus decimal.Decimal) Breakdown {
	ins := Insurance(base)
	tax := Tax(base, bonus)
	return Breakdown{
		Insurance: ins,
		Tax:       tax,
		Net:       NetSalary(base, bonus, ins, tax),
	}
}
