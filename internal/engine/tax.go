package engine

import "github.com/shopspring/decimal"

// Statutory tax brackets are ordered threshold tables: the first entry whose
// MaxDays covers the holding period wins. Keeping them as tables makes the
// 180/360/720 boundaries auditable and trivially extensible.
type taxBracket struct {
	MaxDays int // inclusive upper bound; -1 means no bound
	Rate    decimal.Decimal
}

var incomeTaxBrackets = []taxBracket{
	{MaxDays: 180, Rate: decimal.RequireFromString("22.5")},
	{MaxDays: 360, Rate: decimal.RequireFromString("20")},
	{MaxDays: 720, Rate: decimal.RequireFromString("17.5")},
	{MaxDays: -1, Rate: decimal.RequireFromString("15")},
}

// Transaction tax: applies only below the 30-day cutoff, decreasing linearly
// from 96% on day 1 to zero at the cutoff.
var (
	transactionTaxCutoffDays = 30
	transactionTaxBaseRate   = decimal.RequireFromString("96")
	transactionTaxDailyStep  = decimal.RequireFromString("3.33")
)

var oneHundred = decimal.NewFromInt(100)

// IncomeTaxRate returns the regressive income tax rate (percent) for the
// given holding period in days.
func IncomeTaxRate(holdingDays int) decimal.Decimal {
	for _, b := range incomeTaxBrackets {
		if b.MaxDays < 0 || holdingDays <= b.MaxDays {
			return b.Rate
		}
	}
	// The table ends with an unbounded bracket, so this is unreachable.
	return decimal.Zero
}

// IncomeTax computes the income tax due on a yield amount held for the given
// number of days. Non-positive yields are never taxed. The result is rounded
// half-up to 2 decimal places.
func IncomeTax(yield decimal.Decimal, holdingDays int) decimal.Decimal {
	if yield.Sign() <= 0 {
		return decimal.Zero.Round(2)
	}
	rate := IncomeTaxRate(holdingDays)
	return yield.Mul(rate).Div(oneHundred).Round(2)
}

// TransactionTaxRate returns the transaction tax rate (percent) for the given
// holding period. Negative intermediate rates clamp to zero.
func TransactionTaxRate(holdingDays int) decimal.Decimal {
	if holdingDays >= transactionTaxCutoffDays {
		return decimal.Zero
	}
	if holdingDays < 1 {
		return transactionTaxBaseRate
	}
	elapsed := decimal.NewFromInt(int64(holdingDays - 1))
	rate := transactionTaxBaseRate.Sub(transactionTaxDailyStep.Mul(elapsed))
	if rate.Sign() < 0 {
		return decimal.Zero
	}
	return rate
}

// TransactionTax computes the transaction tax due on a yield amount redeemed
// before the 30-day cutoff. Rounded half-up to 2 decimal places.
func TransactionTax(yield decimal.Decimal, holdingDays int) decimal.Decimal {
	if yield.Sign() <= 0 {
		return decimal.Zero.Round(2)
	}
	rate := TransactionTaxRate(holdingDays)
	return yield.Mul(rate).Div(oneHundred).Round(2)
}

// NetYield returns the gross yield minus income tax and transaction tax.
func NetYield(grossYield decimal.Decimal, holdingDays int) decimal.Decimal {
	return grossYield.
		Sub(IncomeTax(grossYield, holdingDays)).
		Sub(TransactionTax(grossYield, holdingDays))
}
