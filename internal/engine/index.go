package engine

import (
	"github.com/shopspring/decimal"

	"investio/internal/models"
)

// Static fallback reference-index rates (percent per year). There is no
// market-data integration; post-fixed projections built on these values are
// estimates and must be flagged as stochastic.
var fallbackIndexRates = map[models.ReferenceIndex]decimal.Decimal{
	models.IndexCDI:   decimal.RequireFromString("10.65"),
	models.IndexSelic: decimal.RequireFromString("10.75"),
	models.IndexIPCA:  decimal.RequireFromString("4.50"),
}

// FallbackIndexRate returns the static annual rate for a reference index.
// The second return is false for IndexNone or unknown indexes.
func FallbackIndexRate(ix models.ReferenceIndex) (decimal.Decimal, bool) {
	rate, ok := fallbackIndexRates[ix]
	return rate, ok
}

// EffectiveAnnualRate resolves a product's nominal rate to an annual
// percentage. Pre-fixed contracts use the nominal rate directly; post-fixed
// contracts pay the nominal rate as a percentage of the tracked index
// (e.g. 110 means 110% of CDI). The second return reports whether the result
// rests on a fallback index estimate.
func EffectiveAnnualRate(yieldType models.YieldType, ix models.ReferenceIndex, nominal decimal.Decimal) (decimal.Decimal, bool) {
	if yieldType != models.YieldTypePostFixed {
		return nominal, false
	}
	indexRate, ok := FallbackIndexRate(ix)
	if !ok {
		return nominal, false
	}
	return indexRate.Mul(nominal).Div(oneHundred), true
}

// ProRataYield computes simple pro-rata yield for an amount held at an
// annual rate for the given number of days. The result is rounded half-up to
// 2 decimal places.
func ProRataYield(amount, annualRate decimal.Decimal, days int) decimal.Decimal {
	if days <= 0 || amount.Sign() <= 0 {
		return decimal.Zero.Round(2)
	}
	return amount.
		Mul(annualRate).Div(oneHundred).
		Mul(decimal.NewFromInt(int64(days))).Div(decimal.NewFromInt(365)).
		Round(2)
}
