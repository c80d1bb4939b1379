// Package engine implements the financial decision core: product risk
// classification, affinity-based recommendation, client profile aggregation,
// yield taxation, and deposit-guarantee ceiling checks.
//
// Every function in this package is a pure, synchronous computation over
// collections the caller has already loaded. Nothing here touches the
// database, and no shared state is mutated, so concurrent calls are safe as
// long as each call owns its slices.
package engine

import (
	apperrors "investio/internal/errors"
	"investio/internal/models"
)

// ClassifyRisk returns the risk tier for a product's guarantee flag and
// income class. The guarantee dominates every other factor; among
// non-guaranteed products, fixed income is medium risk and variable income
// is high risk.
func ClassifyRisk(guaranteed bool, class models.IncomeClass) (models.RiskTier, error) {
	if guaranteed {
		return models.RiskTierLow, nil
	}
	switch class {
	case models.IncomeClassFixed:
		return models.RiskTierMedium, nil
	case models.IncomeClassVariable:
		return models.RiskTierHigh, nil
	default:
		// Unreachable with the closed product type set; fatal to the call only.
		return "", apperrors.ErrInvalidProductType
	}
}

// ClassifyProduct derives the income class from the product type and
// classifies the product. A type outside the closed set yields
// INVALID_PRODUCT_TYPE.
func ClassifyProduct(p *models.Product) (models.RiskTier, error) {
	class, ok := p.Type.IncomeClass()
	if !ok {
		return "", apperrors.ErrInvalidProductType
	}
	return ClassifyRisk(p.Guaranteed, class)
}

// CategoryForTier maps a risk tier to the client-facing profile category.
func CategoryForTier(tier models.RiskTier) models.ProfileCategory {
	switch tier {
	case models.RiskTierLow:
		return models.ProfileConservative
	case models.RiskTierMedium:
		return models.ProfileModerate
	default:
		return models.ProfileAggressive
	}
}
