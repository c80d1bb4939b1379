package engine

import (
	"github.com/shopspring/decimal"

	"investio/internal/models"
)

// CoverageBucket is an independent deposit-guarantee ceiling. Bank CDs count
// against the general bucket, mortgage and agribusiness letters share the
// letters bucket, and savings has its own.
type CoverageBucket string

const (
	BucketNone    CoverageBucket = ""
	BucketGeneral CoverageBucket = "general"
	BucketLetters CoverageBucket = "letters"
	BucketSavings CoverageBucket = "savings"
)

// GuaranteeCeiling is the flat per-bucket coverage cap in currency units.
var GuaranteeCeiling = decimal.RequireFromString("250000.00")

var guaranteeBuckets = map[models.ProductType]CoverageBucket{
	models.ProductTypeCDB:     BucketGeneral,
	models.ProductTypeLCI:     BucketLetters,
	models.ProductTypeLCA:     BucketLetters,
	models.ProductTypeSavings: BucketSavings,
}

// GuaranteeBucket returns the coverage bucket for a product type, or
// BucketNone for types outside the guarantee allow-list.
func GuaranteeBucket(t models.ProductType) CoverageBucket {
	return guaranteeBuckets[t]
}

// BucketProductTypes returns the product types whose exposure counts against
// the given bucket. Callers use it to aggregate a client's held exposure.
func BucketProductTypes(bucket CoverageBucket) []models.ProductType {
	types := make([]models.ProductType, 0, 2)
	for t, b := range guaranteeBuckets {
		if b == bucket {
			types = append(types, t)
		}
	}
	return types
}

// WithinGuaranteeLimit reports whether adding amount to the client's current
// exposure in the bucket stays within the coverage ceiling. Products outside
// the allow-list (BucketNone) always pass.
func WithinGuaranteeLimit(bucket CoverageBucket, exposure, amount decimal.Decimal) bool {
	if bucket == BucketNone {
		return true
	}
	return exposure.Add(amount).LessThanOrEqual(GuaranteeCeiling)
}
