package models

import "github.com/shopspring/decimal"

// ProductType identifies one of the fixed catalog categories. Each type is
// permanently tagged with an income class; the pairing never changes at runtime.
type ProductType string

const (
	ProductTypeCDB            ProductType = "cdb"
	ProductTypeLCI            ProductType = "lci"
	ProductTypeLCA            ProductType = "lca"
	ProductTypeSavings        ProductType = "savings"
	ProductTypeTreasuryDirect ProductType = "treasury_direct"
	ProductTypeDebenture      ProductType = "debenture"
	ProductTypeStock          ProductType = "stock"
	ProductTypeRealEstateFund ProductType = "real_estate_fund"
	ProductTypeEquityFund     ProductType = "equity_fund"
	ProductTypeETF            ProductType = "etf"
	ProductTypeCrypto         ProductType = "crypto"
)

// IncomeClass splits product types into fixed and variable income.
type IncomeClass string

const (
	IncomeClassFixed    IncomeClass = "fixed_income"
	IncomeClassVariable IncomeClass = "variable_income"
)

var productIncomeClasses = map[ProductType]IncomeClass{
	ProductTypeCDB:            IncomeClassFixed,
	ProductTypeLCI:            IncomeClassFixed,
	ProductTypeLCA:            IncomeClassFixed,
	ProductTypeSavings:        IncomeClassFixed,
	ProductTypeTreasuryDirect: IncomeClassFixed,
	ProductTypeDebenture:      IncomeClassFixed,
	ProductTypeStock:          IncomeClassVariable,
	ProductTypeRealEstateFund: IncomeClassVariable,
	ProductTypeEquityFund:     IncomeClassVariable,
	ProductTypeETF:            IncomeClassVariable,
	ProductTypeCrypto:         IncomeClassVariable,
}

// IncomeClass returns the income class permanently tied to the product type.
// The second return is false for values outside the closed type set.
func (t ProductType) IncomeClass() (IncomeClass, bool) {
	class, ok := productIncomeClasses[t]
	return class, ok
}

// YieldType distinguishes pre-fixed contracts from index-tracking ones.
type YieldType string

const (
	YieldTypePreFixed  YieldType = "pre_fixed"
	YieldTypePostFixed YieldType = "post_fixed"
)

// ReferenceIndex is the market index a post-fixed product tracks.
type ReferenceIndex string

const (
	IndexNone  ReferenceIndex = "none"
	IndexCDI   ReferenceIndex = "cdi"
	IndexSelic ReferenceIndex = "selic"
	IndexIPCA  ReferenceIndex = "ipca"
)

// Liquidity sentinel values for Product.LiquidityDays.
const (
	LiquidityNever     = -1 // no redemption before maturity
	LiquidityImmediate = 0  // redeemable any time
)

// RiskTier is the Low/Medium/High classification of a product's investment risk.
// It is derived from the guarantee flag and income class, never stored.
type RiskTier string

const (
	RiskTierLow    RiskTier = "low"
	RiskTierMedium RiskTier = "medium"
	RiskTierHigh   RiskTier = "high"
)

// ProfileCategory is the client-facing label derived from a risk tier.
type ProfileCategory string

const (
	ProfileConservative ProfileCategory = "conservative"
	ProfileModerate     ProfileCategory = "moderate"
	ProfileAggressive   ProfileCategory = "aggressive"
)

// Product represents a catalog entry offered to clients.
type Product struct {
	Base
	Name               string          `gorm:"not null;uniqueIndex" json:"name"`
	Type               ProductType     `gorm:"not null" json:"type"`
	YieldType          YieldType       `gorm:"not null" json:"yield_type"`
	Index              ReferenceIndex  `gorm:"column:ref_index;not null;default:'none'" json:"index"`
	Rate               decimal.Decimal `gorm:"type:numeric(10,4);not null" json:"rate"` // percent per year
	LiquidityDays      int             `gorm:"not null" json:"liquidity_days"`
	MinimumHoldingDays int             `gorm:"not null" json:"minimum_holding_days"`
	Guaranteed         bool            `gorm:"not null;default:false" json:"guaranteed"`

	RiskTier RiskTier `gorm:"-" json:"risk_tier"` // Populated at query time from the guarantee flag and income class
}
