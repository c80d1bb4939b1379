package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment is a snapshot of product attributes at purchase time plus the
// invested amount and date. Rows are immutable once created; redeeming only
// sets RedeemedAt. The catalog product may change or disappear later without
// affecting the snapshot.
type Investment struct {
	Base
	ClientID  uint `gorm:"not null;index" json:"client_id"`
	ProductID uint `gorm:"not null;index" json:"product_id"`

	// Product attributes frozen at purchase
	ProductName        string          `gorm:"not null" json:"product_name"`
	ProductType        ProductType     `gorm:"not null" json:"product_type"`
	YieldType          YieldType       `gorm:"not null" json:"yield_type"`
	Index              ReferenceIndex  `gorm:"column:ref_index;not null;default:'none'" json:"index"`
	Rate               decimal.Decimal `gorm:"type:numeric(10,4);not null" json:"rate"`
	LiquidityDays      int             `gorm:"not null" json:"liquidity_days"`
	MinimumHoldingDays int             `gorm:"not null" json:"minimum_holding_days"`
	Guaranteed         bool            `gorm:"not null;default:false" json:"guaranteed"`

	Amount     decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"amount"`
	InvestedAt time.Time       `gorm:"not null" json:"invested_at"`
	RedeemedAt *time.Time      `json:"redeemed_at,omitempty"`

	// Relationships
	Client Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}
