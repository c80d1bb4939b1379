package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Simulation is a hypothetical investment a client ran without committing
// funds. Simulations stand in for real history when profiling a client who
// has never invested.
type Simulation struct {
	Base
	ClientID       uint            `gorm:"not null;index" json:"client_id"`
	ProductName    string          `gorm:"not null" json:"product_name"`
	Amount         decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"amount"`
	TermDays       int             `gorm:"not null" json:"term_days"`
	ProjectedValue decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"projected_value"`
	ProjectedYield decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"projected_yield"`
	Narrative      string          `gorm:"not null" json:"narrative"`
	Stochastic     bool            `gorm:"not null;default:false" json:"stochastic"` // true when the numbers rest on estimated index rates
	SimulatedAt    time.Time       `gorm:"not null" json:"simulated_at"`
}
