package models

import (
	"investio/internal/uuid"

	"gorm.io/gorm"
)

// Client represents a bank client whose investments are managed by the API.
type Client struct {
	Base
	ExternalKey string `gorm:"size:36;uniqueIndex" json:"external_key"`
	Name        string `gorm:"not null" json:"name"`
	Document    string `gorm:"not null;uniqueIndex" json:"document"`
	Email       string `gorm:"not null" json:"email"`

	// Relationships
	Investments []Investment `gorm:"foreignKey:ClientID" json:"investments,omitempty"`
	Simulations []Simulation `gorm:"foreignKey:ClientID" json:"simulations,omitempty"`
}

// BeforeCreate hook generates a UUIDv7 external key for new clients
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ExternalKey == "" {
		c.ExternalKey = uuid.New()
	}
	return nil
}
