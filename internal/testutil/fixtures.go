package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"investio/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates an operator user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    fmt.Sprintf("operator%d@test.com", nextID()),
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestClient creates a client with a unique document.
func CreateTestClient(t *testing.T, db *gorm.DB) *models.Client {
	t.Helper()

	n := nextID()
	client := &models.Client{
		Name:     fmt.Sprintf("Client %d", n),
		Document: fmt.Sprintf("%011d", n),
		Email:    fmt.Sprintf("client%d@test.com", n),
	}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("failed to create test client: %v", err)
	}
	return client
}

// ProductSpec describes the attributes of a catalog product fixture.
type ProductSpec struct {
	Name               string
	Type               models.ProductType
	YieldType          models.YieldType
	Index              models.ReferenceIndex
	Rate               string
	LiquidityDays      int
	MinimumHoldingDays int
	Guaranteed         bool
}

// CreateTestProduct creates a catalog product from the given spec,
// filling sensible defaults for zero-valued fields.
func CreateTestProduct(t *testing.T, db *gorm.DB, spec ProductSpec) *models.Product {
	t.Helper()

	if spec.Name == "" {
		spec.Name = fmt.Sprintf("Product %d", nextID())
	}
	if spec.Type == "" {
		spec.Type = models.ProductTypeCDB
	}
	if spec.YieldType == "" {
		spec.YieldType = models.YieldTypePreFixed
	}
	if spec.Index == "" {
		spec.Index = models.IndexNone
	}
	if spec.Rate == "" {
		spec.Rate = "10.00"
	}

	product := &models.Product{
		Name:               spec.Name,
		Type:               spec.Type,
		YieldType:          spec.YieldType,
		Index:              spec.Index,
		Rate:               decimal.RequireFromString(spec.Rate),
		LiquidityDays:      spec.LiquidityDays,
		MinimumHoldingDays: spec.MinimumHoldingDays,
		Guaranteed:         spec.Guaranteed,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return product
}

// CreateTestInvestment creates an investment snapshot of the given product
// for the client, invested at the given time.
func CreateTestInvestment(t *testing.T, db *gorm.DB, clientID uint, product *models.Product, amount string, investedAt time.Time) *models.Investment {
	t.Helper()

	investment := &models.Investment{
		ClientID:           clientID,
		ProductID:          product.ID,
		ProductName:        product.Name,
		ProductType:        product.Type,
		YieldType:          product.YieldType,
		Index:              product.Index,
		Rate:               product.Rate,
		LiquidityDays:      product.LiquidityDays,
		MinimumHoldingDays: product.MinimumHoldingDays,
		Guaranteed:         product.Guaranteed,
		Amount:             decimal.RequireFromString(amount),
		InvestedAt:         investedAt,
	}
	if err := db.Create(investment).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return investment
}

// CreateTestSimulation creates a simulation record naming the given product.
func CreateTestSimulation(t *testing.T, db *gorm.DB, clientID uint, productName, amount string) *models.Simulation {
	t.Helper()

	amt := decimal.RequireFromString(amount)
	sim := &models.Simulation{
		ClientID:       clientID,
		ProductName:    productName,
		Amount:         amt,
		TermDays:       365,
		ProjectedValue: amt,
		ProjectedYield: decimal.Zero,
		Narrative:      "test simulation",
		SimulatedAt:    time.Now(),
	}
	if err := db.Create(sim).Error; err != nil {
		t.Fatalf("failed to create test simulation: %v", err)
	}
	return sim
}
