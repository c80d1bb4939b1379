package services

import (
	"time"

	"github.com/shopspring/decimal"

	"investio/internal/engine"
	"investio/internal/models"
	"investio/internal/pagination"
)

// UserServicer defines the contract for operator account business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// ClientServicer defines the contract for client record business logic.
type ClientServicer interface {
	CreateClient(name, document, email string) (*models.Client, error)
	GetClients(page pagination.PageRequest) (*pagination.PageResponse[models.Client], error)
	GetClientByID(id uint) (*models.Client, error)
	UpdateClient(id uint, name, email string) (*models.Client, error)
	DeleteClient(id uint) error
}

// ProductInput holds the attributes for creating or updating a catalog product.
type ProductInput struct {
	Name               string
	Type               models.ProductType
	YieldType          models.YieldType
	Index              models.ReferenceIndex
	Rate               decimal.Decimal
	LiquidityDays      int
	MinimumHoldingDays int
	Guaranteed         bool
}

// ProductServicer defines the contract for product catalog business logic.
type ProductServicer interface {
	CreateProduct(input ProductInput) (*models.Product, error)
	GetProducts(page pagination.PageRequest) (*pagination.PageResponse[models.Product], error)
	GetProductByID(id uint) (*models.Product, error)
	UpdateProduct(id uint, input ProductInput) (*models.Product, error)
	DeleteProduct(id uint) error
	GetCatalog() ([]models.Product, error)
}

// RedemptionStatement breaks down the amounts paid out when an investment is
// redeemed. Estimated is true when the gross yield rests on fallback index
// rates rather than a contracted pre-fixed rate.
type RedemptionStatement struct {
	Investment     *models.Investment `json:"investment"`
	HoldingDays    int                `json:"holding_days"`
	GrossYield     decimal.Decimal    `json:"gross_yield"`
	IncomeTax      decimal.Decimal    `json:"income_tax"`
	TransactionTax decimal.Decimal    `json:"transaction_tax"`
	NetYield       decimal.Decimal    `json:"net_yield"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	Estimated      bool               `json:"estimated"`
}

// InvestmentServicer defines the contract for investment business logic.
type InvestmentServicer interface {
	CreateInvestment(clientID, productID uint, amount decimal.Decimal, investedAt *time.Time) (*models.Investment, error)
	GetClientInvestments(clientID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error)
	GetInvestmentByID(id uint) (*models.Investment, error)
	Redeem(investmentID uint, at time.Time) (*RedemptionStatement, error)
}

// SimulationServicer defines the contract for simulation business logic.
type SimulationServicer interface {
	Simulate(clientID, productID uint, amount decimal.Decimal, termDays int) (*models.Simulation, error)
	GetClientSimulations(clientID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Simulation], error)
}

// ProfileServicer defines the contract for client risk profiling.
type ProfileServicer interface {
	GetRecommendations(clientID uint) ([]engine.ScoredProduct, error)
	GetProfile(clientID uint) (*engine.ProfileVerdict, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
