package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"investio/internal/engine"
	apperrors "investio/internal/errors"
	"investio/internal/models"
	"investio/internal/pagination"
)

// simulationService handles simulation business logic.
type simulationService struct {
	db             *gorm.DB
	clientService  ClientServicer
	productService ProductServicer
}

// NewSimulationService creates a new SimulationServicer.
func NewSimulationService(db *gorm.DB, clientService ClientServicer, productService ProductServicer) SimulationServicer {
	return &simulationService{db: db, clientService: clientService, productService: productService}
}

// Simulate projects the outcome of investing an amount in a product for a
// term, without committing funds. Post-fixed products are projected on
// static fallback index rates and the record is flagged stochastic.
func (s *simulationService) Simulate(clientID, productID uint, amount decimal.Decimal, termDays int) (*models.Simulation, error) {
	if amount.Sign() <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be positive")
	}
	if termDays <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Term must be at least one day")
	}

	if _, err := s.clientService.GetClientByID(clientID); err != nil {
		return nil, err
	}
	product, err := s.productService.GetProductByID(productID)
	if err != nil {
		return nil, err
	}

	rate, estimated := engine.EffectiveAnnualRate(product.YieldType, product.Index, product.Rate)
	projectedYield := engine.ProRataYield(amount, rate, termDays)
	projectedValue := amount.Add(projectedYield)

	narrative := fmt.Sprintf(
		"Investing %s in %s for %d days projects a final value of %s, a gross yield of %s.",
		amount.StringFixed(2), product.Name, termDays,
		projectedValue.StringFixed(2), projectedYield.StringFixed(2),
	)
	if estimated {
		narrative += " The projection uses reference index estimates and the realized yield may differ."
	}

	sim := &models.Simulation{
		ClientID:       clientID,
		ProductName:    product.Name,
		Amount:         amount,
		TermDays:       termDays,
		ProjectedValue: projectedValue,
		ProjectedYield: projectedYield,
		Narrative:      narrative,
		Stochastic:     estimated,
		SimulatedAt:    time.Now(),
	}
	if err := s.db.Create(sim).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return sim, nil
}

// GetClientSimulations returns a paginated list of a client's simulations.
func (s *simulationService) GetClientSimulations(clientID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Simulation], error) {
	if _, err := s.clientService.GetClientByID(clientID); err != nil {
		return nil, err
	}

	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Simulation{}).Where("client_id = ?", clientID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var simulations []models.Simulation
	if err := s.db.Where("client_id = ?", clientID).Order("simulated_at DESC").
		Scopes(pagination.Paginate(page)).Find(&simulations).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(simulations, page.Page, page.PageSize, totalItems)
	return &result, nil
}
