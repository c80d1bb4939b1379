package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"investio/internal/engine"
	apperrors "investio/internal/errors"
	"investio/internal/models"
	"investio/internal/pagination"
)

// investmentService handles investment business logic.
type investmentService struct {
	db             *gorm.DB
	clientService  ClientServicer
	productService ProductServicer
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB, clientService ClientServicer, productService ProductServicer) InvestmentServicer {
	return &investmentService{db: db, clientService: clientService, productService: productService}
}

// guaranteedExposure sums the client's open guaranteed investments whose
// product type counts against the given coverage bucket. The sum runs over
// loaded rows rather than SQL so the decimal arithmetic stays exact and
// identical across database drivers.
func (s *investmentService) guaranteedExposure(clientID uint, bucket engine.CoverageBucket) (decimal.Decimal, error) {
	types := engine.BucketProductTypes(bucket)
	if len(types) == 0 {
		return decimal.Zero, nil
	}

	var investments []models.Investment
	if err := s.db.
		Where("client_id = ? AND guaranteed = ? AND product_type IN ? AND redeemed_at IS NULL", clientID, true, types).
		Find(&investments).Error; err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	exposure := decimal.Zero
	for i := range investments {
		exposure = exposure.Add(investments[i].Amount)
	}
	return exposure, nil
}

// CreateInvestment records a new contribution, freezing the product
// attributes into an immutable snapshot. Contributions to guarantee-eligible
// product types are checked against the per-bucket coverage ceiling.
func (s *investmentService) CreateInvestment(clientID, productID uint, amount decimal.Decimal, investedAt *time.Time) (*models.Investment, error) {
	if amount.Sign() <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be positive")
	}

	if _, err := s.clientService.GetClientByID(clientID); err != nil {
		return nil, err
	}
	product, err := s.productService.GetProductByID(productID)
	if err != nil {
		return nil, err
	}

	if bucket := engine.GuaranteeBucket(product.Type); bucket != engine.BucketNone {
		exposure, err := s.guaranteedExposure(clientID, bucket)
		if err != nil {
			return nil, err
		}
		if !engine.WithinGuaranteeLimit(bucket, exposure, amount) {
			return nil, apperrors.ErrGuaranteeLimitExceeded
		}
	}

	date := time.Now()
	if investedAt != nil {
		date = *investedAt
	}

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
		Amount:             amount,
		InvestedAt:         date,
	}
	if err := s.db.Create(investment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return investment, nil
}

// GetClientInvestments returns a paginated list of a client's investments.
func (s *investmentService) GetClientInvestments(clientID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error) {
	if _, err := s.clientService.GetClientByID(clientID); err != nil {
		return nil, err
	}

	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Investment{}).Where("client_id = ?", clientID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var investments []models.Investment
	if err := s.db.Where("client_id = ?", clientID).Order("invested_at DESC").
		Scopes(pagination.Paginate(page)).Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(investments, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetInvestmentByID returns an investment by ID.
func (s *investmentService) GetInvestmentByID(id uint) (*models.Investment, error) {
	var investment models.Investment
	if err := s.db.First(&investment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &investment, nil
}

// redeemableAfter returns the number of holding days that must elapse before
// the snapshot allows redemption.
func redeemableAfter(inv *models.Investment) int {
	required := inv.MinimumHoldingDays
	if inv.LiquidityDays > required {
		required = inv.LiquidityDays
	}
	return required
}

// Redeem closes an investment, paying out the principal plus the net yield
// after income tax and transaction tax.
func (s *investmentService) Redeem(investmentID uint, at time.Time) (*RedemptionStatement, error) {
	investment, err := s.GetInvestmentByID(investmentID)
	if err != nil {
		return nil, err
	}
	if investment.RedeemedAt != nil {
		return nil, apperrors.ErrAlreadyRedeemed
	}

	holdingDays := int(at.Sub(investment.InvestedAt).Hours() / 24)
	if holdingDays < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Redemption date precedes the investment date")
	}

	if investment.LiquidityDays == models.LiquidityNever {
		return nil, apperrors.WithMessage(apperrors.ErrNotRedeemable, "Product has no liquidity before maturity")
	}
	if holdingDays < redeemableAfter(investment) {
		return nil, apperrors.ErrNotRedeemable
	}

	rate, estimated := engine.EffectiveAnnualRate(investment.YieldType, investment.Index, investment.Rate)
	grossYield := engine.ProRataYield(investment.Amount, rate, holdingDays)
	incomeTax := engine.IncomeTax(grossYield, holdingDays)
	transactionTax := engine.TransactionTax(grossYield, holdingDays)
	netYield := grossYield.Sub(incomeTax).Sub(transactionTax)

	if err := s.db.Model(investment).Update("redeemed_at", at).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	investment.RedeemedAt = &at

	return &RedemptionStatement{
		Investment:     investment,
		HoldingDays:    holdingDays,
		GrossYield:     grossYield,
		IncomeTax:      incomeTax,
		TransactionTax: transactionTax,
		NetYield:       netYield,
		TotalAmount:    investment.Amount.Add(netYield),
		Estimated:      estimated,
	}, nil
}
