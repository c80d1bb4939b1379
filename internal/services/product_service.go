package services

import (
	"errors"

	"gorm.io/gorm"

	"investio/internal/engine"
	apperrors "investio/internal/errors"
	"investio/internal/models"
	"investio/internal/pagination"
)

// productService handles product catalog business logic.
type productService struct {
	db *gorm.DB
}

// NewProductService creates a new ProductServicer.
func NewProductService(db *gorm.DB) ProductServicer {
	return &productService{db: db}
}

// validateProductInput checks enum coherence before writing catalog rows.
func validateProductInput(input *ProductInput) error {
	if _, ok := input.Type.IncomeClass(); !ok {
		return apperrors.ErrInvalidProductType
	}
	switch input.YieldType {
	case models.YieldTypePostFixed:
		if input.Index == models.IndexNone || input.Index == "" {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "Post-fixed products must track a reference index")
		}
	case models.YieldTypePreFixed:
		if input.Index != models.IndexNone && input.Index != "" {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "Pre-fixed products cannot track a reference index")
		}
		input.Index = models.IndexNone
	default:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Unsupported yield type")
	}
	if input.Rate.Sign() <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Rate must be positive")
	}
	if input.LiquidityDays < models.LiquidityNever {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Liquidity days must be -1, 0, or positive")
	}
	if input.MinimumHoldingDays < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Minimum holding days cannot be negative")
	}
	return nil
}

// tagRiskTier populates the derived risk tier on a product loaded from the
// catalog. The tier is computed on every read, never stored.
func tagRiskTier(p *models.Product) error {
	tier, err := engine.ClassifyProduct(p)
	if err != nil {
		return err
	}
	p.RiskTier = tier
	return nil
}

// CreateProduct adds a new product to the catalog.
func (s *productService) CreateProduct(input ProductInput) (*models.Product, error) {
	if err := validateProductInput(&input); err != nil {
		return nil, err
	}

	var count int64
	s.db.Model(&models.Product{}).Where("name = ?", input.Name).Count(&count)
	if count > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "A product with this name already exists")
	}

	product := &models.Product{
		Name:               input.Name,
		Type:               input.Type,
		YieldType:          input.YieldType,
		Index:              input.Index,
		Rate:               input.Rate,
		LiquidityDays:      input.LiquidityDays,
		MinimumHoldingDays: input.MinimumHoldingDays,
		Guaranteed:         input.Guaranteed,
	}
	if err := s.db.Create(product).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := tagRiskTier(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProducts returns a paginated, risk-tagged list of catalog products.
func (s *productService) GetProducts(page pagination.PageRequest) (*pagination.PageResponse[models.Product], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Product{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var products []models.Product
	if err := s.db.Order("id").Scopes(pagination.Paginate(page)).Find(&products).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range products {
		if err := tagRiskTier(&products[i]); err != nil {
			return nil, err
		}
	}

	result := pagination.NewPageResponse(products, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetProductByID returns a risk-tagged product by ID.
func (s *productService) GetProductByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := tagRiskTier(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces a product's attributes. Existing investment
// snapshots are unaffected.
func (s *productService) UpdateProduct(id uint, input ProductInput) (*models.Product, error) {
	if err := validateProductInput(&input); err != nil {
		return nil, err
	}

	product, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":                 input.Name,
		"type":                 input.Type,
		"yield_type":           input.YieldType,
		"ref_index":            input.Index,
		"rate":                 input.Rate,
		"liquidity_days":       input.LiquidityDays,
		"minimum_holding_days": input.MinimumHoldingDays,
		"guaranteed":           input.Guaranteed,
	}
	if err := s.db.Model(product).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := tagRiskTier(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct soft-deletes a product. Products referenced by open
// investments cannot be removed.
func (s *productService) DeleteProduct(id uint) error {
	product, err := s.GetProductByID(id)
	if err != nil {
		return err
	}

	var held int64
	if err := s.db.Model(&models.Investment{}).
		Where("product_id = ? AND redeemed_at IS NULL", id).
		Count(&held).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if held > 0 {
		return apperrors.ErrProductHeld
	}

	if err := s.db.Delete(product).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetCatalog returns the entire catalog in stable catalog order with risk
// tiers tagged. Profiling depends on this ordering for tie-breaking.
func (s *productService) GetCatalog() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("id").Find(&products).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range products {
		if err := tagRiskTier(&products[i]); err != nil {
			return nil, err
		}
	}
	return products, nil
}
