package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "investio/internal/errors"
	"investio/internal/models"
	"investio/internal/pagination"
	"investio/internal/services"
)

// ProductHandler handles product catalog requests.
type ProductHandler struct {
	productService services.ProductServicer
	auditService   services.AuditServicer
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService services.ProductServicer, auditService services.AuditServicer) *ProductHandler {
	return &ProductHandler{productService: productService, auditService: auditService}
}

// ProductRequest represents the request payload for creating or updating a
// catalog product.
type ProductRequest struct {
	Name               string          `json:"name" binding:"required,min=1,max=200"`
	Type               string          `json:"type" binding:"required,product_type"`
	YieldType          string          `json:"yield_type" binding:"required,yield_type"`
	Index              string          `json:"index" binding:"omitempty,reference_index"`
	Rate               decimal.Decimal `json:"rate" binding:"required"`
	LiquidityDays      int             `json:"liquidity_days" binding:"omitempty,min=-1"`
	MinimumHoldingDays int             `json:"minimum_holding_days" binding:"omitempty,min=0"`
	Guaranteed         bool            `json:"guaranteed"`
}

func (r ProductRequest) toInput() services.ProductInput {
	index := models.ReferenceIndex(r.Index)
	if index == "" {
		index = models.IndexNone
	}
	return services.ProductInput{
		Name:               r.Name,
		Type:               models.ProductType(r.Type),
		YieldType:          models.YieldType(r.YieldType),
		Index:              index,
		Rate:               r.Rate,
		LiquidityDays:      r.LiquidityDays,
		MinimumHoldingDays: r.MinimumHoldingDays,
		Guaranteed:         r.Guaranteed,
	}
}

// CreateProduct handles adding a product to the catalog.
// @Summary     Create product
// @Description Add a new investment product to the catalog
// @Tags        products
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ProductRequest true "Product details"
// @Success     201 {object} models.Product "Product created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	product, err := h.productService.CreateProduct(req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	userID, _ := getUserID(c)
	h.auditService.Log(userID, "CREATE_PRODUCT", "product", product.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "type": req.Type})

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// ListProducts handles listing catalog products.
// @Summary     List products
// @Description Get a paginated list of catalog products with derived risk tiers
// @Tags        products
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Product] "Paginated products"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.productService.GetProducts(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProduct handles retrieving a specific product.
// @Summary     Get product by ID
// @Description Get a specific catalog product by ID
// @Tags        products
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Product ID"
// @Success     200 {object} models.Product "Product details"
// @Failure     400 {object} ErrorResponse "Invalid product ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Product not found"
// @Router      /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	product, err := h.productService.GetProductByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// UpdateProduct handles updating a catalog product.
// @Summary     Update product
// @Description Update a catalog product. Existing investment snapshots keep their original terms.
// @Tags        products
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int            true "Product ID"
// @Param       request body ProductRequest true "Product details"
// @Success     200 {object} models.Product "Product updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Product not found"
// @Router      /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	product, err := h.productService.UpdateProduct(id, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	userID, _ := getUserID(c)
	h.auditService.Log(userID, "UPDATE_PRODUCT", "product", product.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// DeleteProduct handles removing a product from the catalog.
// @Summary     Delete product
// @Description Soft-delete a catalog product. Products held by open investments cannot be removed.
// @Tags        products
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Product ID"
// @Success     204 "Product deleted"
// @Failure     400 {object} ErrorResponse "Invalid product ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Product not found"
// @Failure     409 {object} ErrorResponse "Product held by open investments"
// @Router      /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		respondWithError(c, err)
		return
	}

	userID, _ := getUserID(c)
	h.auditService.Log(userID, "DELETE_PRODUCT", "product", id, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
