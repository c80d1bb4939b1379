package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "investio/internal/errors"
	"investio/internal/pagination"
	"investio/internal/services"
)

// InvestmentHandler handles investment requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
	auditService      services.AuditServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer, auditService services.AuditServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService, auditService: auditService}
}

// CreateInvestmentRequest represents the request payload for committing funds
// into a product.
type CreateInvestmentRequest struct {
	ClientID   uint            `json:"client_id" binding:"required"`
	ProductID  uint            `json:"product_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	InvestedAt *time.Time      `json:"invested_at,omitempty"`
}

// CreateInvestment handles committing funds into a product.
// @Summary     Create investment
// @Description Commit client funds into a catalog product, snapshotting its terms
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateInvestmentRequest true "Investment details"
// @Success     201 {object} models.Investment "Investment created"
// @Failure     400 {object} ErrorResponse "Invalid input or guarantee ceiling exceeded"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Client or product not found"
// @Router      /investments [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	var req CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	investment, err := h.investmentService.CreateInvestment(req.ClientID, req.ProductID, req.Amount, req.InvestedAt)
	if err != nil {
		respondWithError(c, err)
		return
	}

	userID, _ := getUserID(c)
	h.auditService.Log(userID, "CREATE_INVESTMENT", "investment", investment.ID, c.ClientIP(),
		map[string]interface{}{
			"client_id":  req.ClientID,
			"product_id": req.ProductID,
			"amount":     req.Amount.String(),
		})

	c.JSON(http.StatusCreated, gin.H{"investment": investment})
}

// GetInvestment handles retrieving a specific investment.
// @Summary     Get investment by ID
// @Description Get a specific investment by ID
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Investment ID"
// @Success     200 {object} models.Investment "Investment details"
// @Failure     400 {object} ErrorResponse "Invalid investment ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investments/{id} [get]
func (h *InvestmentHandler) GetInvestment(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	investment, err := h.investmentService.GetInvestmentByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investment": investment})
}

// Redeem handles redeeming an investment.
// @Summary     Redeem investment
// @Description Redeem an investment, returning the net yield after income and transaction taxes
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Investment ID"
// @Success     200 {object} services.RedemptionStatement "Redemption statement"
// @Failure     400 {object} ErrorResponse "Not redeemable yet or already redeemed"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Router      /investments/{id}/redeem [post]
func (h *InvestmentHandler) Redeem(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	statement, err := h.investmentService.Redeem(id, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	userID, _ := getUserID(c)
	h.auditService.Log(userID, "REDEEM_INVESTMENT", "investment", id, c.ClientIP(),
		map[string]interface{}{
			"net_yield":    statement.NetYield.String(),
			"total_amount": statement.TotalAmount.String(),
		})

	c.JSON(http.StatusOK, statement)
}

// GetClientInvestments handles listing a client's investments.
// @Summary     List client investments
// @Description Get a paginated list of a client's investments
// @Tags        clients
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  int true  "Client ID"
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Investment] "Paginated investments"
// @Failure     400 {object} ErrorResponse "Invalid client ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id}/investments [get]
func (h *InvestmentHandler) GetClientInvestments(c *gin.Context) {
	clientID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.investmentService.GetClientInvestments(clientID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
