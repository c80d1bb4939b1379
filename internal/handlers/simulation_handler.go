package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "investio/internal/errors"
	"investio/internal/pagination"
	"investio/internal/services"
)

// SimulationHandler handles simulation requests.
type SimulationHandler struct {
	simulationService services.SimulationServicer
}

// NewSimulationHandler creates a new SimulationHandler.
func NewSimulationHandler(simulationService services.SimulationServicer) *SimulationHandler {
	return &SimulationHandler{simulationService: simulationService}
}

// SimulateRequest represents the request payload for projecting an investment.
type SimulateRequest struct {
	ClientID  uint            `json:"client_id" binding:"required"`
	ProductID uint            `json:"product_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	TermDays  int             `json:"term_days" binding:"required,min=1"`
}

// Simulate handles projecting an investment outcome without committing funds.
// @Summary     Simulate investment
// @Description Project the outcome of investing an amount in a product for a term
// @Tags        simulations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SimulateRequest true "Simulation parameters"
// @Success     201 {object} models.Simulation "Simulation recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Client or product not found"
// @Router      /simulations [post]
func (h *SimulationHandler) Simulate(c *gin.Context) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sim, err := h.simulationService.Simulate(req.ClientID, req.ProductID, req.Amount, req.TermDays)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"simulation": sim})
}

// GetClientSimulations handles listing a client's simulations.
// @Summary     List client simulations
// @Description Get a paginated list of a client's simulations, most recent first
// @Tags        clients
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  int true  "Client ID"
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Simulation] "Paginated simulations"
// @Failure     400 {object} ErrorResponse "Invalid client ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id}/simulations [get]
func (h *SimulationHandler) GetClientSimulations(c *gin.Context) {
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

	result, err := h.simulationService.GetClientSimulations(clientID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
