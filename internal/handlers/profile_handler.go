package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"investio/internal/services"
)

// ProfileHandler handles client risk profiling requests.
type ProfileHandler struct {
	profileService services.ProfileServicer
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService services.ProfileServicer) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetRecommendations handles ranking catalog products for a client.
// @Summary     Get recommendations
// @Description Rank unheld catalog products by affinity with the client's history
// @Tags        profiles
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Client ID"
// @Success     200 {object} map[string][]engine.ScoredProduct "Ranked products"
// @Failure     400 {object} ErrorResponse "Invalid client ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id}/recommendations [get]
func (h *ProfileHandler) GetRecommendations(c *gin.Context) {
	clientID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	recommendations, err := h.profileService.GetRecommendations(clientID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}

// GetProfile handles classifying a client's risk profile.
// @Summary     Get client risk profile
// @Description Classify the client as conservative, moderate, or aggressive from their history
// @Tags        profiles
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Client ID"
// @Success     200 {object} engine.ProfileVerdict "Profile verdict"
// @Failure     400 {object} ErrorResponse "Invalid client ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Failure     422 {object} ErrorResponse "No history available"
// @Router      /clients/{id}/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	clientID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	verdict, err := h.profileService.GetProfile(clientID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": verdict})
}
