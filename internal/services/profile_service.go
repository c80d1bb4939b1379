package services

import (
	"gorm.io/gorm"

	"investio/internal/engine"
	apperrors "investio/internal/errors"
	"investio/internal/models"
)

// profileService orchestrates the profiling pipeline: it loads a client's
// history and the catalog, then hands both to the decision engine. All
// scoring and aggregation happens in the engine over the loaded slices.
type profileService struct {
	db             *gorm.DB
	clientService  ClientServicer
	productService ProductServicer
}

// NewProfileService creates a new ProfileServicer.
func NewProfileService(db *gorm.DB, clientService ClientServicer, productService ProductServicer) ProfileServicer {
	return &profileService{db: db, clientService: clientService, productService: productService}
}

// loadHistory builds the client's scoring history: real investments when any
// exist, simulations resolved against the catalog otherwise.
func (s *profileService) loadHistory(clientID uint, catalog []models.Product) ([]engine.HistoryRecord, error) {
	var investments []models.Investment
	if err := s.db.Where("client_id = ?", clientID).Order("invested_at").Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(investments) > 0 {
		return engine.HistoryFromInvestments(investments), nil
	}

	var simulations []models.Simulation
	if err := s.db.Where("client_id = ?", clientID).Order("simulated_at").Find(&simulations).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return engine.HistoryFromSimulations(simulations, catalog), nil
}

// GetRecommendations returns catalog products the client does not hold,
// ranked by affinity with their history. An empty list means the client has
// no usable signal.
func (s *profileService) GetRecommendations(clientID uint) ([]engine.ScoredProduct, error) {
	if _, err := s.clientService.GetClientByID(clientID); err != nil {
		return nil, err
	}

	catalog, err := s.productService.GetCatalog()
	if err != nil {
		return nil, err
	}

	history, err := s.loadHistory(clientID, catalog)
	if err != nil {
		return nil, err
	}

	return engine.Recommend(history, catalog), nil
}

// GetProfile computes the client's risk-profile verdict from their ranked
// recommendations. Fails with NO_HISTORY_AVAILABLE when neither investments
// nor simulations produce candidates.
func (s *profileService) GetProfile(clientID uint) (*engine.ProfileVerdict, error) {
	ranked, err := s.GetRecommendations(clientID)
	if err != nil {
		return nil, err
	}
	return engine.AggregateProfile(clientID, ranked)
}
