package engine

import (
	apperrors "investio/internal/errors"
	"investio/internal/models"
)

// ProfileVerdict is the final risk-profile assessment for a client. Verdicts
// are computed per request and never persisted.
type ProfileVerdict struct {
	ClientID   uint                   `json:"client_id"`
	Category   models.ProfileCategory `json:"category"`
	Confidence int                    `json:"confidence"` // 0-100
	Narrative  string                 `json:"narrative"`
}

// categoryNarratives are part of the external API contract; the exact
// strings are pinned by tests and must not be reworded casually.
var categoryNarratives = map[models.ProfileCategory]string{
	models.ProfileConservative: "Conservative profile: prioritizes capital preservation through guaranteed and fixed income products with predictable returns.",
	models.ProfileModerate:     "Moderate profile: balances security and profitability, accepting moderate volatility in exchange for higher returns.",
	models.ProfileAggressive:   "Aggressive profile: pursues maximum profitability and tolerates high volatility, concentrating on variable income products.",
}

// CategoryNarrative returns the fixed client-facing narrative for a category.
func CategoryNarrative(category models.ProfileCategory) string {
	return categoryNarratives[category]
}

// AggregateProfile converts a ranked candidate list into a profile verdict.
// The category follows the risk tier of the highest-scored candidate;
// confidence is the integer percentage of total score held by candidates of
// that same tier (truncating division). An empty candidate list means the
// client has no usable signal and fails with NO_HISTORY_AVAILABLE.
func AggregateProfile(clientID uint, ranked []ScoredProduct) (*ProfileVerdict, error) {
	if len(ranked) == 0 {
		return nil, apperrors.ErrNoHistoryAvailable
	}

	topTier, err := ClassifyProduct(&ranked[0].Product)
	if err != nil {
		return nil, err
	}

	matchingScore := 0
	totalScore := 0
	for i := range ranked {
		tier, err := ClassifyProduct(&ranked[i].Product)
		if err != nil {
			return nil, err
		}
		totalScore += ranked[i].Score
		if tier == topTier {
			matchingScore += ranked[i].Score
		}
	}

	confidence := 0
	if totalScore > 0 {
		confidence = matchingScore * 100 / totalScore
	}

	category := CategoryForTier(topTier)
	return &ProfileVerdict{
		ClientID:   clientID,
		Category:   category,
		Confidence: confidence,
		Narrative:  categoryNarratives[category],
	}, nil
}
