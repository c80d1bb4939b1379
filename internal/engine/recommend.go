package engine

import (
	"sort"

	"investio/internal/models"
)

// HistoryRecord is one unit of client activity used for affinity scoring:
// a real investment snapshot, or a simulation resolved against the catalog.
type HistoryRecord struct {
	ProductID   uint
	ProductName string
	Type        models.ProductType
	YieldType   models.YieldType
	Index       models.ReferenceIndex
}

// ScoredProduct is a catalog candidate annotated with its affinity score.
// Scores only have meaning within the Recommend call that produced them.
type ScoredProduct struct {
	Product models.Product `json:"product"`
	Score   int            `json:"score"`
}

// HistoryFromInvestments converts investment snapshots into history records.
func HistoryFromInvestments(investments []models.Investment) []HistoryRecord {
	records := make([]HistoryRecord, 0, len(investments))
	for i := range investments {
		inv := &investments[i]
		records = append(records, HistoryRecord{
			ProductID:   inv.ProductID,
			ProductName: inv.ProductName,
			Type:        inv.ProductType,
			YieldType:   inv.YieldType,
			Index:       inv.Index,
		})
	}
	return records
}

// HistoryFromSimulations resolves simulations against the catalog by product
// name and converts the matches into history records. Simulations naming a
// product no longer in the catalog carry no classification signal and are
// skipped.
func HistoryFromSimulations(simulations []models.Simulation, catalog []models.Product) []HistoryRecord {
	byName := make(map[string]*models.Product, len(catalog))
	for i := range catalog {
		byName[catalog[i].Name] = &catalog[i]
	}

	records := make([]HistoryRecord, 0, len(simulations))
	for i := range simulations {
		p, ok := byName[simulations[i].ProductName]
		if !ok {
			continue
		}
		records = append(records, HistoryRecord{
			ProductID:   p.ID,
			ProductName: p.Name,
			Type:        p.Type,
			YieldType:   p.YieldType,
			Index:       p.Index,
		})
	}
	return records
}

// affinityScore counts the classification dimensions a candidate shares with
// one history record. Each matched dimension contributes one unit.
func affinityScore(record HistoryRecord, candidate *models.Product) int {
	score := 0
	if candidate.Type == record.Type {
		score++
	}
	if candidate.YieldType == record.YieldType {
		score++
	}
	if candidate.Index == record.Index {
		score++
	}
	return score
}

// Recommend scores every catalog product the client does not already hold
// against the client's history and returns the candidates ordered by
// descending score. The sort is stable: ties keep catalog order, and the
// caller's category verdict depends on that.
//
// Scoring uses a scratch map local to this call; the shared catalog slice is
// never written to.
func Recommend(history []HistoryRecord, catalog []models.Product) []ScoredProduct {
	if len(history) == 0 {
		return []ScoredProduct{}
	}

	held := make(map[uint]bool, len(history))
	heldNames := make(map[string]bool, len(history))
	for _, r := range history {
		if r.ProductID != 0 {
			held[r.ProductID] = true
		}
		if r.ProductName != "" {
			heldNames[r.ProductName] = true
		}
	}

	scores := make(map[uint]int, len(catalog))
	candidates := make([]ScoredProduct, 0, len(catalog))
	for i := range catalog {
		p := &catalog[i]
		if held[p.ID] || heldNames[p.Name] {
			continue
		}
		for _, r := range history {
			scores[p.ID] += affinityScore(r, p)
		}
		candidates = append(candidates, ScoredProduct{Product: *p, Score: scores[p.ID]})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}
