package usecase

import (
	"fmt"
	"log"

	"github.com/vinolens/backend/internal/domain"
)

// ConsolidationConfig holds configuration for the consolidation engine
type ConsolidationConfig struct {
	EnableDebugLogging bool
}

// ConsolidationService decides how duplicates are handled per collection
// policy: wishlists forbid duplicates, cellars merge them. It only returns
// decisions; the caller applies them atomically against the real store.
type ConsolidationService struct {
	matcher            *MatchingService
	enableDebugLogging bool
}

// NewConsolidationService creates a new consolidation engine
func NewConsolidationService(matcher *MatchingService, config ConsolidationConfig) *ConsolidationService {
	return &ConsolidationService{
		matcher:            matcher,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ResolveInsertion decides what inserting the candidate into the given
// collection should do. Wishlist policy: an exact duplicate is rejected,
// the caller informs the user. Cellar policy: an exact duplicate increments
// the existing record's quantity instead of creating a new row. Vintage
// variants are distinct entries under both policies.
func (s *ConsolidationService) ResolveInsertion(
	candidate domain.WineCandidate,
	collectionType domain.CollectionType,
	against []domain.ExistingRecord,
) (domain.InsertionDecision, domain.MatchResult) {
	match := s.matcher.Match(candidate, against)

	if match.Relation != domain.MatchExact {
		return domain.InsertionDecision{Action: domain.ActionInsert}, match
	}

	if collectionType == domain.CollectionWishlist {
		if s.enableDebugLogging {
			log.Printf("[CONSOLIDATE] wishlist reject: %s", match.Rationale)
		}
		return domain.InsertionDecision{
			Action:         domain.ActionReject,
			TargetRecordID: match.MatchedRecord.ID,
			Rationale:      match.Rationale,
		}, match
	}

	newQuantity := match.MatchedRecord.Quantity + 1
	if s.enableDebugLogging {
		log.Printf("[CONSOLIDATE] cellar merge into %s, quantity %d -> %d",
			match.MatchedRecord.ID, match.MatchedRecord.Quantity, newQuantity)
	}
	return domain.InsertionDecision{
		Action:         domain.ActionIncrementExisting,
		TargetRecordID: match.MatchedRecord.ID,
		NewQuantity:    newQuantity,
		Rationale:      fmt.Sprintf("added one more bottle of %q", match.MatchedRecord.Name),
	}, match
}

// CleanupCollection scans a whole cellar snapshot for duplicate clusters.
// Records sharing the five-field normalized key form a cluster; the earliest
// created record survives with the summed quantity and the rest are marked
// for deletion. Ties on creation time fall back to input order, which makes
// a second pass over the survivors find nothing: the operation is
// idempotent.
func (s *ConsolidationService) CleanupCollection(records []domain.ExistingRecord) domain.CleanupResult {
	groups := make(map[matchKey][]int)
	var order []matchKey

	for i := range records {
		key := keyOf(records[i].WineCandidate)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	var merges []domain.Merge
	for _, key := range order {
		indexes := groups[key]
		if len(indexes) < 2 {
			continue
		}

		survivorIdx := indexes[0]
		for _, idx := range indexes[1:] {
			created := records[idx].CreatedAt
			if !created.IsZero() && created.Before(records[survivorIdx].CreatedAt) {
				survivorIdx = idx
			}
		}

		total := 0
		var absorbed []domain.ExistingRecord
		for _, idx := range indexes {
			total += records[idx].Quantity
			if idx != survivorIdx {
				absorbed = append(absorbed, records[idx])
			}
		}

		surviving := records[survivorIdx]
		surviving.Quantity = total

		if s.enableDebugLogging {
			log.Printf("[CONSOLIDATE] cleanup: %q keeps %s, absorbs %d records, quantity=%d",
				surviving.Name, surviving.ID, len(absorbed), total)
		}

		merges = append(merges, domain.Merge{
			Surviving:   surviving,
			Absorbed:    absorbed,
			NewQuantity: total,
		})
	}

	return domain.CleanupResult{Merges: merges}
}
