package usecase

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/vinolens/backend/internal/domain"
)

// matchKeyRegex strips everything but lowercase alphanumerics and whitespace
// from match key fields
var matchKeyRegex = regexp.MustCompile(`[^a-z0-9\s]`)

// matchKey is the normalized five-field identity tuple records are compared
// on. Two records with equal keys are the same wine and vintage.
type matchKey struct {
	name    string
	domain  string
	vintage int
	region  string
	color   domain.ColorType
}

// MatchConfig holds configuration for the duplicate matcher
type MatchConfig struct {
	EnableDebugLogging bool
}

// MatchingService classifies how a candidate (or record) relates to an
// existing collection: exact duplicate, vintage variant, or no match
type MatchingService struct {
	enableDebugLogging bool
}

// NewMatchingService creates a new duplicate matcher
func NewMatchingService(config MatchConfig) *MatchingService {
	return &MatchingService{
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Match compares the subject against the collection in order and returns
// the first exact or variant hit. First-match semantics, not best-match:
// an early variant can shadow a later exact match. Deterministic for a
// fixed ordered collection.
func (s *MatchingService) Match(subject domain.WineCandidate, against []domain.ExistingRecord) domain.MatchResult {
	subjectKey := keyOf(subject)

	if s.enableDebugLogging {
		log.Printf("[MATCH] subject key: %+v against %d records", subjectKey, len(against))
	}

	for i := range against {
		recordKey := keyOf(against[i].WineCandidate)

		if recordKey == subjectKey {
			matched := against[i]
			return domain.MatchResult{
				Relation:      domain.MatchExact,
				MatchedRecord: &matched,
				Rationale: fmt.Sprintf("%q (%d) is already in the collection",
					matched.Name, matched.Vintage),
			}
		}

		if recordKey.name == subjectKey.name &&
			recordKey.domain == subjectKey.domain &&
			recordKey.region == subjectKey.region &&
			recordKey.color == subjectKey.color &&
			recordKey.vintage != subjectKey.vintage {
			matched := against[i]
			return domain.MatchResult{
				Relation:      domain.MatchVariant,
				MatchedRecord: &matched,
				Rationale: fmt.Sprintf("same wine as %q, different vintage (%d vs %d)",
					matched.Name, subject.Vintage, matched.Vintage),
			}
		}
	}

	return domain.MatchResult{
		Relation:  domain.MatchNone,
		Rationale: "no matching wine in the collection",
	}
}

// MatchRecord compares an already-persisted record against a collection,
// for cleanup passes where the subject is not a fresh candidate
func (s *MatchingService) MatchRecord(subject domain.ExistingRecord, against []domain.ExistingRecord) domain.MatchResult {
	return s.Match(subject.WineCandidate, against)
}

// keyOf builds the normalized comparison key from a record's attributes
func keyOf(c domain.WineCandidate) matchKey {
	return matchKey{
		name:    normalizeKeyField(c.Name),
		domain:  normalizeKeyField(c.Domain),
		vintage: c.Vintage,
		region:  normalizeKeyField(c.Region),
		color:   c.Color,
	}
}

// normalizeKeyField lowercases, folds accents, strips non-alphanumerics and
// collapses whitespace so cosmetic differences never defeat a match
func normalizeKeyField(s string) string {
	result := strings.ToLower(foldAccents(s))
	result = matchKeyRegex.ReplaceAllString(result, " ")
	result = multiSpacePattern.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
