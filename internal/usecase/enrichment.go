package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/vinolens/backend/internal/domain"
)

// PlaceholderName is the candidate name of last resort, used when neither a
// usable name nor a domain survived extraction. Batch orchestration numbers
// it per item position.
const PlaceholderName = "Unnamed Wine"

// minUsableNameLength is the shortest normalized name accepted as a display
// name before the extracted domain is preferred
const minUsableNameLength = 5

// EnrichmentConfig holds configuration for the enrichment pipeline
type EnrichmentConfig struct {
	EnableDebugLogging bool
}

// EnrichmentService turns one raw recognized label text into a WineCandidate
type EnrichmentService struct {
	normalizer         *TextNormalizer
	enableDebugLogging bool
}

// NewEnrichmentService creates a new enrichment pipeline
func NewEnrichmentService(config EnrichmentConfig) *EnrichmentService {
	return &EnrichmentService{
		normalizer:         NewTextNormalizer(NormalizerConfig{EnableDebugLogging: config.EnableDebugLogging}),
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Normalizer exposes the pipeline's text normalizer for callers that need
// consistent cleanup (cache keys, isolated field re-casing)
func (s *EnrichmentService) Normalizer() *TextNormalizer {
	return s.normalizer
}

// Enrich assembles a WineCandidate from one raw text. It never fails:
// extraction misses land on documented defaults, and the worst case is a
// placeholder-named candidate that still carries the image reference.
// The context parameter keeps the signature uniform across the pipeline;
// enrichment itself is pure and synchronous.
func (s *EnrichmentService) Enrich(ctx context.Context, rawText, sourceImageRef string) domain.WineCandidate {
	vintage, found := ExtractVintage(rawText)
	if !found {
		vintage = currentYear()
	}

	estate := ExtractDomain(rawText)
	region := ExtractRegion(rawText)
	grapes := ExtractGrapeVarieties(rawText)

	name := s.normalizer.Normalize(rawText)

	// A too-short name, or one still carrying boilerplate the cleanup
	// leaked, must not become the display name when a real estate was
	// detected: the estate is the better identity. The swap clears the
	// domain so the same text is not stored twice.
	if (len([]rune(name)) < minUsableNameLength || s.normalizer.ContainsIgnoredWord(name)) &&
		estate != domain.UnknownDomain {
		if s.enableDebugLogging {
			log.Printf("[ENRICH] name %q unusable, promoting domain %q", name, estate)
		}
		name = estate
		estate = domain.UnknownDomain
	}

	if strings.TrimSpace(name) == "" {
		name = PlaceholderName
	}

	candidate := domain.WineCandidate{
		Name:           name,
		Vintage:        vintage,
		Color:          ClassifyColor(rawText),
		Domain:         estate,
		Region:         region,
		GrapeVarieties: grapes,
		SourceImageRef: sourceImageRef,
	}

	if s.enableDebugLogging {
		log.Printf("[ENRICH] %q -> name=%q domain=%q vintage=%d region=%q grapes=%v color=%s",
			rawText, candidate.Name, candidate.Domain, candidate.Vintage,
			candidate.Region, candidate.GrapeVarieties, candidate.Color)
	}

	return candidate
}

// currentYear is the default vintage when no plausible year was extracted
func currentYear() int {
	return time.Now().Year()
}
