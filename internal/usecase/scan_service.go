package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/vinolens/backend/internal/domain"
	"github.com/vinolens/backend/internal/infrastructure/vision"
)

// ScanServiceConfig holds configuration for the scan service
type ScanServiceConfig struct {
	CacheTTL           time.Duration
	MaxBatchSize       int
	EnableDebugLogging bool
}

// ScanService is the entry point for batch scans. It wires the enrichment
// pipeline, the candidate cache and the external text-recognition client
// into one flow: recognize (optional) -> cache lookup -> enrich -> session.
type ScanService struct {
	cache              domain.CacheRepository
	visionClient       domain.VisionClient
	enricher           *EnrichmentService
	cacheTTL           time.Duration
	maxBatchSize       int
	enableDebugLogging bool
}

// NewScanService creates a new scan service. visionClient may be nil when
// the deployment receives raw texts directly from the device.
func NewScanService(
	cache domain.CacheRepository,
	visionClient domain.VisionClient,
	config ScanServiceConfig,
) *ScanService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 168 * time.Hour // Default 7 days
	}

	maxBatchSize := config.MaxBatchSize
	if maxBatchSize <= 0 {
		maxBatchSize = 20
	}

	return &ScanService{
		cache:              cache,
		visionClient:       visionClient,
		enricher:           NewEnrichmentService(EnrichmentConfig{EnableDebugLogging: config.EnableDebugLogging}),
		cacheTTL:           cacheTTL,
		maxBatchSize:       maxBatchSize,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ScanTexts runs one batch of already-recognized texts. rawTexts may be
// shorter than imageRefs; it must never be longer.
func (s *ScanService) ScanTexts(ctx context.Context, rawTexts, imageRefs []string, forceFallback bool) (*domain.ScanResult, error) {
	if len(imageRefs) == 0 || len(rawTexts) > len(imageRefs) {
		return nil, domain.ErrInvalidRequest
	}
	if len(imageRefs) > s.maxBatchSize {
		return nil, fmt.Errorf("%w: batch of %d exceeds limit %d",
			domain.ErrInvalidRequest, len(imageRefs), s.maxBatchSize)
	}

	session := NewScanSession(s.cachingEnricher(), SessionConfig{
		ForceFallback:      forceFallback,
		EnableDebugLogging: s.enableDebugLogging,
	})

	result := session.RunBatch(ctx, rawTexts, imageRefs)
	return &result, nil
}

// ScanImages recognizes text for each image through the external
// collaborator, then runs the same batch flow. A recognition failure is not
// an error here: the image simply has no text, which the session turns into
// a failed item with a placeholder candidate.
func (s *ScanService) ScanImages(ctx context.Context, imageRefs []string, forceFallback bool) (*domain.ScanResult, error) {
	if s.visionClient == nil {
		return nil, domain.ErrVisionAPIFailure
	}
	if len(imageRefs) == 0 {
		return nil, domain.ErrInvalidRequest
	}
	if len(imageRefs) > s.maxBatchSize {
		return nil, fmt.Errorf("%w: batch of %d exceeds limit %d",
			domain.ErrInvalidRequest, len(imageRefs), s.maxBatchSize)
	}

	rawTexts := make([]string, len(imageRefs))
	for i, ref := range imageRefs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := s.visionClient.RecognizeText(ctx, ref)
		if err != nil {
			if s.enableDebugLogging && !errors.Is(err, domain.ErrNoTextRecognized) {
				log.Printf("[SCAN] recognition failed for %s: %v", ref, err)
			}
			continue // leaves the slot empty -> failed item
		}
		rawTexts[i] = vision.MapToRawText(resp)
	}

	return s.ScanTexts(ctx, rawTexts, imageRefs, forceFallback)
}

// cachingEnricher wraps the enrichment pipeline with the candidate cache:
// repeat scans of the same label text skip re-extraction
func (s *ScanService) cachingEnricher() Enricher {
	if s.cache == nil {
		return s.enricher
	}
	return &cachedEnricher{service: s}
}

type cachedEnricher struct {
	service *ScanService
}

func (c *cachedEnricher) Enrich(ctx context.Context, rawText, sourceImageRef string) domain.WineCandidate {
	s := c.service
	key := candidateCacheKey(rawText)

	if value, err := s.cache.Get(ctx, key); err == nil && value != nil {
		if cached, ok := decodeCachedCandidate(value); ok {
			if s.enableDebugLogging {
				log.Printf("[SCAN] cache hit for %q", key)
			}
			// The same label can be photographed twice; the reference
			// belongs to this scan, not to the cached one
			cached.SourceImageRef = sourceImageRef
			return cached
		}
	}

	candidate := s.enricher.Enrich(ctx, rawText, sourceImageRef)

	toCache := candidate
	toCache.SourceImageRef = ""
	if err := s.cache.Set(ctx, key, toCache, s.cacheTTL); err != nil && s.enableDebugLogging {
		log.Printf("[SCAN] cache set failed for %q: %v", key, err)
	}

	return candidate
}

// candidateCacheKey normalizes raw label text into a stable cache key.
// Format: "candidate:{normalized_text}"
func candidateCacheKey(rawText string) string {
	return "candidate:" + normalizeKeyField(rawText)
}

// decodeCachedCandidate converts a cache value back into a candidate. The
// cache JSON round-trips values (Redis-like semantics), so structs come back
// as generic maps.
func decodeCachedCandidate(value interface{}) (domain.WineCandidate, bool) {
	data, ok := value.(map[string]interface{})
	if !ok {
		return domain.WineCandidate{}, false
	}

	var c domain.WineCandidate
	if v, ok := data["name"].(string); ok {
		c.Name = v
	}
	if c.Name == "" {
		return domain.WineCandidate{}, false
	}
	if v, ok := data["vintage"].(float64); ok {
		c.Vintage = int(v)
	}
	if v, ok := data["colorType"].(string); ok {
		c.Color = domain.ColorType(v)
	}
	if v, ok := data["domain"].(string); ok {
		c.Domain = v
	}
	if v, ok := data["region"].(string); ok {
		c.Region = v
	}
	if grapes, ok := data["grapeVarieties"].([]interface{}); ok {
		for _, g := range grapes {
			if name, ok := g.(string); ok {
				c.GrapeVarieties = append(c.GrapeVarieties, name)
			}
		}
	}

	return c, true
}
