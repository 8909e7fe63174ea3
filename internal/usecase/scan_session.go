package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/vinolens/backend/internal/domain"
)

// Enricher produces one candidate from one raw text. Satisfied by
// EnrichmentService and by the caching wrapper in ScanService.
type Enricher interface {
	Enrich(ctx context.Context, rawText, sourceImageRef string) domain.WineCandidate
}

// SessionConfig holds configuration for one scan session
type SessionConfig struct {
	// ForceFallback pre-ratchets the session into fallback mode, for the
	// manual-entry path the UI can request up front
	ForceFallback      bool
	EnableDebugLogging bool
}

// ScanSession orchestrates enrichment over one batch of photo-derived texts.
// It is transient: created per batch, discarded once candidates are handed
// to the caller. Nothing in it is persisted.
type ScanSession struct {
	id                 string
	enricher           Enricher
	forceFallback      bool
	enableDebugLogging bool
}

// NewScanSession creates a session for one batch scan
func NewScanSession(enricher Enricher, config SessionConfig) *ScanSession {
	return &ScanSession{
		id:                 uuid.New().String(),
		enricher:           enricher,
		forceFallback:      config.ForceFallback,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ID returns the session identifier, used for log correlation only
func (s *ScanSession) ID() string {
	return s.id
}

// RunBatch enriches every image of the batch independently and returns
// exactly one candidate per image reference, in positional order. rawTexts
// may be shorter than imageRefs when some images produced no text; those
// slots become failed items with numbered placeholder candidates. One item's
// failure never aborts its siblings, and items are enriched concurrently
// since they share no state.
//
// The fallback flag ratchets true when the whole batch had no usable text or
// any single item failed. It never resets within a session: it tells the
// caller to surface a manual-entry option, not to retry.
func (s *ScanSession) RunBatch(ctx context.Context, rawTexts, imageRefs []string) domain.ScanResult {
	items := make([]domain.ScanItem, len(imageRefs))
	candidates := make([]domain.WineCandidate, len(imageRefs))

	usable := 0
	for i := range imageRefs {
		items[i] = domain.ScanItem{
			SourceImageRef: imageRefs[i],
			State:          domain.ItemPending,
		}
		if i < len(rawTexts) {
			items[i].RawText = rawTexts[i]
			if strings.TrimSpace(rawTexts[i]) != "" {
				usable++
			}
		}
	}

	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			text := items[i].RawText
			if strings.TrimSpace(text) == "" {
				candidates[i] = placeholderCandidate(imageRefs[i], i+1)
				items[i].State = domain.ItemFailed
				items[i].Candidate = &candidates[i]
				return
			}

			candidate := s.enricher.Enrich(ctx, text, imageRefs[i])
			if candidate.Name == PlaceholderName {
				// Number placeholders by batch position so two failed
				// items in one batch get distinct names
				candidate.Name = fmt.Sprintf("%s %d", PlaceholderName, i+1)
			}
			candidates[i] = candidate
			items[i].State = domain.ItemEnriched
			items[i].Candidate = &candidates[i]
		}(i)
	}
	wg.Wait()

	failed := 0
	for i := range items {
		if items[i].State == domain.ItemFailed {
			failed++
		}
	}

	fallback := s.forceFallback || usable == 0 || failed > 0

	if s.enableDebugLogging {
		log.Printf("[SCAN] session %s: %d images, %d usable texts, %d failed, fallback=%v",
			s.id, len(imageRefs), usable, failed, fallback)
	}

	return domain.ScanResult{
		SessionID:      s.id,
		Items:          items,
		Candidates:     candidates,
		FallbackActive: fallback,
	}
}

// placeholderCandidate builds the all-defaults candidate emitted for an
// image whose text never arrived. It still carries the image reference: the
// 1:1 input/output correspondence holds even on total failure.
func placeholderCandidate(sourceImageRef string, position int) domain.WineCandidate {
	return domain.WineCandidate{
		Name:           fmt.Sprintf("%s %d", PlaceholderName, position),
		Vintage:        currentYear(),
		Color:          domain.ColorRed,
		Domain:         domain.UnknownDomain,
		SourceImageRef: sourceImageRef,
	}
}
