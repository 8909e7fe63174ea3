package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinolens/backend/internal/domain"
	"github.com/vinolens/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	scanService          *usecase.ScanService
	matchingService      *usecase.MatchingService
	consolidationService *usecase.ConsolidationService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	scanService *usecase.ScanService,
	matchingService *usecase.MatchingService,
	consolidationService *usecase.ConsolidationService,
) *Handler {
	return &Handler{
		scanService:          scanService,
		matchingService:      matchingService,
		consolidationService: consolidationService,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "vinolens-backend",
		"version": "1.0.0",
	})
}

// scanTextsRequest carries one batch of recognized label texts. RawTexts may
// be shorter than ImageRefs when some photos produced no text.
type scanTextsRequest struct {
	ImageRefs     []string `json:"imageRefs" binding:"required"`
	RawTexts      []string `json:"rawTexts"`
	ForceFallback bool     `json:"forceFallback"`
}

// ScanTexts handles POST /api/v1/scan: raw texts in, one candidate per
// image ref out, plus the fallback flag for the manual-entry UI path
func (h *Handler) ScanTexts(c *gin.Context) {
	var req scanTextsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result, err := h.scanService.ScanTexts(c.Request.Context(), req.RawTexts, req.ImageRefs, req.ForceFallback)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "scan failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// scanImagesRequest asks the service to recognize text itself
type scanImagesRequest struct {
	ImageRefs     []string `json:"imageRefs" binding:"required"`
	ForceFallback bool     `json:"forceFallback"`
}

// ScanImages handles POST /api/v1/scan/images: the service calls the
// external recognition collaborator per image, then runs the same batch flow
func (h *Handler) ScanImages(c *gin.Context) {
	var req scanImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result, err := h.scanService.ScanImages(c.Request.Context(), req.ImageRefs, req.ForceFallback)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrVisionAPIFailure):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "text recognition is not available"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "scan failed"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// resolveRequest asks for an insertion decision against a collection
// snapshot supplied by the caller; this service never reads the store
type resolveRequest struct {
	Candidate      domain.WineCandidate    `json:"candidate" binding:"required"`
	CollectionType domain.CollectionType   `json:"collectionType" binding:"required"`
	Records        []domain.ExistingRecord `json:"records"`
}

// resolveResponse pairs the decision with the match that produced it, so the
// UI can show the rationale on rejections
type resolveResponse struct {
	Decision domain.InsertionDecision `json:"decision"`
	Match    domain.MatchResult       `json:"match"`
}

// ResolveInsertion handles POST /api/v1/collection/resolve
func (h *Handler) ResolveInsertion(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if req.CollectionType != domain.CollectionCellar && req.CollectionType != domain.CollectionWishlist {
		c.JSON(http.StatusBadRequest, gin.H{"error": "collectionType must be 'cellar' or 'wishlist'"})
		return
	}

	decision, match := h.consolidationService.ResolveInsertion(req.Candidate, req.CollectionType, req.Records)

	c.JSON(http.StatusOK, resolveResponse{Decision: decision, Match: match})
}

// matchRequest asks how a candidate relates to a collection snapshot
type matchRequest struct {
	Candidate domain.WineCandidate    `json:"candidate" binding:"required"`
	Records   []domain.ExistingRecord `json:"records"`
}

// Match handles POST /api/v1/collection/match: classifies the candidate as
// exact duplicate, vintage variant, or no match, with a UI-ready rationale
func (h *Handler) Match(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result := h.matchingService.Match(req.Candidate, req.Records)

	c.JSON(http.StatusOK, result)
}

// cleanupRequest carries a full collection snapshot for duplicate merging
type cleanupRequest struct {
	Records []domain.ExistingRecord `json:"records" binding:"required"`
}

// CleanupCollection handles POST /api/v1/collection/cleanup: returns the
// merge plan for duplicate clusters; the caller applies it atomically
func (h *Handler) CleanupCollection(c *gin.Context) {
	var req cleanupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result := h.consolidationService.CleanupCollection(req.Records)

	c.JSON(http.StatusOK, result)
}
