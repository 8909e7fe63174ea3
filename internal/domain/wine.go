package domain

import "time"

// ColorType is the wine color/category inferred from label text
type ColorType string

const (
	ColorRed       ColorType = "red"
	ColorWhite     ColorType = "white"
	ColorRose      ColorType = "rose"
	ColorSparkling ColorType = "sparkling"
)

// CollectionType selects the duplicate policy applied at insertion time
type CollectionType string

const (
	CollectionCellar   CollectionType = "cellar"
	CollectionWishlist CollectionType = "wishlist"
)

// UnknownDomain is the sentinel used when no estate name could be extracted
const UnknownDomain = "unknown domain"

// Vintage plausibility bounds for extraction
const (
	MinVintage = 1900
	MaxVintage = 2030
)

// WineCandidate is an enriched, not-yet-persisted wine record produced from
// one recognized label text. Name is never empty: enrichment falls back to
// the extracted domain or a placeholder before returning.
type WineCandidate struct {
	Name           string    `json:"name"`
	Vintage        int       `json:"vintage"`
	Color          ColorType `json:"colorType"`
	Domain         string    `json:"domain"`
	Region         string    `json:"region,omitempty"`
	GrapeVarieties []string  `json:"grapeVarieties,omitempty"` // detection order, max 3
	SourceImageRef string    `json:"sourceImageRef,omitempty"` // opaque, carried through unmodified
}

// ExistingRecord is a persisted wine entry in a user's collection. The ID is
// assigned by the persistence layer and never generated here. Quantity is
// meaningful only for cellar collections.
type ExistingRecord struct {
	ID string `json:"id"`
	WineCandidate
	Quantity       int            `json:"quantity"`
	CollectionType CollectionType `json:"collectionType"`
	CreatedAt      time.Time      `json:"createdAt,omitempty"`
}
