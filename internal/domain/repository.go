package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// VisionClient defines the interface to the external text-recognition
// collaborator. It converts a photographed label into raw text; everything
// downstream of that raw text is this service's job.
type VisionClient interface {
	RecognizeText(ctx context.Context, imageRef string) (*RecognitionResponse, error)
}
