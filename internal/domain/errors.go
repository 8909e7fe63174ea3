package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrDuplicateEntry is returned when an exact duplicate is rejected
	// under the wishlist policy
	ErrDuplicateEntry = errors.New("exact duplicate already in collection")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")

	// ErrVisionAPIFailure is returned when the text-recognition request fails
	ErrVisionAPIFailure = errors.New("text recognition request failed")

	// ErrNoTextRecognized is returned when the recognition service found no
	// usable text in an image
	ErrNoTextRecognized = errors.New("no text recognized in image")
)
