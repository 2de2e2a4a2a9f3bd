package idempotency

import (
	"context"
	"time"
)

// Response is a completed response kept for replay.
type Response struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// Store keeps idempotency keys and the responses produced for them.
type Store interface {
	// Reserve claims key for ttl. It returns (nil, nil) when the key was free and is now
	// held by the caller, the cached response when the key already completed, or an
	// errs.Conflict error when another request still holds it.
	Reserve(ctx context.Context, key string, ttl time.Duration) (*Response, error)

	// Save stores the completed response for key.
	Save(ctx context.Context, key string, resp Response, ttl time.Duration) error

	// Release frees key so the request can be retried.
	Release(ctx context.Context, key string) error
}
