package repositories

import (
	"context"
	"time"
)

// ObjectInfo is the metadata returned by Head and List.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// ObjectStorage is the durable blob store (Cloudflare R2 in production,
// any S3-compatible bucket elsewhere).
type ObjectStorage interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	Head(ctx context.Context, key string) (*ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	// PresignPut returns a URL the client can PUT the object to directly.
	PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
	// PublicURL derives the CDN URL for a stored key.
	PublicURL(key string) string
}
