package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Storage defines the operations this system issues against the object
// store: the submit pipeline writes attachments, the signed-url path
// reads them back. Files in the applications bucket are private, so read
// access goes through GetSignedURL only and nothing here exposes a
// direct download. Uploaded objects are never deleted (orphans from
// aborted submissions are accepted).
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// GetURL returns a public URL for the file
	GetURL(ctx context.Context, path string) (string, error)

	// GetSignedURL returns a temporary signed URL for private files
	GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

// Config holds storage configuration
type Config struct {
	Type      string // local, s3
	BasePath  string // for local storage
	BaseURL   string // public URL base
	Bucket    string // for S3-compatible stores
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string // R2 / Supabase storage / custom S3 endpoint
}

// NewStorage creates a storage instance based on configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
