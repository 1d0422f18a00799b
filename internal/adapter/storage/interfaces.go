package storage

import (
	"context"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// ObjectStorage abstracts the S3-compatible bucket (R2 in production) that
// holds business media.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) error
	Download(ctx context.Context, key string) (io.ReadCloser, string, error)
	GetURL(key string) string
	Delete(ctx context.Context, key string) error
}

type ImageProcessor interface {
	Process(reader io.Reader) (io.Reader, int64, int, int, error)
}
