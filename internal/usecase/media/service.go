package media

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"

	"github.com/bookline/gateway/internal/adapter/storage"
)

type Service struct {
	storage   storage.ObjectStorage
	processor storage.ImageProcessor
}

func NewService(objectStorage storage.ObjectStorage, processor storage.ImageProcessor) *Service {
	return &Service{
		storage:   objectStorage,
		processor: processor,
	}
}

type UploadInput struct {
	File        io.Reader
	Filename    string
	ContentType string
}

type UploadResult struct {
	Key    string
	URL    string
	Width  int
	Height int
	Size   int64
}

// Upload bounds the image to storage-friendly dimensions and writes it under
// a fresh uploads/ key.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	processed, size, width, height, err := s.processor.Process(in.File)
	if err != nil {
		return nil, fmt.Errorf("processing image: %w", err)
	}

	ext := path.Ext(in.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	key := fmt.Sprintf("uploads/%s%s", uuid.New().String(), ext)

	if err := s.storage.Upload(ctx, key, processed, in.ContentType, size); err != nil {
		return nil, fmt.Errorf("uploading to storage: %w", err)
	}

	return &UploadResult{
		Key:    key,
		URL:    s.storage.GetURL(key),
		Width:  width,
		Height: height,
		Size:   size,
	}, nil
}

// Fetch streams a stored object and its content type.
func (s *Service) Fetch(ctx context.Context, key string) (io.ReadCloser, string, error) {
	return s.storage.Download(ctx, key)
}
