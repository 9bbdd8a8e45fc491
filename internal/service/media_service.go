package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tripverse/travel-api/internal/domain"
	"github.com/tripverse/travel-api/internal/media"
	"github.com/tripverse/travel-api/internal/repository/ports"
)

var ErrImageValidation = errors.New("image validation failed")

const defaultMaxImageBytes = int64(5 * 1024 * 1024)

var allowedImageMIMEs = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

type ImageUpload struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}

type MediaServiceConfig struct {
	Bucket        string
	MaxImageBytes int64
	MaxDimension  int
}

// MediaService handles the admin image pipeline: validate, downscale
// oversized uploads through the processor, push to object storage and
// point the catalog row at the new URL.
type MediaService struct {
	storage   ports.ObjectStorage
	processor media.Processor
	catalogs  map[domain.ContentType]reviewableImageCatalog

	bucket        string
	maxImageBytes int64
	maxDimension  int
	now           func() time.Time
}

type reviewableImageCatalog interface {
	UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error
}

func NewMediaService(
	storage ports.ObjectStorage,
	processor media.Processor,
	tours ports.TourRepository,
	hotels ports.HotelRepository,
	cars ports.CarRepository,
	activities ports.ActivityRepository,
	cfg MediaServiceConfig,
) *MediaService {
	maxBytes := cfg.MaxImageBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxImageBytes
	}
	maxDimension := cfg.MaxDimension
	if maxDimension <= 0 {
		maxDimension = media.DefaultMaxDimension
	}
	return &MediaService{
		storage:   storage,
		processor: processor,
		catalogs: map[domain.ContentType]reviewableImageCatalog{
			domain.ContentTours:      tours,
			domain.ContentHotels:     hotels,
			domain.ContentCars:       cars,
			domain.ContentActivities: activities,
		},
		bucket:        strings.TrimSpace(cfg.Bucket),
		maxImageBytes: maxBytes,
		maxDimension:  maxDimension,
		now:           time.Now,
	}
}

func (s *MediaService) AttachItemImage(ctx context.Context, itemType domain.ContentType, itemID uuid.UUID, upload ImageUpload) (string, error) {
	catalog, ok := s.catalogs[itemType]
	if !ok {
		return "", fmt.Errorf("%w: %s does not carry images", ErrImageValidation, itemType)
	}
	if upload.Size <= 0 {
		return "", fmt.Errorf("%w: empty upload", ErrImageValidation)
	}
	if upload.Size > s.maxImageBytes {
		return "", fmt.Errorf("%w: upload exceeds %d bytes", ErrImageValidation, s.maxImageBytes)
	}
	contentType := strings.ToLower(strings.TrimSpace(upload.ContentType))
	if _, ok := allowedImageMIMEs[contentType]; !ok {
		return "", fmt.Errorf("%w: unsupported content type %s", ErrImageValidation, upload.ContentType)
	}

	reader, size, contentType, err := s.prepare(ctx, upload)
	if err != nil {
		return "", err
	}

	objectKey := fmt.Sprintf("%s/%s/%s%s",
		itemType, itemID.String(),
		s.now().UTC().Format("20060102T150405Z0700"),
		imageExtension(contentType, upload.FileName),
	)
	url, err := s.storage.Upload(ctx, s.bucket, objectKey, contentType, reader, size)
	if err != nil {
		return "", err
	}

	if err := catalog.UpdateImage(ctx, itemID, url); err != nil {
		if isNotFound(err) {
			return "", ErrItemNotFound
		}
		return "", err
	}
	return url, nil
}

func (s *MediaService) prepare(ctx context.Context, upload ImageUpload) (io.Reader, int64, string, error) {
	if s.processor == nil {
		return upload.Reader, upload.Size, upload.ContentType, nil
	}
	result, err := s.processor.Process(ctx, media.Upload{
		Reader:      upload.Reader,
		Size:        upload.Size,
		FileName:    upload.FileName,
		ContentType: upload.ContentType,
	}, s.maxDimension)
	if err != nil {
		return nil, 0, "", err
	}
	return bytes.NewReader(result.Bytes), int64(len(result.Bytes)), result.ContentType, nil
}

func imageExtension(contentType, fileName string) string {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	}
	if ext := strings.ToLower(strings.TrimSpace(filepath.Ext(fileName))); ext != "" {
		return ext
	}
	return ".bin"
}
