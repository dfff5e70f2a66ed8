package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/vcaron/dialogue/internal/domain"
	"github.com/vcaron/dialogue/internal/repository"
	"github.com/vcaron/dialogue/internal/storage"
)

var (
	ErrEmptyFile  = errors.New("uploaded file is empty")
	ErrNotAnImage = errors.New("uploaded file is not an image")
	ErrIngestIO   = errors.New("storing photo failed")
)

// Upload is the raw material handed over by the transport layer: a byte
// stream plus the client-declared content type and filename, none of it
// trusted beyond the MIME prefix check.
type Upload struct {
	Content     io.Reader
	Size        int64
	ContentType string
	Filename    string
}

// PhotoService ingests uploaded images: validate, write the bytes to the
// blob store under a generated key, persist the Photo record. It knows
// nothing about messages.
type PhotoService struct {
	photoRepo repository.PhotoRepository
	blobs     storage.BlobStore
	urlPrefix string
}

func NewPhotoService(photoRepo repository.PhotoRepository, blobs storage.BlobStore, urlPrefix string) *PhotoService {
	return &PhotoService{
		photoRepo: photoRepo,
		blobs:     blobs,
		urlPrefix: urlPrefix,
	}
}

// Ingest validates and persists one upload. Two ingests of identical content
// produce two distinct photos under two distinct keys; there is no
// content-addressing or deduplication.
func (s *PhotoService) Ingest(ctx context.Context, content io.Reader, size int64, contentType, originalName string, authorID uuid.UUID) (*domain.Photo, error) {
	if size == 0 {
		return nil, ErrEmptyFile
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}

	key := newStorageKey(originalName)

	if err := s.blobs.Put(ctx, key, content); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIngestIO, err)
	}

	photo := &domain.Photo{
		ID:           uuid.New(),
		StorageKey:   key,
		OriginalName: originalName,
		URL:          s.urlPrefix + key,
		AuthorID:     authorID,
		CreatedAt:    time.Now(),
	}

	if err := s.photoRepo.Create(ctx, photo); err != nil {
		return nil, fmt.Errorf("creating photo: %w", err)
	}

	return photo, nil
}

var extRe = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)

// newStorageKey generates the physical name for an upload: a fresh ULID plus
// the sanitized extension of the client filename. The client name itself is
// never part of the key, which rules out collisions and path traversal.
func newStorageKey(originalName string) string {
	key := ulid.Make().String()
	if ext := strings.ToLower(filepath.Ext(filepath.Base(originalName))); extRe.MatchString(ext) {
		key += ext
	}
	return key
}
