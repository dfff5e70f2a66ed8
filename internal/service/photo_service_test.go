package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestRejectsEmptyFile(t *testing.T) {
	blobs := newFakeBlobStore()
	repo := &fakePhotoRepo{}
	svc := NewPhotoService(repo, blobs, "/uploads/")

	_, err := svc.Ingest(context.Background(), strings.NewReader(""), 0, "image/png", "empty.png", uuid.New())

	assert.ErrorIs(t, err, ErrEmptyFile)
	assert.Empty(t, blobs.puts)
	assert.Empty(t, repo.photos)
}

func TestIngestRejectsNonImage(t *testing.T) {
	blobs := newFakeBlobStore()
	repo := &fakePhotoRepo{}
	svc := NewPhotoService(repo, blobs, "/uploads/")

	_, err := svc.Ingest(context.Background(), strings.NewReader("hello"), 5, "text/plain", "notes.txt", uuid.New())

	assert.ErrorIs(t, err, ErrNotAnImage)
	assert.Empty(t, blobs.puts)
	assert.Empty(t, repo.photos)
}

func TestIngestStoresBytesAndRecord(t *testing.T) {
	blobs := newFakeBlobStore()
	repo := &fakePhotoRepo{}
	svc := NewPhotoService(repo, blobs, "/uploads/")
	author := uuid.New()

	photo, err := svc.Ingest(context.Background(), strings.NewReader("jpegbytes"), 9, "image/jpeg", "Holiday Pic.JPG", author)
	require.NoError(t, err)

	assert.Equal(t, []byte("jpegbytes"), blobs.puts[photo.StorageKey])
	assert.Equal(t, "/uploads/"+photo.StorageKey, photo.URL)
	assert.Equal(t, "Holiday Pic.JPG", photo.OriginalName)
	assert.Equal(t, author, photo.AuthorID)
	assert.True(t, strings.HasSuffix(photo.StorageKey, ".jpg"))
	require.Len(t, repo.photos, 1)
}

func TestIngestGeneratesDistinctKeysForIdenticalUploads(t *testing.T) {
	blobs := newFakeBlobStore()
	repo := &fakePhotoRepo{}
	svc := NewPhotoService(repo, blobs, "/uploads/")
	author := uuid.New()

	first, err := svc.Ingest(context.Background(), strings.NewReader("same"), 4, "image/png", "same.png", author)
	require.NoError(t, err)
	second, err := svc.Ingest(context.Background(), strings.NewReader("same"), 4, "image/png", "same.png", author)
	require.NoError(t, err)

	assert.NotEqual(t, first.StorageKey, second.StorageKey)
	assert.NotEqual(t, first.URL, second.URL)
	assert.Len(t, blobs.puts, 2)
}

func TestIngestKeyNeverContainsClientPath(t *testing.T) {
	blobs := newFakeBlobStore()
	svc := NewPhotoService(&fakePhotoRepo{}, blobs, "/uploads/")

	photo, err := svc.Ingest(context.Background(), strings.NewReader("x"), 1, "image/png", "../../etc/passwd.png", uuid.New())
	require.NoError(t, err)

	assert.NotContains(t, photo.StorageKey, "/")
	assert.NotContains(t, photo.StorageKey, "..")
	assert.True(t, strings.HasSuffix(photo.StorageKey, ".png"))
}

func TestIngestBlobFailure(t *testing.T) {
	blobs := newFakeBlobStore()
	blobs.err = errors.New("disk full")
	repo := &fakePhotoRepo{}
	svc := NewPhotoService(repo, blobs, "/uploads/")

	_, err := svc.Ingest(context.Background(), strings.NewReader("x"), 1, "image/png", "cat.png", uuid.New())

	assert.ErrorIs(t, err, ErrIngestIO)
	assert.Empty(t, repo.photos)
}

func TestIngestIgnoresSuspiciousExtension(t *testing.T) {
	blobs := newFakeBlobStore()
	svc := NewPhotoService(&fakePhotoRepo{}, blobs, "/uploads/")

	photo, err := svc.Ingest(context.Background(), strings.NewReader("x"), 1, "image/png", "no-extension", uuid.New())
	require.NoError(t, err)

	assert.NotContains(t, photo.StorageKey, ".")
}
