package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/promit1201/fitin-v3-20177/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBlobStore keeps blobs in a map and can be told to fail removals,
// to exercise the orphan/reconcile path.
type fakeBlobStore struct {
	blobs       map[string][]byte
	failUpload  bool
	failRemoval bool
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: map[string][]byte{}}
}

func (s *fakeBlobStore) Upload(_ context.Context, key, _ string, body io.Reader) error {
	if s.failUpload {
		return errors.New("upload refused")
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.blobs[key] = data
	return nil
}

func (s *fakeBlobStore) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

func (s *fakeBlobStore) Remove(_ context.Context, keys ...string) error {
	if s.failRemoval {
		return errors.New("removal refused")
	}
	for _, key := range keys {
		delete(s.blobs, key)
	}
	return nil
}

func TestPhotoUploadAndList(t *testing.T) {
	db := newTestDB(t)
	blobs := newFakeBlobStore()
	svc := NewPhotoService(db, blobs)
	ctx := context.Background()

	photo, err := svc.Upload(ctx, 1, "before.jpg", "image/jpeg", strings.NewReader("jpegbytes"), "week 1", f(82.5))
	require.NoError(t, err)
	assert.Contains(t, blobs.blobs, photo.PhotoKey)
	assert.True(t, strings.HasPrefix(photo.PhotoKey, "1/"))
	assert.True(t, strings.HasSuffix(photo.PhotoKey, ".jpg"))

	views, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "https://cdn.test/"+photo.PhotoKey, views[0].URL)
	assert.Equal(t, "week 1", views[0].Description)

	// other users see nothing
	views, err = svc.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestPhotoUploadBlobFailureWritesNoRow(t *testing.T) {
	db := newTestDB(t)
	blobs := newFakeBlobStore()
	blobs.failUpload = true
	svc := NewPhotoService(db, blobs)

	_, err := svc.Upload(context.Background(), 1, "x.png", "image/png", strings.NewReader("data"), "", nil)
	require.Error(t, err)

	var count int64
	db.Model(&models.ProgressPhoto{}).Count(&count)
	assert.Zero(t, count)
}

func TestPhotoDeleteRemovesRowAndBlob(t *testing.T) {
	db := newTestDB(t)
	blobs := newFakeBlobStore()
	svc := NewPhotoService(db, blobs)
	ctx := context.Background()

	photo, err := svc.Upload(ctx, 1, "a.jpg", "image/jpeg", strings.NewReader("data"), "", nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 1, photo.ID))

	assert.NotContains(t, blobs.blobs, photo.PhotoKey)

	var rows int64
	db.Model(&models.ProgressPhoto{}).Count(&rows)
	assert.Zero(t, rows)

	var orphans int64
	db.Model(&models.OrphanBlob{}).Count(&orphans)
	assert.Zero(t, orphans, "successful removal must clear the outbox")
}

func TestPhotoDeleteBlobFailureLeavesOrphanForReconcile(t *testing.T) {
	db := newTestDB(t)
	blobs := newFakeBlobStore()
	svc := NewPhotoService(db, blobs)
	ctx := context.Background()

	photo, err := svc.Upload(ctx, 1, "a.jpg", "image/jpeg", strings.NewReader("data"), "", nil)
	require.NoError(t, err)

	blobs.failRemoval = true
	require.NoError(t, svc.Delete(ctx, 1, photo.ID), "row delete succeeded, so the user sees success")

	// no dangling reference...
	var rows int64
	db.Model(&models.ProgressPhoto{}).Count(&rows)
	assert.Zero(t, rows)

	// ...but the blob is still there, tracked by the outbox
	assert.Contains(t, blobs.blobs, photo.PhotoKey)
	var orphan models.OrphanBlob
	require.NoError(t, db.Where("photo_key = ?", photo.PhotoKey).First(&orphan).Error)

	// a failing pass only bumps the attempt counter
	cleared, err := svc.ReconcileOrphans(ctx)
	require.NoError(t, err)
	assert.Zero(t, cleared)
	require.NoError(t, db.Where("photo_key = ?", photo.PhotoKey).First(&orphan).Error)
	assert.Equal(t, 1, orphan.Attempts)

	// once storage recovers the orphan is removed
	blobs.failRemoval = false
	cleared, err = svc.ReconcileOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cleared)
	assert.NotContains(t, blobs.blobs, photo.PhotoKey)

	var orphans int64
	db.Model(&models.OrphanBlob{}).Count(&orphans)
	assert.Zero(t, orphans)
}

func TestPhotoDeleteNotFoundAndOwnership(t *testing.T) {
	db := newTestDB(t)
	blobs := newFakeBlobStore()
	svc := NewPhotoService(db, blobs)
	ctx := context.Background()

	photo, err := svc.Upload(ctx, 1, "a.jpg", "image/jpeg", strings.NewReader("data"), "", nil)
	require.NoError(t, err)

	require.Error(t, svc.Delete(ctx, 2, photo.ID))
	assert.Contains(t, blobs.blobs, photo.PhotoKey, "foreign delete must not touch the blob")

	require.NoError(t, svc.Delete(ctx, 1, photo.ID))
	require.Error(t, svc.Delete(ctx, 1, photo.ID), "second delete reports not-found")
}
