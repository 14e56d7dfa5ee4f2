package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/promit1201/fitin-v3-20177/models"
	"github.com/promit1201/fitin-v3-20177/utils"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrEmptyUpload = errors.New("no photo data supplied")

type PhotoService struct {
	db    *gorm.DB
	blobs utils.BlobStore
}

func NewPhotoService(db *gorm.DB, blobs utils.BlobStore) *PhotoService {
	return &PhotoService{db: db, blobs: blobs}
}

type PhotoView struct {
	models.ProgressPhoto
	URL string `json:"url"`
}

// Upload stores the blob first and the metadata row second. A row is
// never written for a blob that failed to land; if the row insert fails
// after the blob landed, the key goes to the orphan outbox so the
// reconciler can remove it.
func (s *PhotoService) Upload(ctx context.Context, userID uint, filename, contentType string, body io.Reader, description string, weightAtTime *float64) (*models.ProgressPhoto, error) {
	if body == nil {
		return nil, ErrEmptyUpload
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	key := fmt.Sprintf("%d/%s%s", userID, uuid.NewString(), ext)

	if err := s.blobs.Upload(ctx, key, contentType, body); err != nil {
		return nil, err
	}

	photo := &models.ProgressPhoto{
		UserID:       userID,
		PhotoKey:     key,
		Description:  description,
		WeightAtTime: weightAtTime,
	}
	if err := s.db.WithContext(ctx).Create(photo).Error; err != nil {
		s.recordOrphan(key)
		return nil, err
	}

	EmitEvent(userID, "progress_photo.created", photo)
	return photo, nil
}

func (s *PhotoService) List(ctx context.Context, userID uint) ([]PhotoView, error) {
	var photos []models.ProgressPhoto
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}

	views := make([]PhotoView, 0, len(photos))
	for _, p := range photos {
		views = append(views, PhotoView{ProgressPhoto: p, URL: s.blobs.PublicURL(p.PhotoKey)})
	}
	return views, nil
}

// Delete removes the metadata row and the orphan-outbox entry in one
// transaction, then takes the blob down. Ordering the row first means a
// crash can leave an orphaned blob but never a row pointing at nothing,
// and the caller always learns when the row could not be deleted.
func (s *PhotoService) Delete(ctx context.Context, userID, photoID uint) error {
	var key string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var photo models.ProgressPhoto
		if err := tx.Where("id = ? AND user_id = ?", photoID, userID).First(&photo).Error; err != nil {
			return err
		}
		key = photo.PhotoKey

		if err := tx.Unscoped().Delete(&photo).Error; err != nil {
			return err
		}
		return tx.Create(&models.OrphanBlob{PhotoKey: key}).Error
	})
	if err != nil {
		return err
	}

	if err := s.blobs.Remove(ctx, key); err != nil {
		log.WithError(err).WithField("key", key).Warn("blob removal deferred to reconciler")
	} else {
		s.clearOrphan(key)
	}

	EmitEvent(userID, "progress_photo.deleted", map[string]uint{"id": photoID})
	return nil
}

// ReconcileOrphans retries removal of every outstanding orphaned blob.
// Returns how many were cleared.
func (s *PhotoService) ReconcileOrphans(ctx context.Context) (int, error) {
	var orphans []models.OrphanBlob
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&orphans).Error; err != nil {
		return 0, err
	}

	cleared := 0
	for _, o := range orphans {
		if err := s.blobs.Remove(ctx, o.PhotoKey); err != nil {
			log.WithError(err).WithField("key", o.PhotoKey).Warn("orphan removal failed")
			s.db.Model(&models.OrphanBlob{}).Where("id = ?", o.ID).
				UpdateColumn("attempts", gorm.Expr("attempts + 1"))
			continue
		}
		s.clearOrphan(o.PhotoKey)
		cleared++
	}
	return cleared, nil
}

// ReconcileLoop runs ReconcileOrphans periodically until the context is
// cancelled.
func (s *PhotoService) ReconcileLoop(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if _, err := s.ReconcileOrphans(ctx); err != nil {
				log.WithError(err).Warn("orphan reconcile pass failed")
			}
		}
	}
}

func (s *PhotoService) recordOrphan(key string) {
	if err := s.db.Create(&models.OrphanBlob{PhotoKey: key}).Error; err != nil {
		log.WithError(err).WithField("key", key).Error("could not record orphaned blob")
	}
}

func (s *PhotoService) clearOrphan(key string) {
	s.db.Unscoped().Where("photo_key = ?", key).Delete(&models.OrphanBlob{})
}
