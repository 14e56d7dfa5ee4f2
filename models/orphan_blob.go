package models

import "gorm.io/gorm"

// OrphanBlob records an object whose metadata row was deleted but whose
// removal from storage has not been confirmed. Rows are cleared by the
// photo reconciler once the blob is gone.
type OrphanBlob struct {
	gorm.Model
	PhotoKey string `gorm:"uniqueIndex;not null"`
	Attempts int
}
