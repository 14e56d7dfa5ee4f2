package models

import "gorm.io/gorm"

// ProgressPhoto stores the object key, never a full URL, so the CDN
// host can change without touching rows.
type ProgressPhoto struct {
	gorm.Model
	UserID       uint   `gorm:"index;not null"`
	PhotoKey     string `gorm:"not null"`
	Description  string `gorm:"type:text"`
	WeightAtTime *float64
}
