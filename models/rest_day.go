package models

import (
	"time"

	"gorm.io/gorm"
)

type RestDay struct {
	gorm.Model
	UserID   uint      `gorm:"index:idx_rest_user_date,unique;not null"`
	RestDate time.Time `gorm:"index:idx_rest_user_date,unique;not null"` // truncated to local midnight
}
