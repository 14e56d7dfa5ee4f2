package models

import "gorm.io/gorm"

// UserPlan gates feature access. The unique index on UserID keeps the
// at-most-one-plan-per-user invariant in the database rather than in
// application code.
type UserPlan struct {
	gorm.Model
	UserID   uint   `gorm:"uniqueIndex;not null"`
	PlanType string `gorm:"size:8;not null;default:free"` // free|paid
}
