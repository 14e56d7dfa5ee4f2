package models

import (
	"time"

	"gorm.io/gorm"
)

type UserGoal struct {
	gorm.Model
	UserID     uint   `gorm:"index:idx_goal_user_type,unique;not null"`
	GoalType   string `gorm:"index:idx_goal_user_type,unique;size:32;not null"`
	GoalValue  string `gorm:"not null"`
	TargetDate *time.Time
}
