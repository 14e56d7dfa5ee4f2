package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/promit1201/fitin-v3-20177/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.NutritionLog{},
		&models.WorkoutLog{},
		&models.UserPlan{},
		&models.UserGoal{},
		&models.RestDay{},
		&models.ProgressPhoto{},
		&models.OrphanBlob{},
	))
	return db
}

func f(v float64) *float64 { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
