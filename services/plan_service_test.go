package services

import (
	"testing"

	"github.com/promit1201/fitin-v3-20177/config"
	"github.com/promit1201/fitin-v3-20177/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlanDefaultsToFree(t *testing.T) {
	config.DB = newTestDB(t)

	plan, err := GetPlan(42)
	require.NoError(t, err)
	assert.Equal(t, "free", plan.PlanType)
}

func TestUpsertPlanKeepsOneRowPerUser(t *testing.T) {
	config.DB = newTestDB(t)

	_, err := UpsertPlan(1, "free")
	require.NoError(t, err)
	_, err = UpsertPlan(1, "paid")
	require.NoError(t, err)
	_, err = UpsertPlan(1, "paid")
	require.NoError(t, err)

	var count int64
	config.DB.Model(&models.UserPlan{}).Where("user_id = ?", 1).Count(&count)
	assert.EqualValues(t, 1, count)

	paid, err := IsPaid(1)
	require.NoError(t, err)
	assert.True(t, paid)
}

func TestUpsertPlanRejectsUnknownTier(t *testing.T) {
	config.DB = newTestDB(t)

	_, err := UpsertPlan(1, "platinum")
	assert.ErrorIs(t, err, ErrInvalidPlanType)
}
