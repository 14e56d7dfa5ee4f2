package services

import (
	"testing"
	"time"

	"github.com/promit1201/fitin-v3-20177/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleRestDay(t *testing.T) {
	config.DB = newTestDB(t)
	day := date(2024, time.March, 10)

	on, err := ToggleRestDay(1, day)
	require.NoError(t, err)
	assert.True(t, on)

	days, err := ListRestDays(1, day, day)
	require.NoError(t, err)
	assert.Len(t, days, 1)

	off, err := ToggleRestDay(1, day)
	require.NoError(t, err)
	assert.False(t, off)

	days, err = ListRestDays(1, day, day)
	require.NoError(t, err)
	assert.Empty(t, days)

	// toggling back on works after the hard delete
	on, err = ToggleRestDay(1, day)
	require.NoError(t, err)
	assert.True(t, on)
}

func TestListRestDaysWindow(t *testing.T) {
	config.DB = newTestDB(t)

	for _, d := range []time.Time{
		date(2024, time.March, 1),
		date(2024, time.March, 15),
		date(2024, time.April, 1),
	} {
		_, err := ToggleRestDay(1, d)
		require.NoError(t, err)
	}

	days, err := ListRestDays(1, date(2024, time.March, 1), date(2024, time.March, 31))
	require.NoError(t, err)
	assert.Len(t, days, 2)
}
