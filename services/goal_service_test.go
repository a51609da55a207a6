package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateGoals_LazyDefaults(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	goal, err := GetOrCreateGoals(user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 2000, goal.TargetCalories, 1e-9)
	assert.InDelta(t, 150, goal.TargetProtein, 1e-9)
	assert.InDelta(t, 250, goal.TargetCarbs, 1e-9)
	assert.InDelta(t, 65, goal.TargetFat, 1e-9)

	// Second read returns the same row, not another default.
	again, err := GetOrCreateGoals(user.ID)
	require.NoError(t, err)
	assert.Equal(t, goal.ID, again.ID)
}

func TestUpsertGoals(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	goal, err := UpsertGoals(user.ID, 1800, 120, 200, 60)
	require.NoError(t, err)
	assert.InDelta(t, 1800, goal.TargetCalories, 1e-9)

	read, err := GetOrCreateGoals(user.ID)
	require.NoError(t, err)
	assert.Equal(t, goal.ID, read.ID)
	assert.InDelta(t, 120, read.TargetProtein, 1e-9)
}
