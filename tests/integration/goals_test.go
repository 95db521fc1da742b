package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katemerritt/growthlog/internal/app"
	apperrors "github.com/katemerritt/growthlog/internal/errors"
	"github.com/katemerritt/growthlog/internal/model"
)

// =============================================================================
// Goal Lifecycle
// =============================================================================

func TestGoalLifecycleToCompletion(t *testing.T) {
	tc := setupTestContext(t)

	goal, err := tc.app.AddGoal(app.GoalInput{
		Title:      "exercise three days",
		TargetDays: 3,
		Category:   string(model.CategoryExercise),
	})
	require.NoError(t, err)
	assert.False(t, goal.IsCompleted)
	assert.Equal(t, 0, goal.CompletedDays)

	for day := 0; day < 3; day++ {
		goal, err = tc.app.IncrementGoal(goal.ID)
		require.NoError(t, err)
		tc.advanceDays(1)
	}

	assert.Equal(t, 3, goal.CompletedDays)
	assert.True(t, goal.IsCompleted)

	// Completed goals leave the active view.
	for _, g := range tc.app.Snapshot().ActiveGoals {
		assert.NotEqual(t, goal.ID, g.ID)
	}
}

func TestArchivedGoalRejectsProgress(t *testing.T) {
	tc := setupTestContext(t)

	goal, err := tc.app.AddGoal(app.GoalInput{
		Title:      "read nightly",
		TargetDays: 30,
		Category:   model.GoalCategoryAny,
	})
	require.NoError(t, err)

	_, err = tc.app.ArchiveGoal(goal.ID)
	require.NoError(t, err)

	_, err = tc.app.IncrementGoal(goal.ID)
	assert.ErrorIs(t, err, apperrors.ErrGoalArchived)
}

func TestGoalProgressSurvivesReopen(t *testing.T) {
	tc := setupTestContext(t)

	goal, err := tc.app.AddGoal(app.GoalInput{
		Title:      "meditation habit",
		TargetDays: 10,
		Category:   model.GoalCategoryAny,
	})
	require.NoError(t, err)

	_, err = tc.app.IncrementGoal(goal.ID)
	require.NoError(t, err)

	// A second coordinator over the same database sees the progress.
	reopened := app.New(tc.db)
	_, err = reopened.Initialize()
	require.NoError(t, err)

	var found *model.Goal
	for _, g := range reopened.Snapshot().ActiveGoals {
		if g.ID == goal.ID {
			found = g
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, 1, found.CompletedDays)
}
