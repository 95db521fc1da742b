package app

import (
	"testing"
	"time"

	apperrors "github.com/katemerritt/growthlog/internal/errors"
	"github.com/katemerritt/growthlog/internal/model"
	"github.com/katemerritt/growthlog/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedToday = time.Date(2026, time.February, 10, 12, 0, 0, 0, time.Local)

func setup(t *testing.T) *App {
	t.Helper()
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	a := New(db)
	a.Now = func() time.Time { return fixedToday }
	a.StreakEngine.Now = a.Now
	a.AchievementEngine.Now = a.Now
	a.Recall.Now = a.Now
	return a
}

func initialized(t *testing.T) *App {
	t.Helper()
	a := setup(t)
	_, err := a.Initialize()
	require.NoError(t, err)
	return a
}

func entryInput() EntryInput {
	return EntryInput{
		Category: model.CategoryExercise,
		Mood:     model.MoodHappy,
		Content:  "morning run",
	}
}

func TestActionsRequireInitialize(t *testing.T) {
	a := setup(t)

	_, _, err := a.AddEntry(entryInput())
	assert.ErrorIs(t, err, apperrors.ErrUserNotInitialized)

	_, err = a.AddGoal(GoalInput{Title: "read daily", TargetDays: 30, Category: model.GoalCategoryAny})
	assert.ErrorIs(t, err, apperrors.ErrUserNotInitialized)
}

func TestInitializeCreatesLocalUser(t *testing.T) {
	a := setup(t)

	user, err := a.Initialize()
	require.NoError(t, err)
	assert.Equal(t, model.LocalUserID, user.ID)
	assert.Equal(t, model.LocalUserName, user.Name)
	assert.Equal(t, 1, user.Preferences.GraceDays)

	snap := a.Snapshot()
	assert.NotNil(t, snap.User)
	assert.Empty(t, snap.TodayEntries)
}

func TestInitializeIsStable(t *testing.T) {
	a := setup(t)

	first, err := a.Initialize()
	require.NoError(t, err)
	second, err := a.Initialize()
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())
}

func TestAddEntryUpdatesStreaksAndAchievements(t *testing.T) {
	a := initialized(t)

	entry, unlocked, err := a.AddEntry(entryInput())
	require.NoError(t, err)
	assert.Equal(t, "2026-02-10", entry.Date)
	assert.Equal(t, "morning run", entry.Content)

	var types []model.AchievementType
	for _, u := range unlocked {
		types = append(types, u.Type)
	}
	assert.Contains(t, types, model.AchievementFirstEntry)

	snap := a.Snapshot()
	require.Len(t, snap.TodayEntries, 1)
	require.Len(t, snap.Streaks, 4)
	for _, s := range snap.Streaks {
		switch s.Type {
		case model.StreakExercise, model.StreakOverall:
			assert.Equal(t, 1, s.CurrentCount, "type %s", s.Type)
		default:
			assert.Equal(t, 0, s.CurrentCount, "type %s", s.Type)
		}
	}
	assert.NotEmpty(t, snap.Achievements)
}

func TestAddEntryValidatesInput(t *testing.T) {
	a := initialized(t)

	_, _, err := a.AddEntry(EntryInput{Category: "sleep", Mood: model.MoodHappy, Content: "x"})
	assert.Error(t, err)

	_, _, err = a.AddEntry(EntryInput{Category: model.CategoryExercise, Mood: "ecstatic", Content: "x"})
	assert.Error(t, err)
}

func TestSubscribeSeesMutations(t *testing.T) {
	a := initialized(t)

	var seen []Snapshot
	a.Subscribe(func(s Snapshot) { seen = append(seen, s) })

	_, _, err := a.AddEntry(entryInput())
	require.NoError(t, err)
	require.NotEmpty(t, seen)
	assert.Len(t, seen[len(seen)-1].TodayEntries, 1)
}

func TestUpdateEntryKeepsDate(t *testing.T) {
	a := initialized(t)
	entry, _, err := a.AddEntry(entryInput())
	require.NoError(t, err)

	title := "5k"
	mood := model.MoodFire
	updated, err := a.UpdateEntry(entry.ID, EntryUpdate{Title: &title, Mood: &mood})
	require.NoError(t, err)
	assert.Equal(t, "5k", updated.Title)
	assert.Equal(t, model.MoodFire, updated.Mood)
	assert.Equal(t, entry.Date, updated.Date)
	assert.Equal(t, "morning run", updated.Content, "unset fields untouched")
}

func TestUpdateEntryMissing(t *testing.T) {
	a := initialized(t)

	_, err := a.UpdateEntry("nope", EntryUpdate{})
	assert.ErrorIs(t, err, apperrors.ErrEntryNotFound)
}

func TestDeleteEntryRecomputesStreaks(t *testing.T) {
	a := initialized(t)
	entry, _, err := a.AddEntry(entryInput())
	require.NoError(t, err)

	require.NoError(t, a.DeleteEntry(entry.ID))

	snap := a.Snapshot()
	assert.Empty(t, snap.TodayEntries)
	for _, s := range snap.Streaks {
		assert.Equal(t, 0, s.CurrentCount)
	}
}

func TestTogglePinAndArchive(t *testing.T) {
	a := initialized(t)
	entry, _, err := a.AddEntry(entryInput())
	require.NoError(t, err)

	pinned, err := a.TogglePin(entry.ID)
	require.NoError(t, err)
	assert.True(t, pinned.IsPinned)

	unpinned, err := a.TogglePin(entry.ID)
	require.NoError(t, err)
	assert.False(t, unpinned.IsPinned)

	archived, err := a.ToggleArchive(entry.ID)
	require.NoError(t, err)
	assert.True(t, archived.IsArchived)
}

func TestGoalLifecycle(t *testing.T) {
	a := initialized(t)

	goal, err := a.AddGoal(GoalInput{Title: "meditate", TargetDays: 2, Category: string(model.CategoryReflection)})
	require.NoError(t, err)
	assert.Equal(t, "2026-02-10", goal.StartDate)
	assert.Len(t, a.Snapshot().ActiveGoals, 1)

	goal, err = a.IncrementGoal(goal.ID)
	require.NoError(t, err)
	assert.False(t, goal.IsCompleted)

	goal, err = a.IncrementGoal(goal.ID)
	require.NoError(t, err)
	assert.True(t, goal.IsCompleted)
	assert.Empty(t, a.Snapshot().ActiveGoals, "completed goals leave the active view")

	archived, err := a.ArchiveGoal(goal.ID)
	require.NoError(t, err)
	assert.True(t, archived.IsArchived)

	_, err = a.IncrementGoal(goal.ID)
	assert.ErrorIs(t, err, apperrors.ErrGoalArchived)
}

func TestGoalValidation(t *testing.T) {
	a := initialized(t)

	_, err := a.AddGoal(GoalInput{Title: "", TargetDays: 10, Category: model.GoalCategoryAny})
	assert.Error(t, err)

	_, err = a.AddGoal(GoalInput{Title: "x", TargetDays: 0, Category: model.GoalCategoryAny})
	assert.Error(t, err)

	_, err = a.AddGoal(GoalInput{Title: "x", TargetDays: 10, Category: "sleep"})
	assert.Error(t, err)

	_, err = a.IncrementGoal("nope")
	assert.ErrorIs(t, err, apperrors.ErrGoalNotFound)
}

func TestUpdatePreferences(t *testing.T) {
	a := initialized(t)

	prefs := model.DefaultPreferences()
	prefs.GraceDays = 3
	prefs.DailyReminderTime = "21:30"
	user, err := a.UpdatePreferences(prefs)
	require.NoError(t, err)
	assert.Equal(t, 3, user.Preferences.GraceDays)

	prefs.GraceDays = -1
	_, err = a.UpdatePreferences(prefs)
	assert.Error(t, err)

	prefs.GraceDays = 1
	prefs.Theme = "neon"
	_, err = a.UpdatePreferences(prefs)
	assert.Error(t, err)
}

func TestCompleteOnboarding(t *testing.T) {
	a := initialized(t)

	require.NoError(t, a.CompleteOnboarding())
	assert.True(t, a.User().OnboardingComplete)
}

func TestFailedUserWriteLeavesCacheUntouched(t *testing.T) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)

	a := New(db)
	a.Now = func() time.Time { return fixedToday }
	_, err = a.Initialize()
	require.NoError(t, err)

	// Closing the database makes every subsequent write fail.
	require.NoError(t, db.Close())

	prefs := a.User().Preferences
	prefs.GraceDays = 6
	_, err = a.UpdatePreferences(prefs)
	require.Error(t, err)
	assert.Equal(t, 1, a.User().Preferences.GraceDays,
		"cache keeps last-known-good preferences")

	err = a.CompleteOnboarding()
	require.Error(t, err)
	assert.False(t, a.User().OnboardingComplete,
		"cache keeps last-known-good onboarding state")
}

func TestRecallSuggestionsThroughApp(t *testing.T) {
	a := initialized(t)
	_, _, err := a.AddEntry(entryInput())
	require.NoError(t, err)

	suggestions, err := a.RecallSuggestions(3)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.NotNil(t, suggestions[0].Entry)
}
