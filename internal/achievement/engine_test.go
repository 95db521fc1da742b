package achievement

import (
	"testing"
	"time"

	"github.com/katemerritt/growthlog/internal/dateutil"
	"github.com/katemerritt/growthlog/internal/model"
	"github.com/katemerritt/growthlog/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUser = "local-user"

var fixedToday = time.Date(2026, time.February, 10, 12, 0, 0, 0, time.Local)

type fixture struct {
	engine  *Engine
	entries *storage.EntryRepo
	streaks *storage.StreakRepo
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	entries := storage.NewEntryRepo(db)
	streaks := storage.NewStreakRepo(db)
	achievements := storage.NewAchievementRepo(db)

	engine := NewEngine(entries, streaks, achievements)
	engine.Now = func() time.Time { return fixedToday }
	return &fixture{engine: engine, entries: entries, streaks: streaks}
}

func (f *fixture) addEntry(t *testing.T, daysAgo int, category model.Category) {
	t.Helper()
	date := dateutil.DayKey(dateutil.SubDays(fixedToday, daysAgo))
	entry := model.NewEntry(testUser, date, category, model.MoodNeutral, "logged")
	require.NoError(t, f.entries.Create(entry))
}

func (f *fixture) setOverallStreak(t *testing.T, current, longest int) {
	t.Helper()
	streak := model.NewStreak(testUser, model.StreakOverall)
	streak.CurrentCount = current
	streak.LongestCount = longest
	require.NoError(t, f.streaks.Upsert(streak))
}

func types(achievements []*model.Achievement) []model.AchievementType {
	out := make([]model.AchievementType, len(achievements))
	for i, a := range achievements {
		out[i] = a.Type
	}
	return out
}

func TestNoEntriesNoAchievements(t *testing.T) {
	f := setup(t)

	unlocked, err := f.engine.CheckAndUnlock(testUser)
	require.NoError(t, err)
	assert.Empty(t, unlocked)
}

func TestFirstEntry(t *testing.T) {
	f := setup(t)
	f.addEntry(t, 0, model.CategoryExercise)

	unlocked, err := f.engine.CheckAndUnlock(testUser)
	require.NoError(t, err)
	assert.Equal(t, []model.AchievementType{model.AchievementFirstEntry}, types(unlocked))
}

func TestIdempotent(t *testing.T) {
	f := setup(t)
	f.addEntry(t, 0, model.CategoryExercise)

	first, err := f.engine.CheckAndUnlock(testUser)
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := f.engine.CheckAndUnlock(testUser)
	require.NoError(t, err)
	assert.Empty(t, second, "second run with no new state unlocks nothing")
}

func TestStreakThresholds(t *testing.T) {
	f := setup(t)
	f.addEntry(t, 0, model.CategoryExercise)
	f.setOverallStreak(t, 14, 14)

	unlocked, err := f.engine.CheckAndUnlock(testUser)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]model.AchievementType{
			model.AchievementFirstEntry,
			model.AchievementStreak7,
			model.AchievementStreak14,
		},
		types(unlocked))
}

func TestStreakThresholdUsesLongest(t *testing.T) {
	f := setup(t)
	f.addEntry(t, 0, model.CategoryExercise)
	// Streak broke, but the user once held 30 days.
	f.setOverallStreak(t, 1, 30)

	unlocked, err := f.engine.CheckAndUnlock(testUser)
	require.NoError(t, err)
	assert.Contains(t, types(unlocked), model.AchievementStreak30)
}

func TestConsistencyChampion(t *testing.T) {
	f := setup(t)
	f.addEntry(t, 0, model.CategoryExercise)
	f.addEntry(t, 0, model.CategoryReflection)

	unlocked, err := f.engine.CheckAndUnlock(testUser)
	require.NoError(t, err)
	assert.NotContains(t, types(unlocked), model.AchievementConsistencyChampion, "two categories is not enough")

	f.addEntry(t, 0, model.CategoryLearningTechnology)
	unlocked, err = f.engine.CheckAndUnlock(testUser)
	require.NoError(t, err)
	assert.Equal(t, []model.AchievementType{model.AchievementConsistencyChampion}, types(unlocked))
}

func TestReflectionMaster(t *testing.T) {
	f := setup(t)
	for i := 0; i < reflectionMasterCount; i++ {
		f.addEntry(t, i, model.CategoryReflection)
	}

	unlocked, err := f.engine.CheckAndUnlock(testUser)
	require.NoError(t, err)
	assert.Contains(t, types(unlocked), model.AchievementReflectionMaster)
}

func TestLearningWarriorCountsAllLearningCategories(t *testing.T) {
	f := setup(t)
	for i := 0; i < 20; i++ {
		f.addEntry(t, i, model.CategoryLearningTechnology)
		f.addEntry(t, i, model.CategoryLearningFinance)
	}
	for i := 20; i < 30; i++ {
		f.addEntry(t, i, model.CategoryLearningOther)
	}

	unlocked, err := f.engine.CheckAndUnlock(testUser)
	require.NoError(t, err)
	assert.Contains(t, types(unlocked), model.AchievementLearningWarrior)
}

func TestExerciseEnthusiast(t *testing.T) {
	f := setup(t)
	for i := 0; i < exerciseEnthusiastCount-1; i++ {
		f.addEntry(t, i, model.CategoryExercise)
	}

	unlocked, err := f.engine.CheckAndUnlock(testUser)
	require.NoError(t, err)
	assert.NotContains(t, types(unlocked), model.AchievementExerciseEnthusiast)

	f.addEntry(t, exerciseEnthusiastCount-1, model.CategoryExercise)
	unlocked, err = f.engine.CheckAndUnlock(testUser)
	require.NoError(t, err)
	assert.Contains(t, types(unlocked), model.AchievementExerciseEnthusiast)
}
