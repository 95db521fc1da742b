// Package achievement evaluates badge predicates against entry and
// streak state and unlocks badges exactly once.
package achievement

import (
	"strconv"
	"time"

	"github.com/katemerritt/growthlog/internal/dateutil"
	"github.com/katemerritt/growthlog/internal/logging"
	"github.com/katemerritt/growthlog/internal/model"
	"github.com/katemerritt/growthlog/internal/storage"
)

// Category volume thresholds.
const (
	reflectionMasterCount   = 10
	learningWarriorCount    = 50
	exerciseEnthusiastCount = 30
	consistencyCategories   = 3
)

// streakThresholds maps streak badges to the day count that unlocks them.
var streakThresholds = []struct {
	Type model.AchievementType
	Days int
}{
	{model.AchievementStreak7, 7},
	{model.AchievementStreak14, 14},
	{model.AchievementStreak30, 30},
	{model.AchievementStreak60, 60},
	{model.AchievementStreak90, 90},
}

// Engine checks and unlocks achievements.
type Engine struct {
	entries      *storage.EntryRepo
	streaks      *storage.StreakRepo
	achievements *storage.AchievementRepo

	// Now is the clock; replaceable in tests.
	Now func() time.Time
}

// NewEngine creates an achievement engine over the given repositories.
func NewEngine(entries *storage.EntryRepo, streaks *storage.StreakRepo, achievements *storage.AchievementRepo) *Engine {
	return &Engine{
		entries:      entries,
		streaks:      streaks,
		achievements: achievements,
		Now:          time.Now,
	}
}

// CheckAndUnlock evaluates every badge predicate and persists the ones
// newly satisfied. It returns exactly the badges created by this call;
// re-running with no new qualifying state returns an empty slice.
func (e *Engine) CheckAndUnlock(userID string) ([]*model.Achievement, error) {
	var unlocked []*model.Achievement

	unlock := func(t model.AchievementType, metadata map[string]string) error {
		a := model.NewAchievement(userID, t)
		a.Metadata = metadata
		created, err := e.achievements.Unlock(a)
		if err != nil {
			return err
		}
		if created {
			unlocked = append(unlocked, a)
			logging.Info("achievement unlocked", "type", string(t))
		}
		return nil
	}

	// First entry
	count, err := e.entries.Count(userID)
	if err != nil {
		return nil, err
	}
	if count >= 1 {
		if err := unlock(model.AchievementFirstEntry, nil); err != nil {
			return nil, err
		}
	}

	// Overall streak milestones, judged against the best of current
	// and longest so a once-reached milestone still unlocks.
	overall, err := e.streaks.Get(userID, model.StreakOverall)
	if err != nil {
		return nil, err
	}
	if overall != nil {
		best := overall.CurrentCount
		if overall.LongestCount > best {
			best = overall.LongestCount
		}
		for _, threshold := range streakThresholds {
			if best >= threshold.Days {
				meta := map[string]string{"days": strconv.Itoa(threshold.Days)}
				if err := unlock(threshold.Type, meta); err != nil {
					return nil, err
				}
			}
		}
	}

	// Three or more distinct categories logged today
	todayEntries, err := e.entries.GetByDate(userID, dateutil.DayKey(e.Now()))
	if err != nil {
		return nil, err
	}
	categories := make(map[model.Category]bool)
	for _, entry := range todayEntries {
		categories[entry.Category] = true
	}
	if len(categories) >= consistencyCategories {
		if err := unlock(model.AchievementConsistencyChampion, nil); err != nil {
			return nil, err
		}
	}

	// Category volume badges
	reflection, err := e.categoryCount(userID, func(c model.Category) bool {
		return c == model.CategoryReflection
	})
	if err != nil {
		return nil, err
	}
	if reflection >= reflectionMasterCount {
		if err := unlock(model.AchievementReflectionMaster, nil); err != nil {
			return nil, err
		}
	}

	learning, err := e.categoryCount(userID, model.Category.IsLearning)
	if err != nil {
		return nil, err
	}
	if learning >= learningWarriorCount {
		if err := unlock(model.AchievementLearningWarrior, nil); err != nil {
			return nil, err
		}
	}

	exercise, err := e.categoryCount(userID, func(c model.Category) bool {
		return c == model.CategoryExercise
	})
	if err != nil {
		return nil, err
	}
	if exercise >= exerciseEnthusiastCount {
		if err := unlock(model.AchievementExerciseEnthusiast, nil); err != nil {
			return nil, err
		}
	}

	return unlocked, nil
}

// categoryCount counts all of a user's entries whose category matches.
// Archived entries still count; badges reward having written them.
func (e *Engine) categoryCount(userID string, match func(model.Category) bool) (int, error) {
	entries, err := e.entries.GetRecent(userID, 0)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, entry := range entries {
		if match(entry.Category) {
			count++
		}
	}
	return count, nil
}
