package storage

import (
	"sort"

	"github.com/katemerritt/growthlog/internal/model"
)

// AchievementRepo provides operations for Achievement entities.
type AchievementRepo struct {
	db *DB
}

// NewAchievementRepo creates a new achievement repository.
func NewAchievementRepo(db *DB) *AchievementRepo {
	return &AchievementRepo{db: db}
}

// GetAll retrieves all achievements for a user, oldest unlock first.
func (r *AchievementRepo) GetAll(userID string) ([]*model.Achievement, error) {
	all, err := GetAllByPrefix(r.db, model.AchievementUserPrefix(userID), func() *model.Achievement {
		return &model.Achievement{}
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].UnlockedAt.Before(all[j].UnlockedAt)
	})
	return all, nil
}

// Has checks whether the user already holds a badge of the given type.
func (r *AchievementRepo) Has(userID string, t model.AchievementType) (bool, error) {
	return r.db.Exists(model.GenerateAchievementKey(userID, t))
}

// Unlock stores an achievement unless one of the same type already
// exists. Returns true if the badge was newly unlocked. The existence
// check makes repeat calls idempotent; a racing duplicate would land on
// the same key and is harmless.
func (r *AchievementRepo) Unlock(achievement *model.Achievement) (bool, error) {
	exists, err := r.Has(achievement.UserID, achievement.Type)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	achievement.Key = model.GenerateAchievementKey(achievement.UserID, achievement.Type)
	if err := r.db.Set(achievement); err != nil {
		return false, err
	}
	return true, nil
}
