package storage

import (
	"github.com/katemerritt/growthlog/internal/model"
)

// StreakRepo provides operations for Streak entities.
type StreakRepo struct {
	db *DB
}

// NewStreakRepo creates a new streak repository.
func NewStreakRepo(db *DB) *StreakRepo {
	return &StreakRepo{db: db}
}

// Get retrieves the streak for a user and type, or nil if none has
// been computed yet. Absence is a normal zero state, not an error.
func (r *StreakRepo) Get(userID string, t model.StreakType) (*model.Streak, error) {
	streak := &model.Streak{}
	err := r.db.Get(model.GenerateStreakKey(userID, t), streak)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return streak, nil
}

// GetAll retrieves all streaks for a user.
func (r *StreakRepo) GetAll(userID string) ([]*model.Streak, error) {
	return GetAllByPrefix(r.db, model.StreakUserPrefix(userID), func() *model.Streak {
		return &model.Streak{}
	})
}

// Upsert stores a streak, replacing any previous row for its
// (user, type) pair.
func (r *StreakRepo) Upsert(streak *model.Streak) error {
	streak.Key = model.GenerateStreakKey(streak.UserID, streak.Type)
	return r.db.Set(streak)
}
