package storage

import (
	"github.com/katemerritt/growthlog/internal/model"
)

// GoalRepo provides operations for Goal entities.
type GoalRepo struct {
	db *DB
}

// NewGoalRepo creates a new goal repository.
func NewGoalRepo(db *DB) *GoalRepo {
	return &GoalRepo{db: db}
}

// Create creates a new goal.
func (r *GoalRepo) Create(goal *model.Goal) error {
	goal.Key = model.GenerateGoalKey(goal.UserID, goal.ID)
	return r.db.Set(goal)
}

// GetByID retrieves a goal by ID.
func (r *GoalRepo) GetByID(userID, id string) (*model.Goal, error) {
	goal := &model.Goal{}
	if err := r.db.Get(model.GenerateGoalKey(userID, id), goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// List retrieves all goals for a user.
func (r *GoalRepo) List(userID string) ([]*model.Goal, error) {
	return GetAllByPrefix(r.db, model.GoalUserPrefix(userID), func() *model.Goal {
		return &model.Goal{}
	})
}

// GetActive retrieves goals that are neither completed nor archived.
func (r *GoalRepo) GetActive(userID string) ([]*model.Goal, error) {
	all, err := r.List(userID)
	if err != nil {
		return nil, err
	}
	var results []*model.Goal
	for _, g := range all {
		if g.IsActive() {
			results = append(results, g)
		}
	}
	return results, nil
}

// GetCompleted retrieves completed goals, archived ones included.
func (r *GoalRepo) GetCompleted(userID string) ([]*model.Goal, error) {
	all, err := r.List(userID)
	if err != nil {
		return nil, err
	}
	var results []*model.Goal
	for _, g := range all {
		if g.IsCompleted {
			results = append(results, g)
		}
	}
	return results, nil
}

// Update persists changes to an existing goal.
func (r *GoalRepo) Update(goal *model.Goal) error {
	return r.db.Set(goal)
}

// IncrementProgress adds one completed day and latches IsCompleted once
// the target is reached. The transition never reverses.
func (r *GoalRepo) IncrementProgress(userID, id string) (*model.Goal, error) {
	goal, err := r.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	goal.CompletedDays++
	if goal.CompletedDays >= goal.TargetDays {
		goal.IsCompleted = true
	}
	if err := r.db.Set(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// Archive marks a goal archived. Archived goals stay in storage and in
// completed history.
func (r *GoalRepo) Archive(userID, id string) (*model.Goal, error) {
	goal, err := r.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	goal.IsArchived = true
	if err := r.db.Set(goal); err != nil {
		return nil, err
	}
	return goal, nil
}
