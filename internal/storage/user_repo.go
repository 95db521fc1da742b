package storage

import (
	"github.com/katemerritt/growthlog/internal/model"
)

// UserRepo provides operations for User entities.
type UserRepo struct {
	db *DB
}

// NewUserRepo creates a new user repository.
func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// Get retrieves a user by ID.
func (r *UserRepo) Get(id string) (*model.User, error) {
	user := &model.User{}
	if err := r.db.Get(model.GenerateUserKey(id), user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetOrCreate retrieves a user, creating it with defaults if absent.
func (r *UserRepo) GetOrCreate(id, name string) (*model.User, error) {
	user, err := r.Get(id)
	if err == nil {
		return user, nil
	}
	if !IsErrKeyNotFound(err) {
		return nil, err
	}

	user = model.NewUser(id, name)
	if err := r.db.Set(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update persists changes to an existing user.
func (r *UserRepo) Update(user *model.User) error {
	return r.db.Set(user)
}
