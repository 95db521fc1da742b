// Package model defines the domain models for Growthlog.
package model

// Model is the interface that all database models must implement.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// KeyPrefix constants for database key generation.
const (
	PrefixUser        = "user"
	PrefixEntry       = "entry"
	PrefixStreak      = "streak"
	PrefixGoal        = "goal"
	PrefixAchievement = "achv"
)

// LocalUserID is the single user identity in local-only mode.
const LocalUserID = "local-user"

// LocalUserName is the display name for the local user.
const LocalUserName = "You"
