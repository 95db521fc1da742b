// Package app coordinates the engines and the store behind a single
// facade. It owns read-through caches of the hot state (user, today's
// entries, streaks, active goals, achievements) and notifies observers
// after every successful mutation.
package app

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/katemerritt/growthlog/internal/achievement"
	"github.com/katemerritt/growthlog/internal/dateutil"
	apperrors "github.com/katemerritt/growthlog/internal/errors"
	"github.com/katemerritt/growthlog/internal/logging"
	"github.com/katemerritt/growthlog/internal/model"
	"github.com/katemerritt/growthlog/internal/motivation"
	"github.com/katemerritt/growthlog/internal/storage"
	"github.com/katemerritt/growthlog/internal/streak"
	"github.com/katemerritt/growthlog/internal/validate"
)

// Snapshot is a point-in-time copy of the cached state handed to
// observers. Slices are shared but never mutated after publication.
type Snapshot struct {
	User         *model.User
	TodayEntries []*model.Entry
	Streaks      []*model.Streak
	ActiveGoals  []*model.Goal
	Achievements []*model.Achievement
}

// EntryInput carries the fields of a new entry. The date is always
// today; backdating is not an action.
type EntryInput struct {
	Category         model.Category
	Mood             model.Mood
	Content          string
	Title            string
	Tags             []string
	TimeSpentMinutes int
}

// EntryUpdate carries edits to an existing entry. Nil fields are left
// unchanged; the date is immutable.
type EntryUpdate struct {
	Title            *string
	Content          *string
	Mood             *model.Mood
	Tags             []string
	TimeSpentMinutes *int
}

// GoalInput carries the fields of a new goal.
type GoalInput struct {
	Title       string
	Description string
	TargetDays  int
	Category    string
}

// App is the application state coordinator. Storage failures abort the
// running action and leave the caches at their last known good state.
type App struct {
	users        *storage.UserRepo
	entries      *storage.EntryRepo
	streaks      *storage.StreakRepo
	goals        *storage.GoalRepo
	achievements *storage.AchievementRepo

	// Engines are exported fields so callers can reach their clocks.
	StreakEngine      *streak.Engine
	AchievementEngine *achievement.Engine
	Recall            *motivation.Engine

	// Now is the clock; replaceable in tests.
	Now func() time.Time

	mu          sync.RWMutex
	snapshot    Snapshot
	subscribers []func(Snapshot)
	initialized bool
}

// New creates a coordinator over an open database.
func New(db *storage.DB) *App {
	entries := storage.NewEntryRepo(db)
	streaks := storage.NewStreakRepo(db)
	achievements := storage.NewAchievementRepo(db)
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))

	return &App{
		users:        storage.NewUserRepo(db),
		entries:      entries,
		streaks:      streaks,
		goals:        storage.NewGoalRepo(db),
		achievements: achievements,

		StreakEngine:      streak.NewEngine(entries, streaks),
		AchievementEngine: achievement.NewEngine(entries, streaks, achievements),
		Recall:            motivation.NewEngine(entries, rng),

		Now: time.Now,
	}
}

// Entries exposes the entry repository for read-only command queries.
func (a *App) Entries() *storage.EntryRepo { return a.entries }

// Goals exposes the goal repository for read-only command queries.
func (a *App) Goals() *storage.GoalRepo { return a.goals }

// Streaks exposes the streak repository for read-only command queries.
func (a *App) Streaks() *storage.StreakRepo { return a.streaks }

// Achievements exposes the achievement repository for read-only
// command queries.
func (a *App) Achievements() *storage.AchievementRepo { return a.achievements }

// Subscribe registers an observer called with a snapshot after every
// successful mutation. Callbacks run synchronously on the mutating
// goroutine.
func (a *App) Subscribe(fn func(Snapshot)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.subscribers = append(a.subscribers, fn)
}

// Snapshot returns the current cached state.
func (a *App) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot
}

// User returns the cached user, or nil before Initialize.
func (a *App) User() *model.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.User
}

// Initialize gets or creates the local user and loads the caches.
func (a *App) Initialize() (*model.User, error) {
	user, err := a.users.GetOrCreate(model.LocalUserID, model.LocalUserName)
	if err != nil {
		return nil, apperrors.Wrap("initialize", err)
	}

	a.mu.Lock()
	a.initialized = true
	a.mu.Unlock()

	if err := a.reload(); err != nil {
		return nil, err
	}
	return user, nil
}

// AddEntry creates a today-dated entry, recomputes streaks, and checks
// achievements. It returns the entry and any badges unlocked by it.
func (a *App) AddEntry(input EntryInput) (*model.Entry, []*model.Achievement, error) {
	user, err := a.requireUser()
	if err != nil {
		return nil, nil, err
	}

	if err := validate.Category(string(input.Category)); err != nil {
		return nil, nil, err
	}
	if err := validate.Mood(string(input.Mood)); err != nil {
		return nil, nil, err
	}
	content := validate.SanitizeContent(input.Content)
	if err := validate.Content(content); err != nil {
		return nil, nil, err
	}
	title := validate.SanitizeTitle(input.Title)
	if err := validate.Title(title); err != nil {
		return nil, nil, err
	}
	tags := validate.SanitizeTags(input.Tags)
	if err := validate.Tags(tags); err != nil {
		return nil, nil, err
	}

	entry := model.NewEntry(user.ID, dateutil.DayKey(a.Now()), input.Category, input.Mood, content)
	entry.Title = title
	entry.Tags = tags
	entry.TimeSpentMinutes = input.TimeSpentMinutes

	if err := a.entries.Create(entry); err != nil {
		return nil, nil, apperrors.Wrap("add entry", err)
	}
	logging.Info("entry added", "category", string(entry.Category), "date", entry.Date)

	if _, err := a.StreakEngine.UpdateAll(user.ID, user.Preferences.GraceDays); err != nil {
		return nil, nil, apperrors.Wrap("update streaks", err)
	}
	unlocked, err := a.AchievementEngine.CheckAndUnlock(user.ID)
	if err != nil {
		return nil, nil, apperrors.Wrap("check achievements", err)
	}

	if err := a.reload(); err != nil {
		return nil, nil, err
	}
	return entry, unlocked, nil
}

// UpdateEntry applies non-nil edits to an entry. The date never
// changes.
func (a *App) UpdateEntry(id string, update EntryUpdate) (*model.Entry, error) {
	user, err := a.requireUser()
	if err != nil {
		return nil, err
	}

	entry, err := a.getEntry(user.ID, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		title := validate.SanitizeTitle(*update.Title)
		if err := validate.Title(title); err != nil {
			return nil, err
		}
		entry.Title = title
	}
	if update.Content != nil {
		content := validate.SanitizeContent(*update.Content)
		if err := validate.Content(content); err != nil {
			return nil, err
		}
		entry.Content = content
	}
	if update.Mood != nil {
		if err := validate.Mood(string(*update.Mood)); err != nil {
			return nil, err
		}
		entry.Mood = *update.Mood
	}
	if update.Tags != nil {
		tags := validate.SanitizeTags(update.Tags)
		if err := validate.Tags(tags); err != nil {
			return nil, err
		}
		entry.Tags = tags
	}
	if update.TimeSpentMinutes != nil {
		entry.TimeSpentMinutes = *update.TimeSpentMinutes
	}

	if err := a.entries.Update(entry); err != nil {
		return nil, apperrors.Wrap("update entry", err)
	}
	if err := a.reload(); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteEntry removes an entry and recomputes streaks, since the day
// it occupied may no longer qualify.
func (a *App) DeleteEntry(id string) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	if _, err := a.getEntry(user.ID, id); err != nil {
		return err
	}
	if err := a.entries.Delete(user.ID, id); err != nil {
		return apperrors.Wrap("delete entry", err)
	}
	if _, err := a.StreakEngine.UpdateAll(user.ID, user.Preferences.GraceDays); err != nil {
		return apperrors.Wrap("update streaks", err)
	}
	return a.reload()
}

// TogglePin flips an entry's pinned flag.
func (a *App) TogglePin(id string) (*model.Entry, error) {
	return a.toggleFlag(id, func(e *model.Entry) { e.IsPinned = !e.IsPinned })
}

// ToggleArchive flips an entry's archived flag. Archived entries keep
// counting toward streaks and volume badges.
func (a *App) ToggleArchive(id string) (*model.Entry, error) {
	return a.toggleFlag(id, func(e *model.Entry) { e.IsArchived = !e.IsArchived })
}

func (a *App) toggleFlag(id string, flip func(*model.Entry)) (*model.Entry, error) {
	user, err := a.requireUser()
	if err != nil {
		return nil, err
	}

	entry, err := a.getEntry(user.ID, id)
	if err != nil {
		return nil, err
	}
	flip(entry)
	if err := a.entries.Update(entry); err != nil {
		return nil, apperrors.Wrap("update entry", err)
	}
	if err := a.reload(); err != nil {
		return nil, err
	}
	return entry, nil
}

// AddGoal creates a goal starting today.
func (a *App) AddGoal(input GoalInput) (*model.Goal, error) {
	user, err := a.requireUser()
	if err != nil {
		return nil, err
	}

	title := validate.SanitizeTitle(input.Title)
	if err := validate.Title(title); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, apperrors.NewUserError("goal title is required", "provide a short title for the goal")
	}
	if err := validate.TargetDays(input.TargetDays); err != nil {
		return nil, err
	}
	if err := validate.GoalCategory(input.Category); err != nil {
		return nil, err
	}

	goal := model.NewGoal(user.ID, title, input.TargetDays, input.Category, dateutil.DayKey(a.Now()))
	goal.Description = input.Description
	if err := a.goals.Create(goal); err != nil {
		return nil, apperrors.Wrap("add goal", err)
	}
	logging.Info("goal added", "title", goal.Title, "target_days", goal.TargetDays)

	if err := a.reload(); err != nil {
		return nil, err
	}
	return goal, nil
}

// IncrementGoal records one more completed day on a goal.
func (a *App) IncrementGoal(id string) (*model.Goal, error) {
	user, err := a.requireUser()
	if err != nil {
		return nil, err
	}

	goal, err := a.goals.GetByID(user.ID, id)
	if err != nil {
		if storage.IsErrKeyNotFound(err) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap("increment goal", err)
	}
	if goal.IsArchived {
		return nil, apperrors.ErrGoalArchived
	}

	goal, err = a.goals.IncrementProgress(user.ID, id)
	if err != nil {
		return nil, apperrors.Wrap("increment goal", err)
	}
	if goal.IsCompleted {
		logging.Info("goal completed", "title", goal.Title)
	}
	if err := a.reload(); err != nil {
		return nil, err
	}
	return goal, nil
}

// ArchiveGoal retires a goal from active views. Completed history is
// retained.
func (a *App) ArchiveGoal(id string) (*model.Goal, error) {
	user, err := a.requireUser()
	if err != nil {
		return nil, err
	}

	goal, err := a.goals.Archive(user.ID, id)
	if err != nil {
		if storage.IsErrKeyNotFound(err) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap("archive goal", err)
	}
	if err := a.reload(); err != nil {
		return nil, err
	}
	return goal, nil
}

// UpdatePreferences validates and persists new preferences.
func (a *App) UpdatePreferences(prefs model.Preferences) (*model.User, error) {
	user, err := a.requireUser()
	if err != nil {
		return nil, err
	}

	if err := validate.GraceDays(prefs.GraceDays); err != nil {
		return nil, err
	}
	if err := validate.WeekStartsOn(prefs.WeekStartsOn); err != nil {
		return nil, err
	}
	if prefs.DailyReminderTime != "" {
		if err := validate.ReminderTime(prefs.DailyReminderTime); err != nil {
			return nil, err
		}
	}
	if !prefs.Theme.IsValid() {
		return nil, apperrors.NewUserErrorWithField("theme", string(prefs.Theme),
			"invalid theme", "use light, dark, or system")
	}

	// Mutate a copy so a failed write leaves the cached user untouched.
	updated := *user
	updated.Preferences = prefs
	if err := a.users.Update(&updated); err != nil {
		return nil, apperrors.Wrap("update preferences", err)
	}
	if err := a.reload(); err != nil {
		return nil, err
	}
	return &updated, nil
}

// CompleteOnboarding marks the one-time setup as done.
func (a *App) CompleteOnboarding() error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}
	updated := *user
	updated.OnboardingComplete = true
	if err := a.users.Update(&updated); err != nil {
		return apperrors.Wrap("complete onboarding", err)
	}
	return a.reload()
}

// RefreshStreaks recomputes and persists all four streak types.
func (a *App) RefreshStreaks() ([]*model.Streak, error) {
	user, err := a.requireUser()
	if err != nil {
		return nil, err
	}

	streaks, err := a.StreakEngine.UpdateAll(user.ID, user.Preferences.GraceDays)
	if err != nil {
		return nil, apperrors.Wrap("refresh streaks", err)
	}
	if err := a.reload(); err != nil {
		return nil, err
	}
	return streaks, nil
}

// RecallSuggestions resurfaces up to count past entries.
func (a *App) RecallSuggestions(count int) ([]motivation.Suggestion, error) {
	user, err := a.requireUser()
	if err != nil {
		return nil, err
	}
	return a.Recall.Suggestions(user.ID, count)
}

// requireUser returns the cached user or fails when Initialize has not
// run.
func (a *App) requireUser() (*model.User, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if !a.initialized || a.snapshot.User == nil {
		return nil, apperrors.ErrUserNotInitialized
	}
	return a.snapshot.User, nil
}

func (a *App) getEntry(userID, id string) (*model.Entry, error) {
	entry, err := a.entries.GetByID(userID, id)
	if err != nil {
		if storage.IsErrKeyNotFound(err) {
			return nil, apperrors.ErrEntryNotFound
		}
		return nil, apperrors.Wrap("get entry", err)
	}
	return entry, nil
}

// reload rebuilds the caches from storage and notifies subscribers. On
// failure the previous snapshot stays in place.
func (a *App) reload() error {
	user, err := a.users.Get(model.LocalUserID)
	if err != nil {
		return apperrors.Wrap("reload user", err)
	}
	today, err := a.entries.GetByDate(user.ID, dateutil.DayKey(a.Now()))
	if err != nil {
		return apperrors.Wrap("reload entries", err)
	}
	streaks, err := a.streaks.GetAll(user.ID)
	if err != nil {
		return apperrors.Wrap("reload streaks", err)
	}
	goals, err := a.goals.GetActive(user.ID)
	if err != nil {
		return apperrors.Wrap("reload goals", err)
	}
	achievements, err := a.achievements.GetAll(user.ID)
	if err != nil {
		return apperrors.Wrap("reload achievements", err)
	}

	a.mu.Lock()
	a.snapshot = Snapshot{
		User:         user,
		TodayEntries: today,
		Streaks:      streaks,
		ActiveGoals:  goals,
		Achievements: achievements,
	}
	snapshot := a.snapshot
	subscribers := a.subscribers
	a.mu.Unlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}
	return nil
}
