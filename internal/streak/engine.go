// Package streak computes qualifying-day streaks from entry history.
//
// A streak is recomputed from scratch after every entry mutation by
// walking backward from today one day at a time. Missed days consume a
// configurable grace budget; once the budget is exceeded the walk
// stops. The stored longest count is the only state carried between
// recomputations, and it only ever grows.
package streak

import (
	"fmt"
	"time"

	"github.com/katemerritt/growthlog/internal/dateutil"
	"github.com/katemerritt/growthlog/internal/logging"
	"github.com/katemerritt/growthlog/internal/model"
	"github.com/katemerritt/growthlog/internal/storage"
)

// maxWalkDays bounds the backward walk so very old histories cannot
// make a recompute unbounded.
const maxWalkDays = 365

// Result holds the outcome of one streak calculation.
type Result struct {
	Current   int
	Longest   int
	StartDate string
}

// Engine computes and persists streaks.
type Engine struct {
	entries *storage.EntryRepo
	streaks *storage.StreakRepo

	// Now is the clock; replaceable in tests.
	Now func() time.Time
}

// NewEngine creates a streak engine over the given repositories.
func NewEngine(entries *storage.EntryRepo, streaks *storage.StreakRepo) *Engine {
	return &Engine{
		entries: entries,
		streaks: streaks,
		Now:     time.Now,
	}
}

// qualifies reports whether a day has at least one entry counting
// toward the given streak type.
func (e *Engine) qualifies(userID, date string, t model.StreakType) (bool, error) {
	entries, err := e.entries.GetByDate(userID, date)
	if err != nil {
		return false, err
	}

	if t == model.StreakOverall {
		return len(entries) > 0, nil
	}

	for _, entry := range entries {
		if model.StreakTypeForCategory(entry.Category) == t {
			return true, nil
		}
	}
	return false, nil
}

// Calculate walks backward from today and returns the current streak,
// the longest streak seen so far, and the first day of the current run.
//
// Grace days never count into Current and never move StartDate: a user
// whose history has only gaps at the head ends with Current zero.
func (e *Engine) Calculate(userID string, t model.StreakType, graceDays int) (Result, error) {
	today := dateutil.DayKey(e.Now())
	day, err := dateutil.ParseDay(today)
	if err != nil {
		return Result{}, err
	}

	current := 0
	startDate := today
	graceUsed := 0

	for walked := 0; walked <= maxWalkDays; walked++ {
		date := dateutil.DayKey(day)

		ok, err := e.qualifies(userID, date, t)
		if err != nil {
			return Result{}, err
		}

		if ok {
			current++
			startDate = date
			graceUsed = 0
		} else {
			graceUsed++
			if graceUsed > graceDays {
				break
			}
		}

		day = dateutil.SubDays(day, 1)
	}

	// Longest never decreases across recomputations.
	longest := current
	if existing, err := e.streaks.Get(userID, t); err != nil {
		return Result{}, err
	} else if existing != nil && existing.LongestCount > longest {
		longest = existing.LongestCount
	}

	return Result{Current: current, Longest: longest, StartDate: startDate}, nil
}

// UpdateAll recomputes and upserts every streak type for the user, in
// the fixed order learning, exercise, reflection, overall. Called once
// per entry mutation.
func (e *Engine) UpdateAll(userID string, graceDays int) ([]*model.Streak, error) {
	today := dateutil.DayKey(e.Now())
	streaks := make([]*model.Streak, 0, len(model.StreakTypes))

	for _, t := range model.StreakTypes {
		result, err := e.Calculate(userID, t, graceDays)
		if err != nil {
			return nil, err
		}

		streak, err := e.streaks.Get(userID, t)
		if err != nil {
			return nil, err
		}
		if streak == nil {
			streak = model.NewStreak(userID, t)
		}

		streak.CurrentCount = result.Current
		streak.LongestCount = result.Longest
		streak.LastActiveDate = today
		streak.StartDate = result.StartDate

		if err := e.streaks.Upsert(streak); err != nil {
			return nil, err
		}
		streaks = append(streaks, streak)

		logging.DebugLog("streak recomputed",
			"type", string(t), "current", result.Current, "longest", result.Longest)
	}

	return streaks, nil
}

// AtRisk reports whether a streak will break without an entry today:
// yesterday qualified but today has not yet.
func (e *Engine) AtRisk(userID string, t model.StreakType) (bool, error) {
	now := e.Now()
	today := dateutil.DayKey(now)

	hasToday, err := e.qualifies(userID, today, t)
	if err != nil {
		return false, err
	}
	if hasToday {
		return false, nil
	}

	yesterday := dateutil.DayKey(dateutil.SubDays(now, 1))
	return e.qualifies(userID, yesterday, t)
}

// Message returns a status line for a streak.
func Message(s *model.Streak) string {
	switch {
	case s.CurrentCount == 0:
		return "Start your streak today!"
	case s.CurrentCount == s.LongestCount:
		return fmt.Sprintf("%d day streak - your best ever!", s.CurrentCount)
	case s.CurrentCount >= 30:
		return fmt.Sprintf("Amazing %d day streak!", s.CurrentCount)
	case s.CurrentCount >= 7:
		return fmt.Sprintf("Great %d day streak!", s.CurrentCount)
	default:
		return fmt.Sprintf("%d day streak - keep going!", s.CurrentCount)
	}
}
