// Package motivation resurfaces past entries ("recall") and serves
// inspirational quotes.
package motivation

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/katemerritt/growthlog/internal/dateutil"
	"github.com/katemerritt/growthlog/internal/model"
	"github.com/katemerritt/growthlog/internal/storage"
)

// SuggestionType tags why an entry was resurfaced.
type SuggestionType string

const (
	SuggestionAnniversary SuggestionType = "anniversary"
	SuggestionHighMood    SuggestionType = "high-mood"
	SuggestionMotivation  SuggestionType = "motivation"
	SuggestionRandom      SuggestionType = "random"
)

// Suggestion is a past entry chosen for recall.
type Suggestion struct {
	Entry  *model.Entry   `json:"entry"`
	Reason string         `json:"reason"`
	Type   SuggestionType `json:"type"`
}

// randomRecallCutoffDays keeps random fallback picks out of the most
// recent week.
const randomRecallCutoffDays = 7

// Engine selects recall suggestions. The random source is injected so
// tests can seed determinism; tier ordering is the only deterministic
// contract.
type Engine struct {
	entries *storage.EntryRepo
	rng     *rand.Rand

	// Now is the clock; replaceable in tests.
	Now func() time.Time
}

// NewEngine creates a recall engine over the entry repository.
func NewEngine(entries *storage.EntryRepo, rng *rand.Rand) *Engine {
	return &Engine{
		entries: entries,
		rng:     rng,
		Now:     time.Now,
	}
}

// Suggestions returns up to count recall suggestions, filled by
// priority: one anniversary entry, then randomly sampled high-mood and
// motivation entries, then random older entries. No entry appears
// twice; fewer than count may return when history is sparse.
func (e *Engine) Suggestions(userID string, count int) ([]Suggestion, error) {
	if count <= 0 {
		return nil, nil
	}

	suggestions := make([]Suggestion, 0, count)
	used := make(map[string]bool)

	add := func(s Suggestion) {
		suggestions = append(suggestions, s)
		used[s.Entry.ID] = true
	}

	// Priority 1: "on this day" from another year.
	anniversaries, err := e.anniversaryEntries(userID)
	if err != nil {
		return nil, err
	}
	if len(anniversaries) > 0 {
		entry := anniversaries[0]
		add(Suggestion{
			Entry:  entry,
			Reason: fmt.Sprintf("You wrote this on %s", entry.Date[:4]),
			Type:   SuggestionAnniversary,
		})
	}

	// Priority 2: high-mood and motivation entries, randomly sampled.
	if len(suggestions) < count {
		pool, err := e.entries.GetForMotivation(userID)
		if err != nil {
			return nil, err
		}
		e.shuffle(pool)
		for _, entry := range pool {
			if len(suggestions) >= count {
				break
			}
			if used[entry.ID] {
				continue
			}
			if entry.Mood.IsPositive() {
				add(Suggestion{
					Entry:  entry,
					Reason: "You were feeling great when you wrote this",
					Type:   SuggestionHighMood,
				})
			} else if entry.Category == model.CategoryMotivation {
				add(Suggestion{
					Entry:  entry,
					Reason: "A quote that inspired you",
					Type:   SuggestionMotivation,
				})
			}
		}
	}

	// Priority 3: random entries from at least a week back.
	if len(suggestions) < count {
		candidates, err := e.randomCandidates(userID, used)
		if err != nil {
			return nil, err
		}
		for len(suggestions) < count && len(candidates) > 0 {
			i := e.rng.IntN(len(candidates))
			entry := candidates[i]
			candidates = append(candidates[:i], candidates[i+1:]...)
			add(Suggestion{
				Entry:  entry,
				Reason: "From your past reflections",
				Type:   SuggestionRandom,
			})
		}
	}

	return suggestions, nil
}

// anniversaryEntries finds entries sharing today's month-day from a
// different date.
func (e *Engine) anniversaryEntries(userID string) ([]*model.Entry, error) {
	today := dateutil.DayKey(e.Now())
	monthDay := dateutil.MonthDay(today)

	all, err := e.entries.GetRecent(userID, 0)
	if err != nil {
		return nil, err
	}

	var results []*model.Entry
	for _, entry := range all {
		if entry.Date != today && dateutil.MonthDay(entry.Date) == monthDay {
			results = append(results, entry)
		}
	}
	return results, nil
}

// randomCandidates lists entries old enough for the random tier that
// have not been picked yet.
func (e *Engine) randomCandidates(userID string, used map[string]bool) ([]*model.Entry, error) {
	cutoff := dateutil.DayKey(dateutil.SubDays(e.Now(), randomRecallCutoffDays))

	all, err := e.entries.GetRecent(userID, 0)
	if err != nil {
		return nil, err
	}

	var results []*model.Entry
	for _, entry := range all {
		if entry.Date < cutoff && !used[entry.ID] {
			results = append(results, entry)
		}
	}
	return results, nil
}

func (e *Engine) shuffle(entries []*model.Entry) {
	e.rng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})
}

// IsLowActivityDay reports whether today has no entries yet.
func (e *Engine) IsLowActivityDay(userID string) (bool, error) {
	entries, err := e.entries.GetByDate(userID, dateutil.DayKey(e.Now()))
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}

// EncouragingMessage returns a nudge based on streak history.
func EncouragingMessage(current, longest int) string {
	switch {
	case current == 0 && longest > 0:
		return fmt.Sprintf("You were consistent for %d days once. You can do it again!", longest)
	case current > 0 && current == longest:
		return "You're on your longest streak ever! Keep the momentum!"
	case current > 0:
		remaining := longest - current
		if remaining <= 3 {
			return fmt.Sprintf("Just %d more days to beat your record!", remaining)
		}
		return fmt.Sprintf("Keep going! %d days strong!", current)
	default:
		return "Every journey starts with a single step. Add your first entry today!"
	}
}
