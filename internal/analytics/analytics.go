// Package analytics derives summary statistics from entry and streak
// history.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/katemerritt/growthlog/internal/dateutil"
	"github.com/katemerritt/growthlog/internal/model"
	"github.com/katemerritt/growthlog/internal/storage"
)

// Trend describes week-over-week movement.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// DayStats summarizes one day's activity.
type DayStats struct {
	Date       string           `json:"date"`
	EntryCount int              `json:"entryCount"`
	Categories []model.Category `json:"categories"`
	// Mood is the dominant mood of the day, empty when no entries.
	Mood      model.Mood `json:"mood,omitempty"`
	HasStreak bool       `json:"hasStreak"`
}

// WeeklyComparison compares entry volume this week against last week.
type WeeklyComparison struct {
	ThisWeek      int     `json:"thisWeek"`
	LastWeek      int     `json:"lastWeek"`
	PercentChange float64 `json:"percentChange"`
	Trend         Trend   `json:"trend"`
}

// CategoryBreakdown is one category's share of all entries.
type CategoryBreakdown struct {
	Category   model.Category `json:"category"`
	Count      int            `json:"count"`
	Percentage float64        `json:"percentage"`
}

// MoodTrend is the dominant mood of one day.
type MoodTrend struct {
	Date  string     `json:"date"`
	Mood  model.Mood `json:"mood"`
	Count int        `json:"count"`
}

// Summary aggregates the headline numbers shown by the stats command.
type Summary struct {
	TotalEntries      int                 `json:"totalEntries"`
	TotalActiveDays   int                 `json:"totalActiveDays"`
	CurrentStreak     int                 `json:"currentStreak"`
	LongestStreak     int                 `json:"longestStreak"`
	CategoryBreakdown []CategoryBreakdown `json:"categoryBreakdown"`
	WeeklyComparison  WeeklyComparison    `json:"weeklyComparison"`
	MoodTrends        []MoodTrend         `json:"moodTrends"`
}

// moodTrendDays is how far back Summary's mood trend reaches.
const moodTrendDays = 14

// Service computes analytics over the stores.
type Service struct {
	entries *storage.EntryRepo
	streaks *storage.StreakRepo

	// Now is the clock; replaceable in tests.
	Now func() time.Time
}

// NewService creates an analytics service over the given repositories.
func NewService(entries *storage.EntryRepo, streaks *storage.StreakRepo) *Service {
	return &Service{
		entries: entries,
		streaks: streaks,
		Now:     time.Now,
	}
}

// DayStats summarizes a single day. HasStreak reports whether the day
// falls inside the current overall streak run.
func (s *Service) DayStats(userID, date string) (*DayStats, error) {
	entries, err := s.entries.GetByDate(userID, date)
	if err != nil {
		return nil, err
	}

	stats := &DayStats{Date: date, EntryCount: len(entries)}

	seen := make(map[model.Category]bool)
	for _, entry := range entries {
		if !seen[entry.Category] {
			seen[entry.Category] = true
			stats.Categories = append(stats.Categories, entry.Category)
		}
	}
	stats.Mood = dominantMood(entries)

	overall, err := s.streaks.Get(userID, model.StreakOverall)
	if err != nil {
		return nil, err
	}
	if overall != nil && overall.CurrentCount > 0 && overall.StartDate != "" {
		today := dateutil.DayKey(s.Now())
		stats.HasStreak = dateutil.InRange(date, overall.StartDate, today) && len(entries) > 0
	}

	return stats, nil
}

// CategoryBreakdown returns per-category entry counts and percentages,
// sorted by count descending. Archived entries are excluded.
func (s *Service) CategoryBreakdown(userID string) ([]CategoryBreakdown, error) {
	entries, err := s.entries.GetRecent(userID, 0)
	if err != nil {
		return nil, err
	}

	counts := make(map[model.Category]int)
	total := 0
	for _, entry := range entries {
		if entry.IsArchived {
			continue
		}
		counts[entry.Category]++
		total++
	}

	var breakdown []CategoryBreakdown
	for category, count := range counts {
		pct := 0.0
		if total > 0 {
			pct = math.Round(float64(count)/float64(total)*1000) / 10
		}
		breakdown = append(breakdown, CategoryBreakdown{
			Category:   category,
			Count:      count,
			Percentage: pct,
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown, nil
}

// WeeklyComparison counts entries in the week containing today against
// the week before it.
func (s *Service) WeeklyComparison(userID string, weekStartsOn int) (*WeeklyComparison, error) {
	now := s.Now()
	thisStart := dateutil.WeekStart(now, weekStartsOn)
	lastStart := dateutil.SubDays(thisStart, 7)

	thisWeek, err := s.countRange(userID, dateutil.DayKey(thisStart), dateutil.DayKey(dateutil.AddDays(thisStart, 6)))
	if err != nil {
		return nil, err
	}
	lastWeek, err := s.countRange(userID, dateutil.DayKey(lastStart), dateutil.DayKey(dateutil.AddDays(lastStart, 6)))
	if err != nil {
		return nil, err
	}

	cmp := &WeeklyComparison{ThisWeek: thisWeek, LastWeek: lastWeek}
	switch {
	case thisWeek == lastWeek:
		cmp.Trend = TrendStable
	case thisWeek > lastWeek:
		cmp.Trend = TrendUp
	default:
		cmp.Trend = TrendDown
	}
	if lastWeek > 0 {
		cmp.PercentChange = math.Round(float64(thisWeek-lastWeek)/float64(lastWeek)*1000) / 10
	} else if thisWeek > 0 {
		cmp.PercentChange = 100
	}
	return cmp, nil
}

// MoodTrends returns the dominant mood per day over the trailing
// window, oldest first. Days without entries are skipped.
func (s *Service) MoodTrends(userID string, days int) ([]MoodTrend, error) {
	now := s.Now()
	start := dateutil.DayKey(dateutil.SubDays(now, days-1))
	end := dateutil.DayKey(now)

	entries, err := s.entries.GetByDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]*model.Entry)
	for _, entry := range entries {
		byDate[entry.Date] = append(byDate[entry.Date], entry)
	}

	var trends []MoodTrend
	for _, key := range dateutil.RangeKeys(dateutil.SubDays(now, days-1), now) {
		dayEntries := byDate[key]
		if len(dayEntries) == 0 {
			continue
		}
		trends = append(trends, MoodTrend{
			Date:  key,
			Mood:  dominantMood(dayEntries),
			Count: len(dayEntries),
		})
	}
	return trends, nil
}

// Summary assembles the full analytics report.
func (s *Service) Summary(userID string, weekStartsOn int) (*Summary, error) {
	total, err := s.entries.Count(userID)
	if err != nil {
		return nil, err
	}
	activeDates, err := s.entries.ActiveDates(userID)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.CategoryBreakdown(userID)
	if err != nil {
		return nil, err
	}
	weekly, err := s.WeeklyComparison(userID, weekStartsOn)
	if err != nil {
		return nil, err
	}
	moods, err := s.MoodTrends(userID, moodTrendDays)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalEntries:      total,
		TotalActiveDays:   len(activeDates),
		CategoryBreakdown: breakdown,
		WeeklyComparison:  *weekly,
		MoodTrends:        moods,
	}

	overall, err := s.streaks.Get(userID, model.StreakOverall)
	if err != nil {
		return nil, err
	}
	if overall != nil {
		summary.CurrentStreak = overall.CurrentCount
		summary.LongestStreak = overall.LongestCount
	}
	return summary, nil
}

func (s *Service) countRange(userID, start, end string) (int, error) {
	entries, err := s.entries.GetByDateRange(userID, start, end)
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// dominantMood returns the most frequent mood among entries, breaking
// ties toward the mood seen first.
func dominantMood(entries []*model.Entry) model.Mood {
	if len(entries) == 0 {
		return ""
	}
	counts := make(map[model.Mood]int)
	var order []model.Mood
	for _, entry := range entries {
		if counts[entry.Mood] == 0 {
			order = append(order, entry.Mood)
		}
		counts[entry.Mood]++
	}
	best := order[0]
	for _, mood := range order {
		if counts[mood] > counts[best] {
			best = mood
		}
	}
	return best
}
