package validate

import (
	"strings"
	"testing"

	"github.com/katemerritt/growthlog/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	assert.NoError(t, Category("exercise"))
	assert.NoError(t, Category("learning-finance"))

	err := Category("swimming")
	assert.Error(t, err)
	assert.True(t, errors.IsUserError(err))
	assert.NotEmpty(t, errors.Suggestion(err))
}

func TestGoalCategory(t *testing.T) {
	assert.NoError(t, GoalCategory("any"))
	assert.NoError(t, GoalCategory("reflection"))
	assert.Error(t, GoalCategory("anything"))
}

func TestMood(t *testing.T) {
	assert.NoError(t, Mood("fire"))
	assert.Error(t, Mood("ecstatic"))
}

func TestStreakType(t *testing.T) {
	assert.NoError(t, StreakType("overall"))
	assert.Error(t, StreakType("motivation"))
}

func TestDayKey(t *testing.T) {
	assert.NoError(t, DayKey("2026-02-03"))
	assert.Error(t, DayKey("02/03/2026"))
	assert.Error(t, DayKey("2026-2-3"))
}

func TestContent(t *testing.T) {
	assert.NoError(t, Content("did 30 minutes of rowing"))
	assert.Error(t, Content(""))
	assert.Error(t, Content("   \n "))
	assert.Error(t, Content(strings.Repeat("a", MaxContentLength+1)))
}

func TestTitle(t *testing.T) {
	assert.NoError(t, Title(""))
	assert.Error(t, Title(strings.Repeat("x", MaxTitleLength+1)))
}

func TestTags(t *testing.T) {
	assert.NoError(t, Tags([]string{"rowing", "cardio"}))
	assert.Error(t, Tags([]string{""}))
	assert.Error(t, Tags(make([]string, MaxTags+1)))
	assert.Error(t, Tags([]string{strings.Repeat("t", MaxTagLength+1)}))
}

func TestTargetDays(t *testing.T) {
	assert.NoError(t, TargetDays(7))
	assert.Error(t, TargetDays(0))
	assert.Error(t, TargetDays(-3))
	assert.Error(t, TargetDays(MaxTargetDays+1))
}

func TestGraceDays(t *testing.T) {
	assert.NoError(t, GraceDays(0))
	assert.NoError(t, GraceDays(2))
	assert.Error(t, GraceDays(-1))
}

func TestReminderTime(t *testing.T) {
	assert.NoError(t, ReminderTime(""))
	assert.NoError(t, ReminderTime("09:00"))
	assert.NoError(t, ReminderTime("23:59"))
	assert.Error(t, ReminderTime("24:00"))
	assert.Error(t, ReminderTime("9am"))
}

func TestWeekStartsOn(t *testing.T) {
	assert.NoError(t, WeekStartsOn(0))
	assert.NoError(t, WeekStartsOn(1))
	assert.Error(t, WeekStartsOn(2))
}

func TestSanitizeContent(t *testing.T) {
	assert.Equal(t, "line one\nline two", SanitizeContent("  line one\r\nline two \x00 "))
}

func TestSanitizeTitle(t *testing.T) {
	assert.Equal(t, "My title", SanitizeTitle(" My\x1b title "))
	assert.Equal(t, "plain", SanitizeTitle(" plain "))
}

func TestSanitizeTags(t *testing.T) {
	tags := SanitizeTags([]string{" Cardio ", "cardio", "", "ROWING"})
	assert.Equal(t, []string{"cardio", "rowing"}, tags)
}
