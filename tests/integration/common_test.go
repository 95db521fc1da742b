// Package integration provides integration tests for complete journal
// workflows using a real in-memory Badger database.
package integration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katemerritt/growthlog/internal/app"
	"github.com/katemerritt/growthlog/internal/storage"
)

// testContext drives the application with a movable clock.
type testContext struct {
	t   *testing.T
	db  *storage.DB
	app *app.App
	now time.Time
}

// setupTestContext creates an initialized application over an in-memory
// database with the clock pinned to a known day.
func setupTestContext(t *testing.T) *testContext {
	t.Helper()

	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err, "failed to open in-memory database")

	tc := &testContext{
		t:   t,
		db:  db,
		now: time.Date(2026, time.February, 10, 12, 0, 0, 0, time.Local),
	}

	a := app.New(db)
	clock := func() time.Time { return tc.now }
	a.Now = clock
	a.StreakEngine.Now = clock
	a.AchievementEngine.Now = clock
	a.Recall.Now = clock
	tc.app = a

	_, err = a.Initialize()
	require.NoError(t, err, "failed to initialize application")

	t.Cleanup(func() {
		err := db.Close()
		assert.NoError(t, err, "failed to close database")
	})

	return tc
}

// advanceDays moves the clock forward by n days.
func (tc *testContext) advanceDays(n int) {
	tc.now = tc.now.AddDate(0, 0, n)
}

// addEntry logs one entry on the current day.
func (tc *testContext) addEntry(input app.EntryInput) {
	tc.t.Helper()
	_, _, err := tc.app.AddEntry(input)
	require.NoError(tc.t, err, "failed to add entry")
}
