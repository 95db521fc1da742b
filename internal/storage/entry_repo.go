package storage

import (
	"sort"
	"strings"
	"time"

	"github.com/katemerritt/growthlog/internal/model"
)

// EntryRepo provides operations for Entry entities.
type EntryRepo struct {
	db *DB
}

// NewEntryRepo creates a new entry repository.
func NewEntryRepo(db *DB) *EntryRepo {
	return &EntryRepo{db: db}
}

// Create creates a new entry.
func (r *EntryRepo) Create(entry *model.Entry) error {
	entry.Key = model.GenerateEntryKey(entry.UserID, entry.Date, entry.ID)
	return r.db.Set(entry)
}

// GetByID retrieves an entry by its ID. Entry keys end in the ID, so a
// key-only scan over the user's prefix finds it without loading values.
func (r *EntryRepo) GetByID(userID, id string) (*model.Entry, error) {
	keys, err := r.db.ListByPrefix(model.EntryUserPrefix(userID))
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		if strings.HasSuffix(key, ":"+id) {
			entry := &model.Entry{}
			if err := r.db.Get(key, entry); err != nil {
				return nil, err
			}
			return entry, nil
		}
	}
	return nil, ErrKeyNotFound
}

// GetByDate retrieves all entries for a user on an exact day key.
func (r *EntryRepo) GetByDate(userID, date string) ([]*model.Entry, error) {
	return GetAllByPrefix(r.db, model.EntryDatePrefix(userID, date), func() *model.Entry {
		return &model.Entry{}
	})
}

// GetByDateRange retrieves entries with start <= date <= end.
func (r *EntryRepo) GetByDateRange(userID, start, end string) ([]*model.Entry, error) {
	all, err := r.list(userID)
	if err != nil {
		return nil, err
	}
	var results []*model.Entry
	for _, e := range all {
		if e.Date >= start && e.Date <= end {
			results = append(results, e)
		}
	}
	return results, nil
}

// GetRecent retrieves up to limit entries ordered by creation time,
// newest first.
func (r *EntryRepo) GetRecent(userID string, limit int) ([]*model.Entry, error) {
	all, err := r.list(userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// GetPinned retrieves pinned, non-archived entries.
func (r *EntryRepo) GetPinned(userID string) ([]*model.Entry, error) {
	all, err := r.list(userID)
	if err != nil {
		return nil, err
	}
	var results []*model.Entry
	for _, e := range all {
		if e.IsPinned && !e.IsArchived {
			results = append(results, e)
		}
	}
	return results, nil
}

// GetByCategory retrieves non-archived entries of a category.
func (r *EntryRepo) GetByCategory(userID string, category model.Category) ([]*model.Entry, error) {
	all, err := r.list(userID)
	if err != nil {
		return nil, err
	}
	var results []*model.Entry
	for _, e := range all {
		if e.Category == category && !e.IsArchived {
			results = append(results, e)
		}
	}
	return results, nil
}

// GetForMotivation retrieves entries suitable for recall: high mood or
// motivation category, excluding archived.
func (r *EntryRepo) GetForMotivation(userID string) ([]*model.Entry, error) {
	all, err := r.list(userID)
	if err != nil {
		return nil, err
	}
	var results []*model.Entry
	for _, e := range all {
		if e.IsArchived {
			continue
		}
		if e.Mood.IsPositive() || e.Category == model.CategoryMotivation {
			results = append(results, e)
		}
	}
	return results, nil
}

// ActiveDates returns the sorted distinct day keys that have entries.
func (r *EntryRepo) ActiveDates(userID string) ([]string, error) {
	keys, err := r.db.ListByPrefix(model.EntryUserPrefix(userID))
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var dates []string
	for _, key := range keys {
		// entry:<user>:<date>:<id>
		parts := strings.Split(key, ":")
		if len(parts) != 4 {
			continue
		}
		date := parts[2]
		if !seen[date] {
			seen[date] = true
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

// Count returns the total number of entries for a user.
func (r *EntryRepo) Count(userID string) (int, error) {
	return r.db.CountByPrefix(model.EntryUserPrefix(userID))
}

// Update persists changes to an existing entry and stamps UpdatedAt.
// The entry's date, and therefore its key, never changes.
func (r *EntryRepo) Update(entry *model.Entry) error {
	entry.UpdatedAt = time.Now()
	return r.db.Set(entry)
}

// Delete removes an entry.
func (r *EntryRepo) Delete(userID, id string) error {
	entry, err := r.GetByID(userID, id)
	if err != nil {
		return err
	}
	return r.db.Delete(entry.Key)
}

func (r *EntryRepo) list(userID string) ([]*model.Entry, error) {
	return GetAllByPrefix(r.db, model.EntryUserPrefix(userID), func() *model.Entry {
		return &model.Entry{}
	})
}
