// ABOUTME: Ledger service owning the activity collection and query surface.
// ABOUTME: Every operation is a synchronous read-modify-write of one document.
package ledger

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mtendies/ledger/internal/models"
	"github.com/mtendies/ledger/internal/storage"
)

// Ledger provides the activity collection and the query surface the rest
// of the tool relies on. The collection is stored most-recent-first as a
// single JSON document; the last writer wins.
type Ledger struct {
	store storage.DocumentStore
	now   func() time.Time
	newID func() string
	mu    sync.Mutex
}

// New creates a Ledger backed by the given document store.
func New(store storage.DocumentStore) *Ledger {
	return &Ledger{
		store: store,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// WithClock overrides the clock used for new activity timestamps.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

// Close closes the underlying store.
func (l *Ledger) Close() error {
	return l.store.Close()
}

// Draft holds the caller-supplied fields of a new activity. Identity and
// calendar keys are assigned by Log. A zero Timestamp means "now".
type Draft struct {
	Type            models.ActivityType
	SubType         models.SubType
	Source          models.Source
	Timestamp       time.Time
	RawText         string
	Summary         string
	Data            models.ActivityData
	GoalConnections []int
}

// Patch holds field updates for an existing activity. Nil fields are left
// untouched; Data is deep-merged key-wise rather than replaced. Identity,
// timestamp, calendar keys, and raw text are immutable and cannot appear
// here.
type Patch struct {
	Type            *models.ActivityType
	SubType         *models.SubType
	Source          *models.Source
	Summary         *string
	Data            *models.ActivityData
	GoalConnections *[]int
}

// Log constructs a complete activity record from the draft, prepends it
// to the collection, persists, and returns the new record.
func (l *Ledger) Log(d Draft) (*models.Activity, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	activityType := d.Type
	if activityType == "" {
		activityType = models.TypeGeneral
	}
	source := d.Source
	if source == "" {
		source = models.SourceDashboard
	}

	a := &models.Activity{
		ID:              l.newID(),
		Type:            activityType,
		SubType:         d.SubType,
		Source:          source,
		RawText:         d.RawText,
		Summary:         d.Summary,
		Data:            d.Data,
		GoalConnections: d.GoalConnections,
	}
	ts := d.Timestamp
	if ts.IsZero() {
		ts = l.now()
	}
	a.WithTimestamp(ts)

	activities := l.load()
	activities = append([]*models.Activity{a}, activities...)
	if err := l.persist(activities); err != nil {
		return nil, err
	}
	return a, nil
}

// List returns the full collection in storage order (most-recent-first).
// Missing or corrupt storage yields an empty collection, never an error.
func (l *Ledger) List() []*models.Activity {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

// ForDate returns activities whose frozen date equals the given day.
func (l *Ledger) ForDate(date string) []*models.Activity {
	var out []*models.Activity
	for _, a := range l.List() {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out
}

// ForWeek returns activities whose frozen weekOf equals the given key.
func (l *Ledger) ForWeek(weekKey string) []*models.Activity {
	var out []*models.Activity
	for _, a := range l.List() {
		if a.WeekOf == weekKey {
			out = append(out, a)
		}
	}
	return out
}

// ByTypeForWeek returns a week's activities of the given type, optionally
// narrowed to a workout sub-type. An empty subType means any.
func (l *Ledger) ByTypeForWeek(weekKey string, activityType models.ActivityType, subType models.SubType) []*models.Activity {
	var out []*models.Activity
	for _, a := range l.ForWeek(weekKey) {
		if a.Type != activityType {
			continue
		}
		if subType != "" && a.SubType != subType {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Recent returns the n most recently logged activities.
func (l *Ledger) Recent(n int) []*models.Activity {
	activities := l.List()
	if n < 0 {
		n = 0
	}
	if n > len(activities) {
		n = len(activities)
	}
	return activities[:n]
}

// Update applies the patch to the activity with the given id, persists,
// and returns the updated record. An unknown id returns (nil, nil);
// callers must check for nil.
func (l *Ledger) Update(id string, p Patch) (*models.Activity, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	activities := l.load()
	var found *models.Activity
	for _, a := range activities {
		if a.ID == id {
			found = a
			break
		}
	}
	if found == nil {
		return nil, nil
	}

	if p.Type != nil {
		found.Type = *p.Type
	}
	if p.SubType != nil {
		found.SubType = *p.SubType
	}
	if p.Source != nil {
		found.Source = *p.Source
	}
	if p.Summary != nil {
		found.Summary = *p.Summary
	}
	if p.GoalConnections != nil {
		found.GoalConnections = *p.GoalConnections
	}
	found.Data.Merge(p.Data)

	if err := l.persist(activities); err != nil {
		return nil, err
	}
	return found, nil
}

// Delete removes the activity with the given id and returns the remaining
// collection. Deleting an unknown id is a no-op.
func (l *Ledger) Delete(id string) ([]*models.Activity, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	activities := l.load()
	remaining := activities[:0:0]
	for _, a := range activities {
		if a.ID != id {
			remaining = append(remaining, a)
		}
	}
	if err := l.persist(remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}

// Resolve finds the full activity id from an id or unique id prefix.
func (l *Ledger) Resolve(idOrPrefix string) (string, error) {
	var matches []string
	for _, a := range l.List() {
		if a.ID == idOrPrefix {
			return a.ID, nil
		}
		if strings.HasPrefix(a.ID, idOrPrefix) {
			matches = append(matches, a.ID)
		}
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("not found: %s", idOrPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}
	return matches[0], nil
}

// Wipe clears the whole collection.
func (l *Ledger) Wipe() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.persist(nil)
}

// Search returns activities whose synthesized text contains the query,
// case-insensitively. A blank query returns the unfiltered list.
func (l *Ledger) Search(query string) []*models.Activity {
	return searchIn(l.List(), query)
}

// FilterOptions narrows a listing. Type and Source treat "" and "all" as
// no constraint. Date bounds apply to the activity timestamp: StartDate
// is floored to local 00:00:00.000 and EndDate ceilinged to 23:59:59.999,
// both compared inclusively.
type FilterOptions struct {
	Type      string
	Source    string
	StartDate string
	EndDate   string
}

// Filter returns activities matching all set constraints.
func (l *Ledger) Filter(opts FilterOptions) []*models.Activity {
	return filterIn(l.List(), opts)
}

// SearchAndFilter applies the search query and then every filter
// constraint, with the same semantics as Search and Filter.
func (l *Ledger) SearchAndFilter(query string, opts FilterOptions) []*models.Activity {
	return filterIn(searchIn(l.List(), query), opts)
}

func searchIn(activities []*models.Activity, query string) []*models.Activity {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return activities
	}
	var out []*models.Activity
	for _, a := range activities {
		if strings.Contains(strings.ToLower(a.SearchText()), query) {
			out = append(out, a)
		}
	}
	return out
}

func filterIn(activities []*models.Activity, opts FilterOptions) []*models.Activity {
	var start, end time.Time
	var hasStart, hasEnd bool
	if opts.StartDate != "" {
		if t, err := time.ParseInLocation(models.DateLayout, opts.StartDate, time.Local); err == nil {
			start = t
			hasStart = true
		}
	}
	if opts.EndDate != "" {
		if t, err := time.ParseInLocation(models.DateLayout, opts.EndDate, time.Local); err == nil {
			end = t.AddDate(0, 0, 1).Add(-time.Millisecond)
			hasEnd = true
		}
	}

	wildcard := func(v string) bool { return v == "" || v == "all" }

	var out []*models.Activity
	for _, a := range activities {
		if !wildcard(opts.Type) && string(a.Type) != opts.Type {
			continue
		}
		if !wildcard(opts.Source) && string(a.Source) != opts.Source {
			continue
		}
		if hasStart && a.Timestamp.Before(start) {
			continue
		}
		if hasEnd && a.Timestamp.After(end) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// load reads and decodes the collection. Corrupt storage is treated as
// "no data", not an error.
func (l *Ledger) load() []*models.Activity {
	data, err := l.store.Load()
	if err != nil || len(data) == 0 {
		return nil
	}
	var activities []*models.Activity
	if err := json.Unmarshal(data, &activities); err != nil {
		return nil
	}
	return activities
}

// persist encodes and stores the whole collection.
func (l *Ledger) persist(activities []*models.Activity) error {
	if activities == nil {
		activities = []*models.Activity{}
	}
	data, err := json.Marshal(activities)
	if err != nil {
		return fmt.Errorf("encode activities: %w", err)
	}
	if err := l.store.Save(data); err != nil {
		return fmt.Errorf("persist activities: %w", err)
	}
	return nil
}
