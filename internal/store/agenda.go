package store

import (
	"context"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sadopc/petpal/internal/kv"
)

// DayLayout is the format of agenda keys.
const DayLayout = "2006-01-02"

const (
	minItemHeight  = 50
	itemHeightSpan = 150
)

// Agenda holds appointments bucketed by day. A day with no appointments has
// no key at all.
type Agenda struct {
	mu    sync.Mutex
	doc   document[map[string][]AgendaItem]
	items map[string][]AgendaItem
	randN func(n int) int
	log   *log.Logger
}

func newAgenda(backend kv.Store, logger *log.Logger) *Agenda {
	return &Agenda{
		doc:   document[map[string][]AgendaItem]{kv: backend, key: KeyAgenda, schema: agendaSchema},
		items: map[string][]AgendaItem{},
		randN: rand.IntN,
		log:   logger,
	}
}

// Load replaces the in-memory mapping with the stored one, dropping any
// empty day buckets left by older documents.
func (a *Agenda) Load(ctx context.Context) (map[string][]AgendaItem, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	items, _, err := a.doc.load(ctx)
	if err != nil {
		a.log.Warn("load failed", "err", err)
		a.items = map[string][]AgendaItem{}
		return map[string][]AgendaItem{}, err
	}
	if items == nil {
		items = map[string][]AgendaItem{}
	}
	maps.DeleteFunc(items, func(_ string, bucket []AgendaItem) bool { return len(bucket) == 0 })
	a.items = items
	a.log.Debug("loaded", "days", len(items))
	return cloneAgenda(a.items), nil
}

// Items returns a deep copy of the mapping.
func (a *Agenda) Items() map[string][]AgendaItem {
	a.mu.Lock()
	defer a.mu.Unlock()
	return cloneAgenda(a.items)
}

// Day returns the appointments on day, in the order they were added.
func (a *Agenda) Day(day string) []AgendaItem {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.items[day])
}

// AddItem appends an appointment named name to day, creating the bucket.
func (a *Agenda) AddItem(ctx context.Context, day, name string) (AgendaItem, error) {
	if strings.TrimSpace(name) == "" {
		return AgendaItem{}, fmt.Errorf("%w: name", ErrMissingField)
	}
	if _, err := time.Parse(DayLayout, day); err != nil {
		return AgendaItem{}, fmt.Errorf("%w: day %q", ErrInvalidValue, day)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	item := AgendaItem{
		Name:   strings.TrimSpace(name),
		Height: max(minItemHeight, a.randN(itemHeightSpan)),
		Day:    day,
	}
	updated := cloneAgenda(a.items)
	updated[day] = append(updated[day], item)
	a.items = updated
	return item, a.save(ctx)
}

// DeleteItem removes the appointment at index on day. Removing the last one
// removes the day. A missing day or index is ErrNotFound and nothing is
// written.
func (a *Agenda) DeleteItem(ctx context.Context, day string, index int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	bucket, ok := a.items[day]
	if !ok || index < 0 || index >= len(bucket) {
		return fmt.Errorf("agenda item %s[%d]: %w", day, index, ErrNotFound)
	}
	return a.deleteAt(ctx, day, index)
}

// RemoveItem removes the first appointment equal to item from item.Day. A
// caller holding an out-of-date list never removes a neighbouring item this
// way. No match is ErrNotFound and nothing is written.
func (a *Agenda) RemoveItem(ctx context.Context, item AgendaItem) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	index := slices.Index(a.items[item.Day], item)
	if index < 0 {
		return fmt.Errorf("agenda item %s %q: %w", item.Day, item.Name, ErrNotFound)
	}
	return a.deleteAt(ctx, item.Day, index)
}

// deleteAt must be called with mu held and a valid index.
func (a *Agenda) deleteAt(ctx context.Context, day string, index int) error {
	updated := cloneAgenda(a.items)
	remaining := slices.Delete(slices.Clone(a.items[day]), index, index+1)
	if len(remaining) == 0 {
		delete(updated, day)
	} else {
		updated[day] = remaining
	}
	a.items = updated
	return a.save(ctx)
}

// save must be called with mu held.
func (a *Agenda) save(ctx context.Context) error {
	if err := a.doc.save(ctx, a.items); err != nil {
		a.log.Warn("save failed", "err", err)
		return err
	}
	a.log.Debug("saved", "days", len(a.items))
	return nil
}

func cloneAgenda(src map[string][]AgendaItem) map[string][]AgendaItem {
	out := make(map[string][]AgendaItem, len(src))
	for day, bucket := range src {
		out[day] = slices.Clone(bucket)
	}
	return out
}
