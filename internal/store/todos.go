package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/sadopc/petpal/internal/kv"
)

// completionLayout matches JavaScript's Date.prototype.toISOString.
const completionLayout = "2006-01-02T15:04:05.000Z07:00"

// Todos is the to-do collection, in insertion order.
type Todos struct {
	mu    sync.Mutex
	doc   document[[]Todo]
	todos []Todo
	newID func() string
	now   func() time.Time
	log   *log.Logger
}

func newTodos(backend kv.Store, logger *log.Logger) *Todos {
	return &Todos{
		doc:   document[[]Todo]{kv: backend, key: KeyTodos, schema: todosSchema},
		todos: []Todo{},
		newID: uuid.NewString,
		now:   time.Now,
		log:   logger,
	}
}

// Load replaces the in-memory collection with the stored one. On failure the
// collection is emptied and the error returned.
func (t *Todos) Load(ctx context.Context) ([]Todo, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	todos, _, err := t.doc.load(ctx)
	if err != nil {
		t.log.Warn("load failed", "err", err)
		t.todos = []Todo{}
		return []Todo{}, err
	}
	if todos == nil {
		todos = []Todo{}
	}
	t.todos = todos
	t.log.Debug("loaded", "count", len(todos))
	return slices.Clone(t.todos), nil
}

func (t *Todos) List() []Todo {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.todos)
}

// ForPet returns the to-dos whose pet name matches name, ignoring case and
// surrounding space.
func (t *Todos) ForPet(name string) []Todo {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []Todo
	for _, td := range t.todos {
		if td.BelongsTo(name) {
			out = append(out, td)
		}
	}
	return out
}

// Add validates in, appends an open to-do and saves.
func (t *Todos) Add(ctx context.Context, in TodoInput) (Todo, error) {
	if err := in.validate(); err != nil {
		return Todo{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	importance := strings.TrimSpace(in.Importance)
	if importance == "" {
		importance = DefaultImportance
	}
	td := Todo{
		ID:          t.newID(),
		Description: strings.TrimSpace(in.Description),
		When:        strings.TrimSpace(in.When),
		Name:        strings.TrimSpace(in.Name),
		Importance:  importance,
	}
	t.todos = append(slices.Clone(t.todos), td)
	return td, t.save(ctx)
}

// Toggle flips the completed flag of the to-do with id and stamps the
// completion date with the current instant, in either direction.
func (t *Todos) Toggle(ctx context.Context, id string) (Todo, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := slices.IndexFunc(t.todos, func(td Todo) bool { return td.ID == id })
	if i < 0 {
		return Todo{}, fmt.Errorf("todo %q: %w", id, ErrNotFound)
	}
	updated := slices.Clone(t.todos)
	td := updated[i]
	td.Completed = !td.Completed
	td.CompletionDate = t.now().UTC().Format(completionLayout)
	updated[i] = td
	t.todos = updated
	return td, t.save(ctx)
}

// Delete removes the to-do with id. An unknown id leaves the collection as is.
func (t *Todos) Delete(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.todos = slices.DeleteFunc(slices.Clone(t.todos), func(td Todo) bool { return td.ID == id })
	return t.save(ctx)
}

// save must be called with mu held.
func (t *Todos) save(ctx context.Context) error {
	if err := t.doc.save(ctx, t.todos); err != nil {
		t.log.Warn("save failed", "err", err)
		return err
	}
	t.log.Debug("saved", "count", len(t.todos))
	return nil
}

func (in TodoInput) validate() error {
	switch {
	case strings.TrimSpace(in.Description) == "":
		return fmt.Errorf("%w: description", ErrMissingField)
	case strings.TrimSpace(in.When) == "":
		return fmt.Errorf("%w: when", ErrMissingField)
	case strings.TrimSpace(in.Name) == "":
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	return nil
}
