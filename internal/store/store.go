package store

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/sadopc/petpal/internal/kv"
	"github.com/sadopc/petpal/internal/logging"
)

// Document keys.
const (
	KeyPets   = "pets"
	KeyTodos  = "todos"
	KeyAgenda = "agendaItems"
)

var (
	ErrStoreRead       = errors.New("store read failed")
	ErrStoreWrite      = errors.New("store write failed")
	ErrCorruptDocument = errors.New("corrupt document")
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidValue    = errors.New("invalid value")
	ErrNotFound        = errors.New("not found")
)

// Store owns the pets, to-dos and agenda collections kept in one backend.
// Each collection is loaded once and then served from memory; every mutation
// rewrites that collection's whole document.
type Store struct {
	Pets   *Pets
	Todos  *Todos
	Agenda *Agenda

	backend kv.Store
}

// New builds the collections over backend. A nil logger discards output.
func New(backend kv.Store, logger *log.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{
		Pets:    newPets(backend, logger.WithPrefix("pets")),
		Todos:   newTodos(backend, logger.WithPrefix("todos")),
		Agenda:  newAgenda(backend, logger.WithPrefix("agenda")),
		backend: backend,
	}
}

// NewMemory creates a store over a fresh in-memory backend for testing.
func NewMemory() *Store {
	return New(kv.NewMemory(), nil)
}

// Load reads all three documents. A collection that fails to load is left
// empty and its error is joined into the result.
func (s *Store) Load(ctx context.Context) error {
	_, errPets := s.Pets.Load(ctx)
	_, errTodos := s.Todos.Load(ctx)
	_, errAgenda := s.Agenda.Load(ctx)
	return errors.Join(errPets, errTodos, errAgenda)
}

// Snapshot copies the in-memory collections.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Pets:   s.Pets.List(),
		Todos:  s.Todos.List(),
		Agenda: s.Agenda.Items(),
	}
}

func (s *Store) Close() error {
	return s.backend.Close()
}
