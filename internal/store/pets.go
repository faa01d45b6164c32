package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/sadopc/petpal/internal/kv"
)

// Pets is the pet collection, in insertion order.
type Pets struct {
	mu   sync.Mutex
	doc  document[[]Pet]
	pets []Pet
	ids  *IDGenerator
	log  *log.Logger
}

func newPets(backend kv.Store, logger *log.Logger) *Pets {
	return &Pets{
		doc:  document[[]Pet]{kv: backend, key: KeyPets, schema: petsSchema},
		pets: []Pet{},
		ids:  NewIDGenerator(),
		log:  logger,
	}
}

// Load replaces the in-memory collection with the stored one. On failure the
// collection is emptied and the error returned; the stored document is left
// as it was.
func (p *Pets) Load(ctx context.Context) ([]Pet, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pets, _, err := p.doc.load(ctx)
	if err != nil {
		p.log.Warn("load failed", "err", err)
		p.pets = []Pet{}
		return []Pet{}, err
	}
	if pets == nil {
		pets = []Pet{}
	}
	for _, pet := range pets {
		p.ids.Observe(pet.ID)
	}
	p.pets = pets
	p.log.Debug("loaded", "count", len(pets))
	return slices.Clone(p.pets), nil
}

func (p *Pets) List() []Pet {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.pets)
}

func (p *Pets) Get(id int64) (Pet, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := slices.IndexFunc(p.pets, func(pet Pet) bool { return pet.ID == id })
	if i < 0 {
		return Pet{}, false
	}
	return p.pets[i], true
}

// Add validates in, appends a new pet and saves. If the save fails the pet
// stays in memory and the write error is returned alongside it.
func (p *Pets) Add(ctx context.Context, in PetInput) (Pet, error) {
	if err := in.validate(); err != nil {
		return Pet{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	pet := Pet{
		ID:      p.ids.Next(),
		Name:    strings.TrimSpace(in.Name),
		Age:     strings.TrimSpace(in.Age),
		Weight:  strings.TrimSpace(in.Weight),
		Gender:  in.Gender,
		Species: in.Species,
		Breed:   strings.TrimSpace(in.Breed),
	}
	p.pets = append(slices.Clone(p.pets), pet)
	return pet, p.save(ctx)
}

// Delete removes the pet with id. An unknown id leaves the collection as is.
func (p *Pets) Delete(ctx context.Context, id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pets = slices.DeleteFunc(slices.Clone(p.pets), func(pet Pet) bool { return pet.ID == id })
	return p.save(ctx)
}

// save must be called with mu held.
func (p *Pets) save(ctx context.Context) error {
	if err := p.doc.save(ctx, p.pets); err != nil {
		p.log.Warn("save failed", "err", err)
		return err
	}
	p.log.Debug("saved", "count", len(p.pets))
	return nil
}

func (in PetInput) validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", in.Name},
		{"age", in.Age},
		{"weight", in.Weight},
		{"gender", string(in.Gender)},
		{"species", string(in.Species)},
		{"breed", in.Breed},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	if !in.Gender.Valid() {
		return fmt.Errorf("%w: gender %q", ErrInvalidValue, in.Gender)
	}
	if !in.Species.Valid() {
		return fmt.Errorf("%w: species %q", ErrInvalidValue, in.Species)
	}
	return nil
}
