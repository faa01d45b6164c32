package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sadopc/petpal/internal/kv"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	//go:embed schemas/pets.schema.json
	petsSchemaSrc string
	//go:embed schemas/todos.schema.json
	todosSchemaSrc string
	//go:embed schemas/agenda.schema.json
	agendaSchemaSrc string

	petsSchema   = jsonschema.MustCompileString("pets.schema.json", petsSchemaSrc)
	todosSchema  = jsonschema.MustCompileString("todos.schema.json", todosSchemaSrc)
	agendaSchema = jsonschema.MustCompileString("agenda.schema.json", agendaSchemaSrc)
)

// document reads and writes one key as a whole JSON value. It is the only
// place that knows collections are persisted by full rewrite.
type document[T any] struct {
	kv     kv.Store
	key    string
	schema *jsonschema.Schema
}

// load returns found == false when the key is absent.
func (d document[T]) load(ctx context.Context) (T, bool, error) {
	var v T
	raw, found, err := d.kv.Get(ctx, d.key)
	if err != nil {
		return v, false, fmt.Errorf("%w: %q: %w", ErrStoreRead, d.key, err)
	}
	if !found {
		return v, false, nil
	}

	var generic any
	if err := json.Unmarshal([]byte(raw), &generic); err != nil {
		return v, true, fmt.Errorf("%w: %q: %w", ErrCorruptDocument, d.key, err)
	}
	if err := d.schema.Validate(generic); err != nil {
		return v, true, fmt.Errorf("%w: %q: %s", ErrCorruptDocument, d.key, schemaProblems(err))
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return v, true, fmt.Errorf("%w: %q: %w", ErrCorruptDocument, d.key, err)
	}
	return v, true, nil
}

func (d document[T]) save(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode %q: %w", ErrStoreWrite, d.key, err)
	}
	if err := d.kv.Set(ctx, d.key, string(data)); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrStoreWrite, d.key, err)
	}
	return nil
}

// schemaProblems flattens a validation error into "path: message" pairs.
func schemaProblems(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	var out []string
	collectProblems(ve, &out)
	return strings.Join(out, "; ")
}

func collectProblems(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*out = append(*out, loc+": "+ve.Message)
		return
	}
	for _, cause := range ve.Causes {
		collectProblems(cause, out)
	}
}
