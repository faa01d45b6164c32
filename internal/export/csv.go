package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/sadopc/petpal/internal/store"
)

var csvHeader = []string{"ID", "Pet", "Species", "Description", "When", "Importance", "Completed", "Completion Date"}

// ToCSV writes one row per to-do. The pet's species is looked up by name and
// is "Unknown" when no pet matches.
func ToCSV(todos []store.Todo, pets []store.Pet, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return err
	}

	species := speciesByName(pets)
	for _, td := range todos {
		kind := "Unknown"
		if s, ok := species[store.PetKey(td.Name)]; ok {
			kind = string(s)
		}
		completed := "no"
		if td.Completed {
			completed = "yes"
		}

		row := []string{
			td.ID,
			td.Name,
			kind,
			td.Description,
			td.When,
			td.Importance,
			completed,
			td.CompletionDate,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// speciesByName keeps the first pet for each name.
func speciesByName(pets []store.Pet) map[string]store.Species {
	out := make(map[string]store.Species, len(pets))
	for _, p := range pets {
		k := store.PetKey(p.Name)
		if _, seen := out[k]; !seen {
			out[k] = p.Species
		}
	}
	return out
}
