package store

import "strings"

// Gender of a pet as recorded on the pet form.
type Gender string

const (
	GenderGirl Gender = "Girl"
	GenderBoy  Gender = "Boy"
)

var Genders = []Gender{GenderGirl, GenderBoy}

func (g Gender) Valid() bool {
	for _, v := range Genders {
		if g == v {
			return true
		}
	}
	return false
}

// Species of a pet.
type Species string

const (
	SpeciesCat     Species = "Cat"
	SpeciesDog     Species = "Dog"
	SpeciesParrot  Species = "Parrot"
	SpeciesHamster Species = "Hamster"
	SpeciesFish    Species = "Fish"
	SpeciesTurtle  Species = "Turtle"
	SpeciesSnake   Species = "Snake"
)

var AllSpecies = []Species{
	SpeciesCat, SpeciesDog, SpeciesParrot, SpeciesHamster,
	SpeciesFish, SpeciesTurtle, SpeciesSnake,
}

func (s Species) Valid() bool {
	for _, v := range AllSpecies {
		if s == v {
			return true
		}
	}
	return false
}

// Pet is created once and never edited; age and weight are free text.
type Pet struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Age     string  `json:"age"`
	Weight  string  `json:"weight"`
	Gender  Gender  `json:"gender"`
	Species Species `json:"species"`
	Breed   string  `json:"breed"`
}

// PetInput carries the pet form fields. All of them are required.
type PetInput struct {
	Name    string
	Age     string
	Weight  string
	Gender  Gender
	Species Species
	Breed   string
}

// Importance levels offered by the to-do form. Stored values are not checked
// against this list.
const DefaultImportance = "Normal"

var Importances = []string{"Low", DefaultImportance, "High", "Urgent"}

// Todo is a task for a pet. Name is the pet's name as typed, not a reference.
type Todo struct {
	ID             string `json:"id"`
	Description    string `json:"description"`
	When           string `json:"when"`
	Name           string `json:"name"`
	Importance     string `json:"importance"`
	Completed      bool   `json:"completed"`
	CompletionDate string `json:"completionDate,omitempty"`
}

// BelongsTo reports whether the to-do was written for the named pet.
func (t Todo) BelongsTo(pet string) bool {
	return PetKey(t.Name) == PetKey(pet)
}

// PetKey normalizes a pet name for matching: case and surrounding space are
// ignored.
func PetKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TodoInput carries the to-do form fields. Importance may be empty.
type TodoInput struct {
	Description string
	When        string
	Name        string
	Importance  string
}

// AgendaItem is one appointment. Height is a row-height hint for rendering.
type AgendaItem struct {
	Name   string `json:"name"`
	Height int    `json:"height"`
	Day    string `json:"day"`
}

// CalendarDay is a rendered day of the agenda window. Placeholder days have
// no items and exist only for display.
type CalendarDay struct {
	Date        string
	Items       []AgendaItem
	Placeholder bool
}

// Trend is the number of completed to-dos per calendar day, oldest first.
type Trend struct {
	Dates  []string
	Counts []int
}

// Snapshot is a point-in-time copy of every collection.
type Snapshot struct {
	Pets   []Pet
	Todos  []Todo
	Agenda map[string][]AgendaItem
}
