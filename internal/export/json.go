package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/petpal/internal/store"
)

type jsonExport struct {
	ExportedAt string                        `json:"exported_at"`
	Counts     jsonCounts                    `json:"counts"`
	Pets       []store.Pet                   `json:"pets"`
	Todos      []store.Todo                  `json:"todos"`
	Agenda     map[string][]store.AgendaItem `json:"agenda"`
	Trend      []jsonTrendPoint              `json:"trend"`
}

type jsonCounts struct {
	Pets           int `json:"pets"`
	Todos          int `json:"todos"`
	CompletedTodos int `json:"completed_todos"`
	AgendaDays     int `json:"agenda_days"`
	AgendaItems    int `json:"agenda_items"`
}

type jsonTrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ToJSON writes a pretty-printed backup of snap, including the completion
// trend derived from its to-dos. Empty collections are written as [] and {}.
func ToJSON(snap store.Snapshot, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Pets:       snap.Pets,
		Todos:      snap.Todos,
		Agenda:     snap.Agenda,
		Trend:      []jsonTrendPoint{},
	}
	if export.Pets == nil {
		export.Pets = []store.Pet{}
	}
	if export.Todos == nil {
		export.Todos = []store.Todo{}
	}
	if export.Agenda == nil {
		export.Agenda = map[string][]store.AgendaItem{}
	}

	export.Counts.Pets = len(export.Pets)
	export.Counts.Todos = len(export.Todos)
	for _, td := range export.Todos {
		if td.Completed {
			export.Counts.CompletedTodos++
		}
	}
	export.Counts.AgendaDays = len(export.Agenda)
	for _, items := range export.Agenda {
		export.Counts.AgendaItems += len(items)
	}

	trend := store.CompletionTrend(export.Todos)
	for i, day := range trend.Dates {
		export.Trend = append(export.Trend, jsonTrendPoint{Date: day, Count: trend.Counts[i]})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

// Filename is the default export file name for format ("csv" or "json").
func Filename(format string, now time.Time) string {
	return fmt.Sprintf("petpal-export-%s.%s", now.Format("2006-01-02"), format)
}
