package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/petpal/internal/store"
)

// chartDays is how many of the most recent completion days the chart shows.
const chartDays = 14

type detailsModel struct {
	store  *store.Store
	width  int
	height int

	pets     []store.Pet
	todos    []store.Todo
	cursor   int
	selected bool
	petID    int64
	// petOnly limits the chart to the selected pet's to-dos.
	petOnly bool

	trend store.Trend
	chart barchart.Model
}

func newDetailsModel(s *store.Store) detailsModel {
	return detailsModel{
		store: s,
		chart: barchart.New(60, 12),
	}
}

func (d *detailsModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

type detailsDataMsg struct {
	pets  []store.Pet
	todos []store.Todo
}

func (d detailsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return detailsDataMsg{pets: d.store.Pets.List(), todos: d.store.Todos.List()}
	}
}

func (d detailsModel) update(msg tea.Msg) (detailsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case detailsDataMsg:
		d.pets = msg.pets
		d.todos = msg.todos
		d.cursor = clampCursor(d.cursor, len(d.pets))
		if d.selected {
			d.selected = d.followSelected()
		}
		d.buildChart()
		return d, nil

	case tea.KeyMsg:
		if d.selected {
			switch {
			case key.Matches(msg, keys.Back):
				d.selected = false
			case key.Matches(msg, keys.Filter):
				d.petOnly = !d.petOnly
				d.buildChart()
			}
			return d, nil
		}

		switch {
		case key.Matches(msg, keys.Up):
			if d.cursor > 0 {
				d.cursor--
			}
		case key.Matches(msg, keys.Down):
			if d.cursor < len(d.pets)-1 {
				d.cursor++
			}
		case key.Matches(msg, keys.Enter):
			if len(d.pets) > 0 {
				d.selected = true
				d.petID = d.pets[d.cursor].ID
				d.buildChart()
			}
		}
	}
	return d, nil
}

func (d detailsModel) selectedPet() (store.Pet, bool) {
	if !d.selected {
		return store.Pet{}, false
	}
	return d.store.Pets.Get(d.petID)
}

// followSelected moves the cursor to the selected pet after a reload and
// reports whether that pet still exists.
func (d *detailsModel) followSelected() bool {
	if _, ok := d.store.Pets.Get(d.petID); !ok {
		return false
	}
	for i, p := range d.pets {
		if p.ID == d.petID {
			d.cursor = i
		}
	}
	return true
}

// chartTodos are the to-dos the trend is computed from: every to-do, or only
// the selected pet's when petOnly is set.
func (d detailsModel) chartTodos() []store.Todo {
	pet, ok := d.selectedPet()
	if !ok || !d.petOnly {
		return d.todos
	}
	var out []store.Todo
	for _, td := range d.todos {
		if td.BelongsTo(pet.Name) {
			out = append(out, td)
		}
	}
	return out
}

func (d *detailsModel) buildChart() {
	chartWidth := max(20, d.width-8)
	chartHeight := 10
	if d.height > 30 {
		chartHeight = 14
	}

	d.trend = store.CompletionTrend(d.chartTodos())
	d.chart = barchart.New(chartWidth, chartHeight)

	recent := d.trend.Last(chartDays)
	var bars []barchart.BarData
	for i, day := range recent.Dates {
		label := day
		if len(day) == len(store.DayLayout) {
			label = day[5:]
		}
		bars = append(bars, barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{{
				Name:  "done",
				Value: float64(recent.Counts[i]),
				Style: lipgloss.NewStyle().Foreground(colorPrimary),
			}},
		})
	}
	if len(bars) == 0 {
		return
	}

	d.chart.PushAll(bars)
	d.chart.Draw()
}

func (d detailsModel) view() string {
	w := d.width - 4

	if len(d.pets) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Details"),
			"",
			mutedStyle.Render("No pets yet. Press 2 and then n to add pets."),
		))
	}

	if pet, ok := d.selectedPet(); ok {
		return d.renderPet(w, pet)
	}
	return d.renderPetList(w)
}

func (d detailsModel) renderPetList(w int) string {
	rows := []string{titleStyle.Render("Details"), ""}
	for i, pet := range d.pets {
		cursor := "  "
		style := normalItemStyle
		if i == d.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%s %s", cursor, speciesGlyph(pet.Species), pet.Name)))
	}
	rows = append(rows, "", mutedStyle.Render("  enter: open"))
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d detailsModel) renderPet(w int, pet store.Pet) string {
	card := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(speciesGlyph(pet.Species)+"  "+pet.Name),
		fmt.Sprintf("Gender: %s", pet.Gender),
		fmt.Sprintf("Age:    %s years", pet.Age),
		fmt.Sprintf("Weight: %s", pet.Weight),
		fmt.Sprintf("Breed:  %s", pet.Breed),
	)

	scope := "all to-dos"
	if d.petOnly {
		scope = pet.Name + "'s to-dos"
	}
	chartTitle := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Completed per day"), "  ",
		mutedStyle.Render(fmt.Sprintf("%s · %d total · best day %d", scope, d.trend.Total(), d.trend.Max())),
	)

	chart := mutedStyle.Render("  No completed to-dos yet")
	if len(d.trend.Dates) > 0 {
		chart = d.chart.View()
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		card,
		"",
		chartTitle,
		"",
		chart,
		"",
		mutedStyle.Render("  f: all/pet to-dos  esc: back"),
	))
}
