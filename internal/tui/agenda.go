package tui

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/petpal/internal/store"
)

// Days shown in the strip before and after the selected day.
const (
	stripBefore = 3
	stripAfter  = 7
)

type agendaModel struct {
	store  *store.Store
	width  int
	height int

	selected time.Time
	items    map[string][]store.AgendaItem
	cursor   int

	formActive bool
	form       *huh.Form
	formName   *string
}

func newAgendaModel(s *store.Store) agendaModel {
	name := ""
	return agendaModel{
		store:    s,
		selected: dayStart(time.Now()),
		items:    map[string][]store.AgendaItem{},
		formName: &name,
	}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (a *agendaModel) setSize(w, h int) {
	a.width = w
	a.height = h
}

type agendaDataMsg struct {
	items map[string][]store.AgendaItem
}

func (a agendaModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return agendaDataMsg{items: a.store.Agenda.Items()}
	}
}

func (a agendaModel) selectedKey() string {
	return a.selected.Format(store.DayLayout)
}

func (a agendaModel) dayItems() []store.AgendaItem {
	return a.items[a.selectedKey()]
}

func (a agendaModel) update(msg tea.Msg) (agendaModel, tea.Cmd) {
	if a.formActive && a.form != nil {
		return a.updateForm(msg)
	}

	switch msg := msg.(type) {
	case agendaDataMsg:
		a.items = msg.items
		a.cursor = clampCursor(a.cursor, len(a.dayItems()))
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			a = a.moveTo(a.selected.AddDate(0, 0, -1))
		case key.Matches(msg, keys.Right):
			a = a.moveTo(a.selected.AddDate(0, 0, 1))
		case key.Matches(msg, keys.Today):
			a = a.moveTo(dayStart(time.Now()))
		case key.Matches(msg, keys.Up):
			if a.cursor > 0 {
				a.cursor--
			}
		case key.Matches(msg, keys.Down):
			if a.cursor < len(a.dayItems())-1 {
				a.cursor++
			}
		case key.Matches(msg, keys.New):
			return a.showNewItemForm()
		case key.Matches(msg, keys.Delete):
			if items := a.dayItems(); len(items) > 0 {
				item := items[a.cursor]
				a = a.withoutCursorItem()
				return a, mutate("Removed "+item.Name, func(ctx context.Context) error {
					return a.store.Agenda.RemoveItem(ctx, item)
				})
			}
		}
	}
	return a, nil
}

// withoutCursorItem drops the item under the cursor from the local copy so
// further keys act on what is on screen before the reload arrives.
func (a agendaModel) withoutCursorItem() agendaModel {
	day := a.selectedKey()
	items := maps.Clone(a.items)
	remaining := slices.Delete(slices.Clone(items[day]), a.cursor, a.cursor+1)
	if len(remaining) == 0 {
		delete(items, day)
	} else {
		items[day] = remaining
	}
	a.items = items
	a.cursor = clampCursor(a.cursor, len(remaining))
	return a
}

func (a agendaModel) moveTo(day time.Time) agendaModel {
	a.selected = dayStart(day)
	a.cursor = 0
	return a
}

func (a agendaModel) showNewItemForm() (agendaModel, tea.Cmd) {
	*a.formName = ""
	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Appointment").
				Description(a.selected.Format("Monday, Jan 02 2006")).
				Value(a.formName).
				Validate(huh.ValidateNotEmpty()),
		),
	).WithShowHelp(true).WithShowErrors(true)

	a.formActive = true
	return a, a.form.Init()
}

func (a agendaModel) updateForm(msg tea.Msg) (agendaModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			a.formActive = false
			a.form = nil
			return a, nil
		}
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		a.formActive = false
		a.form = nil
		day, name := a.selectedKey(), *a.formName
		return a, mutate("Added "+strings.TrimSpace(name), func(ctx context.Context) error {
			_, err := a.store.Agenda.AddItem(ctx, day, name)
			return err
		})
	}

	return a, cmd
}

// window is the rendered calendar around the selected day. Days without
// items are placeholders and never reach the store.
func (a agendaModel) window() []store.CalendarDay {
	return store.CalendarWindow(a.selected, a.items)
}

func (a agendaModel) view() string {
	w := a.width - 4
	if a.formActive && a.form != nil {
		content := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("New Appointment"), "", a.form.View())
		return panelStyle.Width(w).Render(content)
	}

	days := a.window()
	busy := 0
	for _, d := range days {
		if !d.Placeholder {
			busy++
		}
	}

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Agenda"), "  ",
		highlightStyle.Render(a.selected.Format("Monday, Jan 02 2006")), "  ",
		mutedStyle.Render(fmt.Sprintf("%d busy days in view", busy)),
	)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		a.renderStrip(days),
		"",
		a.renderItems(),
		"",
		mutedStyle.Render("  ←/→: day  t: today  n: add  d: delete"),
	))
}

func (a agendaModel) renderStrip(days []store.CalendarDay) string {
	focus := store.WindowDaysBefore
	from := max(0, focus-stripBefore)
	to := min(len(days), focus+stripAfter+1)

	var labels, marks []string
	for i := from; i < to; i++ {
		d := days[i]
		t, _ := time.ParseInLocation(store.DayLayout, d.Date, a.selected.Location())
		style := dayStyle
		mark := "·"
		if !d.Placeholder {
			style = busyDayStyle
			mark = fmt.Sprintf("●%d", len(d.Items))
		}
		if i == focus {
			style = selectedDayStyle
		}
		labels = append(labels, style.Render(t.Format("Mon 2")))
		marks = append(marks, style.Render(mark))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, labels...),
		lipgloss.JoinHorizontal(lipgloss.Top, marks...),
	)
}

func (a agendaModel) renderItems() string {
	items := a.dayItems()
	if len(items) == 0 {
		return mutedStyle.Render("  This is an empty day. Press n to add an appointment.")
	}

	var rows []string
	for i, item := range items {
		cursor := "  "
		style := normalItemStyle
		if i == a.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		// Height is a row-size hint; draw it as a short gauge.
		gauge := mutedStyle.Render(strings.Repeat("▮", item.Height/25))
		rows = append(rows, cursor+style.Render(item.Name)+" "+gauge)
	}
	return strings.Join(rows, "\n")
}
