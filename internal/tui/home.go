package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/petpal/internal/store"
)

const homeOpenTodos = 5

type homeModel struct {
	store  *store.Store
	width  int
	height int

	pets      []store.Pet
	todos     []store.Todo
	today     []store.AgendaItem
	doneToday int
}

func newHomeModel(s *store.Store) homeModel {
	return homeModel{store: s}
}

func (h *homeModel) setSize(w, ht int) {
	h.width = w
	h.height = ht
}

type homeDataMsg struct {
	pets      []store.Pet
	todos     []store.Todo
	today     []store.AgendaItem
	doneToday int
}

func (h homeModel) refresh() tea.Cmd {
	return func() tea.Msg {
		now := time.Now()
		todos := h.store.Todos.List()

		return homeDataMsg{
			pets:      h.store.Pets.List(),
			todos:     todos,
			today:     h.store.Agenda.Day(now.Format(store.DayLayout)),
			doneToday: store.CompletedOn(todos, now),
		}
	}
}

func (h homeModel) update(msg tea.Msg) (homeModel, tea.Cmd) {
	if msg, ok := msg.(homeDataMsg); ok {
		h.pets = msg.pets
		h.todos = msg.todos
		h.today = msg.today
		h.doneToday = msg.doneToday
	}
	return h, nil
}

func (h homeModel) openTodos() []store.Todo {
	var open []store.Todo
	for _, td := range h.todos {
		if !td.Completed {
			open = append(open, td)
		}
	}
	return open
}

func (h homeModel) view() string {
	if h.width < 20 {
		return "Terminal too small"
	}
	w := h.width - 4

	return lipgloss.JoinVertical(lipgloss.Left,
		h.renderBanner(w),
		h.renderTodayPanel(w),
		h.renderOpenPanel(w),
	)
}

func (h homeModel) renderBanner(w int) string {
	open := len(h.openTodos())
	stats := fmt.Sprintf("%d pets  ·  %d open to-dos  ·  %d done today", len(h.pets), open, h.doneToday)

	content := lipgloss.JoinVertical(lipgloss.Center,
		bannerStyle.Width(w-6).Render(pawGlyph+"  PETPAL"),
		mutedStyle.Width(w-6).Align(lipgloss.Center).Render(stats),
	)
	return activePanelStyle.Width(w).Render(content)
}

func (h homeModel) renderTodayPanel(w int) string {
	title := titleStyle.Render("Today") + "  " + mutedStyle.Render(time.Now().Format("Mon, Jan 02"))
	if len(h.today) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("Nothing on the agenda. Press 4 to plan the day."),
		))
	}

	rows := []string{title}
	for _, item := range h.today {
		rows = append(rows, "  "+highlightStyle.Render("●")+" "+item.Name)
	}
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (h homeModel) renderOpenPanel(w int) string {
	title := titleStyle.Render("Open To-dos")
	open := h.openTodos()
	if len(h.pets) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("No pets yet. Press 2 to add your first pet."),
		))
	}
	if len(open) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			successStyle.Render("All done!"),
		))
	}

	rows := []string{title}
	for i, td := range open {
		if i == homeOpenTodos {
			rows = append(rows, mutedStyle.Render(fmt.Sprintf("  … and %d more", len(open)-homeOpenTodos)))
			break
		}
		rows = append(rows, fmt.Sprintf("  %s %-24s %s",
			importanceStyle(td.Importance).Render("●"),
			truncate(td.Description, 24),
			mutedStyle.Render(td.Name+" · "+td.When),
		))
	}
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
