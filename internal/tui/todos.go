package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/petpal/internal/store"
)

type todosModel struct {
	store  *store.Store
	width  int
	height int

	todos    []store.Todo
	petNames []string
	cursor   int

	formActive bool
	form       *huh.Form

	formDescription *string
	formWhen        *string
	formPet         *string
	formImportance  *string
}

func newTodosModel(s *store.Store) todosModel {
	desc, when, pet, importance := "", "", "", store.DefaultImportance
	return todosModel{
		store:           s,
		formDescription: &desc,
		formWhen:        &when,
		formPet:         &pet,
		formImportance:  &importance,
	}
}

func (m *todosModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type todosDataMsg struct {
	todos    []store.Todo
	petNames []string
}

func (m todosModel) refresh() tea.Cmd {
	return func() tea.Msg {
		pets := m.store.Pets.List()
		names := make([]string, len(pets))
		for i, p := range pets {
			names[i] = p.Name
		}
		return todosDataMsg{todos: m.store.Todos.List(), petNames: names}
	}
}

func (m todosModel) update(msg tea.Msg) (todosModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case todosDataMsg:
		m.todos = msg.todos
		m.petNames = msg.petNames
		m.cursor = clampCursor(m.cursor, len(m.todos))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.todos)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Toggle), key.Matches(msg, keys.Enter):
			if len(m.todos) > 0 {
				td := m.todos[m.cursor]
				text := "Completed " + td.Description
				if td.Completed {
					text = "Reopened " + td.Description
				}
				return m, mutate(text, func(ctx context.Context) error {
					_, err := m.store.Todos.Toggle(ctx, td.ID)
					return err
				})
			}
		case key.Matches(msg, keys.Delete):
			if len(m.todos) > 0 {
				td := m.todos[m.cursor]
				return m, mutate("Deleted "+td.Description, func(ctx context.Context) error {
					return m.store.Todos.Delete(ctx, td.ID)
				})
			}
		case key.Matches(msg, keys.New):
			return m.showNewTodoForm()
		}
	}
	return m, nil
}

func (m todosModel) showNewTodoForm() (todosModel, tea.Cmd) {
	*m.formDescription = ""
	*m.formWhen = ""
	*m.formPet = ""
	*m.formImportance = store.DefaultImportance

	importanceOptions := make([]huh.Option[string], len(store.Importances))
	for i, imp := range store.Importances {
		importanceOptions[i] = huh.NewOption(imp, imp)
	}

	petInput := huh.NewInput().Title("Pet").Value(m.formPet).Validate(huh.ValidateNotEmpty())
	if len(m.petNames) > 0 {
		petInput = petInput.Suggestions(m.petNames).Placeholder(m.petNames[0])
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Description").Value(m.formDescription).Validate(huh.ValidateNotEmpty()),
			huh.NewInput().Title("When").Placeholder("e.g. tomorrow 9am").Value(m.formWhen).Validate(huh.ValidateNotEmpty()),
			petInput,
			huh.NewSelect[string]().Title("Importance").Options(importanceOptions...).Value(m.formImportance),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m todosModel) updateForm(msg tea.Msg) (todosModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		m.form = nil
		in := store.TodoInput{
			Description: *m.formDescription,
			When:        *m.formWhen,
			Name:        *m.formPet,
			Importance:  *m.formImportance,
		}
		return m, mutate("Added "+strings.TrimSpace(in.Description), func(ctx context.Context) error {
			_, err := m.store.Todos.Add(ctx, in)
			return err
		})
	}

	return m, cmd
}

func (m todosModel) openCount() int {
	n := 0
	for _, td := range m.todos {
		if !td.Completed {
			n++
		}
	}
	return n
}

func (m todosModel) view() string {
	w := m.width - 4
	if m.formActive && m.form != nil {
		content := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("New To-do"), "", m.form.View())
		return panelStyle.Width(w).Render(content)
	}

	title := titleStyle.Render("To-dos") + "  " + mutedStyle.Render(fmt.Sprintf("%d open / %d total", m.openCount(), len(m.todos)))
	if len(m.todos) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("Nothing to do. Press n to add a to-do."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-4s %-28s %-14s %-16s %s", "", "Description", "Pet", "When", "Importance")))

	for i, td := range m.todos {
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		if td.Completed {
			style = style.Strikethrough(true).Foreground(colorMuted)
		}
		row := cursor + checkMark(td.Completed) + " " +
			style.Render(fmt.Sprintf("%-28s %-14s %-16s", truncate(td.Description, 28), truncate(td.Name, 14), truncate(td.When, 16))) +
			" " + importanceStyle(td.Importance).Render(td.Importance)
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  space/enter: toggle  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
