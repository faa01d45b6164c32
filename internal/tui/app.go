package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/petpal/internal/export"
	"github.com/sadopc/petpal/internal/store"
)

var exportFormats = []string{"csv", "json"}

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	home    homeModel
	pets    petsModel
	todos   todosModel
	agenda  agendaModel
	details detailsModel

	help     help.Model
	status   string
	statusOK bool
}

func NewApp(s *store.Store) App {
	h := help.New()
	h.ShowAll = false

	return App{
		store:      s,
		activeView: viewHome,
		home:       newHomeModel(s),
		pets:       newPetsModel(s),
		todos:      newTodosModel(s),
		agenda:     newAgendaModel(s),
		details:    newDetailsModel(s),
		help:       h,
	}
}

// Init loads every collection once. Afterwards views read the in-memory
// services only.
func (a App) Init() tea.Cmd {
	return a.loadStore()
}

func (a App) loadStore() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := storeCtx()
		defer cancel()
		return storeLoadedMsg{err: a.store.Load(ctx)}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.home.setSize(a.width, contentHeight)
		a.pets.setSize(a.width, contentHeight)
		a.todos.setSize(a.width, contentHeight)
		a.agenda.setSize(a.width, contentHeight)
		a.details.setSize(a.width, contentHeight)
		return a, a.details.refresh()

	case tea.KeyMsg:
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			return a.switchTo(viewHome)
		case key.Matches(msg, keys.Tab2):
			return a.switchTo(viewPets)
		case key.Matches(msg, keys.Tab3):
			return a.switchTo(viewTodos)
		case key.Matches(msg, keys.Tab4):
			return a.switchTo(viewAgenda)
		case key.Matches(msg, keys.Tab5):
			return a.switchTo(viewDetails)
		case key.Matches(msg, keys.Tab):
			return a.switchTo((a.activeView + 1) % viewState(len(viewNames)))
		}

	case storeLoadedMsg:
		if msg.err != nil {
			a.setStatus(fmt.Sprintf("Failed to load data: %v", msg.err), false)
		}
		return a, a.refreshAll()

	case savedMsg:
		if msg.err != nil {
			a.setStatus(fmt.Sprintf("Error: %v", msg.err), false)
		} else {
			a.setStatus(msg.text, true)
		}
		return a, a.refreshAll()

	case statusMsg:
		a.setStatus(msg.text, !msg.isError)
		return a, nil

	case exportDoneMsg:
		a.setStatus("Exported to "+msg.path, true)
		a.exportPicking = false
		return a, nil

	case homeDataMsg:
		a.home, _ = a.home.update(msg)
		return a, nil
	case petsDataMsg:
		a.pets, _ = a.pets.update(msg)
		return a, nil
	case todosDataMsg:
		a.todos, _ = a.todos.update(msg)
		return a, nil
	case agendaDataMsg:
		a.agenda, _ = a.agenda.update(msg)
		return a, nil
	case detailsDataMsg:
		a.details, _ = a.details.update(msg)
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a *App) setStatus(text string, ok bool) {
	a.status = text
	a.statusOK = ok
}

func (a App) switchTo(v viewState) (tea.Model, tea.Cmd) {
	a.activeView = v
	return a, a.refreshCurrentView()
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewHome:
		a.home, cmd = a.home.update(msg)
	case viewPets:
		a.pets, cmd = a.pets.update(msg)
	case viewTodos:
		a.todos, cmd = a.todos.update(msg)
	case viewAgenda:
		a.agenda, cmd = a.agenda.update(msg)
	case viewDetails:
		a.details, cmd = a.details.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewPets:
		return a.pets.formActive
	case viewTodos:
		return a.todos.formActive
	case viewAgenda:
		return a.agenda.formActive
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewHome:
		return a.home.refresh()
	case viewPets:
		return a.pets.refresh()
	case viewTodos:
		return a.todos.refresh()
	case viewAgenda:
		return a.agenda.refresh()
	case viewDetails:
		return a.details.refresh()
	}
	return nil
}

func (a App) refreshAll() tea.Cmd {
	return tea.Batch(
		a.home.refresh(),
		a.pets.refresh(),
		a.todos.refresh(),
		a.agenda.refresh(),
		a.details.refresh(),
	)
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewHome:
		content = a.home.view()
	case viewPets:
		content = a.pets.view()
	case viewTodos:
		content = a.todos.view()
	case viewAgenda:
		content = a.agenda.view()
	case viewDetails:
		content = a.details.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(1, a.height-headerHeight-footerHeight)

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render(pawGlyph + " petpal")
	gap := max(1, a.width-lipgloss.Width(title)-lipgloss.Width(tabRow)-4)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := errorStyle
		if a.statusOK {
			style = mutedStyle
		}
		status = style.Render(" " + a.status)
	}

	// Open to-do indicator
	open := 0
	for _, td := range a.store.Todos.List() {
		if !td.Completed {
			open++
		}
	}
	openInfo := ""
	if open > 0 {
		openInfo = warningStyle.Render(fmt.Sprintf(" ● %d open", open))
	}

	left := footerStyle.Render(helpView)
	right := openInfo + status

	gap := max(1, a.width-lipgloss.Width(left)-lipgloss.Width(right)-2)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range []string{"CSV (to-dos)", "JSON (full backup)"} {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportFormats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(exportFormats[a.exportCursor])
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format string) tea.Cmd {
	return func() tea.Msg {
		home, err := os.UserHomeDir()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		path := filepath.Join(home, export.Filename(format, time.Now()))

		snap := a.store.Snapshot()
		switch format {
		case "csv":
			if err := export.ToCSV(snap.Todos, snap.Pets, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		default:
			if err := export.ToJSON(snap, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
