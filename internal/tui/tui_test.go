package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/petpal/internal/kv"
	"github.com/sadopc/petpal/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.NewMemory()
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func addPet(t *testing.T, s *store.Store, name string, species store.Species) store.Pet {
	t.Helper()
	pet, err := s.Pets.Add(context.Background(), store.PetInput{
		Name: name, Age: "2", Weight: "3kg", Gender: store.GenderBoy, Species: species, Breed: "Mixed",
	})
	if err != nil {
		t.Fatal(err)
	}
	return pet
}

func addTodo(t *testing.T, s *store.Store, desc, pet string) store.Todo {
	t.Helper()
	td, err := s.Todos.Add(context.Background(), store.TodoInput{Description: desc, When: "today", Name: pet})
	if err != nil {
		t.Fatal(err)
	}
	return td
}

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

// drain runs cmd and feeds every resulting message back into app until no
// commands remain. Only use it when no form is open.
func drain(app App, cmd tea.Cmd) App {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		m, next := app.Update(msg)
		app = m.(App)
		queue = append(queue, next)
	}
	return app
}

func sizedApp(t *testing.T, s *store.Store) App {
	t.Helper()
	app := NewApp(s)
	app = drain(app, app.Init())
	m, cmd := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return drain(m.(App), cmd)
}

func press(app App, msg tea.KeyMsg) App {
	m, cmd := app.Update(msg)
	return drain(m.(App), cmd)
}

// ============================================================
// Helper functions
// ============================================================

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 4, "hel…"},
		{"hello", 1, "…"},
		{"hello", 0, "hello"},
		{"héllo wörld", 6, "héllo…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestClampCursor(t *testing.T) {
	tests := []struct {
		cursor, n, want int
	}{
		{0, 0, 0},
		{3, 0, 0},
		{3, 2, 1},
		{1, 5, 1},
	}
	for _, tt := range tests {
		if got := clampCursor(tt.cursor, tt.n); got != tt.want {
			t.Errorf("clampCursor(%d, %d) = %d, want %d", tt.cursor, tt.n, got, tt.want)
		}
	}
}

func TestSpeciesGlyph(t *testing.T) {
	for _, s := range store.AllSpecies {
		if speciesGlyph(s) == pawGlyph {
			t.Errorf("species %s has no glyph", s)
		}
	}
	if speciesGlyph("Axolotl") != pawGlyph {
		t.Error("unknown species should fall back to the paw")
	}
}

// ============================================================
// View state
// ============================================================

func TestViewNames(t *testing.T) {
	if len(viewNames) != int(viewDetails)+1 {
		t.Fatalf("expected %d view names, got %d", viewDetails+1, len(viewNames))
	}
	for i, name := range viewNames {
		if name == "" {
			t.Fatalf("view %d has empty name", i)
		}
	}
}

// ============================================================
// Pets view
// ============================================================

func TestPetsRefresh(t *testing.T) {
	s := newTestStore(t)
	addPet(t, s, "Tom", store.SpeciesCat)

	pm := newPetsModel(s)
	pm, _ = pm.update(pm.refresh()())
	if len(pm.pets) != 1 || pm.pets[0].Name != "Tom" {
		t.Fatalf("pets = %+v", pm.pets)
	}
}

func TestPetsNewOpensForm(t *testing.T) {
	s := newTestStore(t)
	pm := newPetsModel(s)

	pm, _ = pm.update(runeKey("n"))
	if !pm.formActive || pm.form == nil {
		t.Fatal("n should open the pet form")
	}

	pm, _ = pm.update(tea.KeyMsg{Type: tea.KeyEsc})
	if pm.formActive {
		t.Fatal("esc should close the form")
	}
}

func TestPetsFormInput(t *testing.T) {
	s := newTestStore(t)
	pm := newPetsModel(s)
	pm, _ = pm.showNewPetForm()

	*pm.formName = "Rex"
	*pm.formAge = "4"
	*pm.formWeight = "20kg"
	*pm.formGender = store.GenderBoy
	*pm.formSpecies = store.SpeciesDog
	*pm.formBreed = "Boxer"

	want := store.PetInput{Name: "Rex", Age: "4", Weight: "20kg", Gender: store.GenderBoy, Species: store.SpeciesDog, Breed: "Boxer"}
	if got := pm.formInput(); got != want {
		t.Fatalf("formInput = %+v", got)
	}
}

func TestPetsDelete(t *testing.T) {
	s := newTestStore(t)
	addPet(t, s, "Tom", store.SpeciesCat)
	app := sizedApp(t, s)

	app = press(app, runeKey("2"))
	app = press(app, runeKey("d"))

	if len(s.Pets.List()) != 0 {
		t.Fatal("d should delete the selected pet")
	}
	if len(app.pets.pets) != 0 {
		t.Fatal("view should refresh after delete")
	}
	if !strings.Contains(app.status, "Deleted Tom") {
		t.Fatalf("status = %q", app.status)
	}
}

// ============================================================
// Todos view
// ============================================================

func TestTodosToggle(t *testing.T) {
	s := newTestStore(t)
	addTodo(t, s, "Feed", "Tom")
	app := sizedApp(t, s)

	app = press(app, runeKey("3"))
	app = press(app, runeKey(" "))

	if !s.Todos.List()[0].Completed {
		t.Fatal("space should complete the selected to-do")
	}
	if !app.todos.todos[0].Completed {
		t.Fatal("view should show the completed to-do")
	}

	app = press(app, tea.KeyMsg{Type: tea.KeyEnter})
	if s.Todos.List()[0].Completed {
		t.Fatal("enter should reopen the to-do")
	}
	if !strings.Contains(app.status, "Reopened Feed") {
		t.Fatalf("status = %q", app.status)
	}
}

func TestTodosDelete(t *testing.T) {
	s := newTestStore(t)
	addTodo(t, s, "Feed", "Tom")
	addTodo(t, s, "Walk", "Rex")
	app := sizedApp(t, s)

	app = press(app, runeKey("3"))
	app = press(app, runeKey("j"))
	app = press(app, runeKey("d"))

	todos := s.Todos.List()
	if len(todos) != 1 || todos[0].Description != "Feed" {
		t.Fatalf("todos = %+v", todos)
	}
	if app.todos.cursor != 0 {
		t.Fatalf("cursor should clamp to 0, got %d", app.todos.cursor)
	}
}

func TestTodosFormSuggestsPets(t *testing.T) {
	s := newTestStore(t)
	addPet(t, s, "Tom", store.SpeciesCat)

	m := newTodosModel(s)
	m, _ = m.update(m.refresh()())
	if len(m.petNames) != 1 || m.petNames[0] != "Tom" {
		t.Fatalf("petNames = %v", m.petNames)
	}

	m, _ = m.update(runeKey("n"))
	if !m.formActive {
		t.Fatal("n should open the to-do form")
	}
	if *m.formImportance != store.DefaultImportance {
		t.Fatalf("importance should default to %s", store.DefaultImportance)
	}
}

func TestTodosOpenCount(t *testing.T) {
	m := todosModel{todos: []store.Todo{{Completed: true}, {}, {}}}
	if m.openCount() != 2 {
		t.Fatalf("openCount = %d", m.openCount())
	}
}

// ============================================================
// Agenda view
// ============================================================

func TestAgendaNavigation(t *testing.T) {
	s := newTestStore(t)
	am := newAgendaModel(s)
	start := am.selected

	am, _ = am.update(tea.KeyMsg{Type: tea.KeyRight})
	if !am.selected.Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("right should move one day forward, got %s", am.selectedKey())
	}
	am, _ = am.update(runeKey("h"))
	am, _ = am.update(runeKey("h"))
	if !am.selected.Equal(start.AddDate(0, 0, -1)) {
		t.Fatalf("h should move one day back, got %s", am.selectedKey())
	}
	am, _ = am.update(runeKey("t"))
	if !am.selected.Equal(dayStart(time.Now())) {
		t.Fatal("t should return to today")
	}
}

func TestAgendaDeleteSelectedItem(t *testing.T) {
	s := newTestStore(t)
	day := time.Now().AddDate(0, 0, 2)
	key := day.Format(store.DayLayout)
	ctx := context.Background()
	s.Agenda.AddItem(ctx, key, "Vet")
	s.Agenda.AddItem(ctx, key, "Groom")

	app := sizedApp(t, s)
	app = press(app, runeKey("4"))
	app.agenda = app.agenda.moveTo(day)

	app = press(app, runeKey("j"))
	app = press(app, runeKey("d"))

	items := s.Agenda.Day(key)
	if len(items) != 1 || items[0].Name != "Vet" {
		t.Fatalf("items = %+v", items)
	}

	app = press(app, runeKey("d"))
	if _, ok := s.Agenda.Items()[key]; ok {
		t.Fatal("deleting the last item should remove the day")
	}
	if len(app.agenda.dayItems()) != 0 {
		t.Fatal("view should show an empty day")
	}
}

func TestAgendaDeleteTwiceBeforeReload(t *testing.T) {
	s := newTestStore(t)
	day := time.Now().AddDate(0, 0, 1)
	key := day.Format(store.DayLayout)
	ctx := context.Background()
	for _, name := range []string{"Vet", "Groom", "Bath"} {
		if _, err := s.Agenda.AddItem(ctx, key, name); err != nil {
			t.Fatal(err)
		}
	}

	am := newAgendaModel(s)
	am, _ = am.update(am.refresh()())
	am = am.moveTo(day)
	am, _ = am.update(runeKey("j"))
	am, _ = am.update(runeKey("j"))

	am, first := am.update(runeKey("d"))
	items := am.dayItems()
	if len(items) != 2 || items[am.cursor].Name != "Groom" {
		t.Fatalf("after one delete the cursor should sit on Groom, got %+v at %d", items, am.cursor)
	}
	am, second := am.update(runeKey("d"))
	if len(am.dayItems()) != 1 {
		t.Fatalf("local items = %+v", am.dayItems())
	}

	// the commands may finish in either order
	for _, cmd := range []tea.Cmd{second, first} {
		msg, ok := cmd().(savedMsg)
		if !ok || msg.err != nil {
			t.Fatalf("delete = %+v", msg)
		}
	}

	remaining := s.Agenda.Day(key)
	if len(remaining) != 1 || remaining[0].Name != "Vet" {
		t.Fatalf("only Vet should remain, got %+v", remaining)
	}
}

func TestAgendaDeleteLastLocalItem(t *testing.T) {
	s := newTestStore(t)
	day := time.Now().AddDate(0, 0, 1)
	key := day.Format(store.DayLayout)
	s.Agenda.AddItem(context.Background(), key, "Vet")

	am := newAgendaModel(s)
	am, _ = am.update(am.refresh()())
	am = am.moveTo(day)

	am, cmd := am.update(runeKey("d"))
	if _, ok := am.items[key]; ok || am.cursor != 0 {
		t.Fatal("emptied day should leave the local copy")
	}
	am, again := am.update(runeKey("d"))
	if again != nil {
		t.Fatal("d on an empty day should do nothing")
	}
	if msg := cmd().(savedMsg); msg.err != nil {
		t.Fatal(msg.err)
	}
	if len(s.Agenda.Items()) != 0 {
		t.Fatalf("agenda = %+v", s.Agenda.Items())
	}
}

func TestAgendaWindowDoesNotPersistPlaceholders(t *testing.T) {
	s := newTestStore(t)
	am := newAgendaModel(s)
	am, _ = am.update(am.refresh()())

	days := am.window()
	if len(days) != store.WindowDaysBefore+store.WindowDaysAfter {
		t.Fatalf("window has %d days", len(days))
	}
	if days[store.WindowDaysBefore].Date != am.selectedKey() {
		t.Fatal("window should be centred on the selected day")
	}
	if len(s.Agenda.Items()) != 0 {
		t.Fatal("rendering the window must not add days to the agenda")
	}

	am.width = 120
	if out := am.view(); !strings.Contains(out, "empty day") {
		t.Fatal("empty day hint missing")
	}
}

func TestAgendaNewOpensForm(t *testing.T) {
	s := newTestStore(t)
	am := newAgendaModel(s)
	am, _ = am.update(runeKey("n"))
	if !am.formActive {
		t.Fatal("n should open the appointment form")
	}
}

// ============================================================
// Details view
// ============================================================

func TestDetailsSelectAndFilter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	addPet(t, s, "Tom", store.SpeciesCat)
	addPet(t, s, "Rex", store.SpeciesDog)
	a := addTodo(t, s, "Feed", "Tom")
	b := addTodo(t, s, "Walk", "Rex")
	s.Todos.Toggle(ctx, a.ID)
	s.Todos.Toggle(ctx, b.ID)

	dm := newDetailsModel(s)
	dm.setSize(120, 40)
	dm, _ = dm.update(dm.refresh()())

	if _, ok := dm.selectedPet(); ok {
		t.Fatal("no pet should be selected initially")
	}
	dm, _ = dm.update(tea.KeyMsg{Type: tea.KeyEnter})
	pet, ok := dm.selectedPet()
	if !ok || pet.Name != "Tom" {
		t.Fatalf("selected = %+v, %v", pet, ok)
	}

	if dm.trend.Total() != 2 {
		t.Fatalf("chart should count all to-dos by default, got %d", dm.trend.Total())
	}

	dm, _ = dm.update(runeKey("f"))
	if !dm.petOnly || dm.trend.Total() != 1 {
		t.Fatalf("filter should limit the chart to Tom, got %d", dm.trend.Total())
	}

	if out := dm.view(); !strings.Contains(out, "Tom") || !strings.Contains(out, "Breed") {
		t.Fatal("pet card missing")
	}

	dm, _ = dm.update(tea.KeyMsg{Type: tea.KeyEsc})
	if dm.selected {
		t.Fatal("esc should return to the pet list")
	}
}

func TestDetailsKeepsSelectionAcrossReload(t *testing.T) {
	s := newTestStore(t)
	tom := addPet(t, s, "Tom", store.SpeciesCat)
	addPet(t, s, "Rex", store.SpeciesDog)
	addPet(t, s, "Polly", store.SpeciesParrot)

	dm := newDetailsModel(s)
	dm.setSize(120, 40)
	dm, _ = dm.update(dm.refresh()())
	dm, _ = dm.update(runeKey("j"))
	dm, _ = dm.update(tea.KeyMsg{Type: tea.KeyEnter})

	if err := s.Pets.Delete(context.Background(), tom.ID); err != nil {
		t.Fatal(err)
	}
	dm, _ = dm.update(dm.refresh()())

	pet, ok := dm.selectedPet()
	if !ok || pet.Name != "Rex" {
		t.Fatalf("selection should follow Rex, got %+v, %v", pet, ok)
	}
	if dm.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", dm.cursor)
	}

	if err := s.Pets.Delete(context.Background(), pet.ID); err != nil {
		t.Fatal(err)
	}
	dm, _ = dm.update(dm.refresh()())
	if dm.selected {
		t.Fatal("deleting the selected pet should return to the list")
	}
}

func TestDetailsEmptyState(t *testing.T) {
	s := newTestStore(t)
	dm := newDetailsModel(s)
	dm.setSize(120, 40)
	dm, _ = dm.update(dm.refresh()())

	if out := dm.view(); !strings.Contains(out, "No pets yet") {
		t.Fatal("empty state should hint to add pets")
	}
	dm, _ = dm.update(tea.KeyMsg{Type: tea.KeyEnter})
	if dm.selected {
		t.Fatal("enter with no pets should do nothing")
	}
}

// ============================================================
// Home view
// ============================================================

func TestHomeSummary(t *testing.T) {
	s := newTestStore(t)
	addPet(t, s, "Tom", store.SpeciesCat)
	td := addTodo(t, s, "Feed", "Tom")
	addTodo(t, s, "Brush", "Tom")
	s.Todos.Toggle(context.Background(), td.ID)
	s.Agenda.AddItem(context.Background(), time.Now().Format(store.DayLayout), "Vet")

	hm := newHomeModel(s)
	hm.setSize(120, 40)
	hm, _ = hm.update(hm.refresh()())

	if len(hm.openTodos()) != 1 {
		t.Fatalf("open = %d", len(hm.openTodos()))
	}
	if len(hm.today) != 1 {
		t.Fatalf("today = %+v", hm.today)
	}
	if hm.doneToday != 1 {
		t.Fatalf("doneToday = %d, want 1", hm.doneToday)
	}
	out := hm.view()
	for _, want := range []string{"PETPAL", "1 pets", "Vet", "Brush"} {
		if !strings.Contains(out, want) {
			t.Errorf("home view missing %q", want)
		}
	}
}

// ============================================================
// App model
// ============================================================

func TestNewApp(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)

	if app.activeView != viewHome {
		t.Fatal("default view should be home")
	}
	if app.showHelp {
		t.Fatal("help should be hidden by default")
	}
	if app.exportPicking {
		t.Fatal("export picker should be hidden by default")
	}
	if app.isFormActive() {
		t.Fatal("no forms should be active initially")
	}
}

func TestAppInitLoadsStore(t *testing.T) {
	backend := kv.NewMemory()
	ctx := context.Background()
	backend.Set(ctx, store.KeyPets, `[{"id":1,"name":"Tom","age":"1","weight":"2","gender":"Boy","species":"Cat","breed":"x"}]`)
	s := store.New(backend, nil)

	app := NewApp(s)
	app = drain(app, app.Init())

	if len(app.pets.pets) != 1 {
		t.Fatalf("pets view should be filled on init, got %+v", app.pets.pets)
	}
	if app.status != "" {
		t.Fatalf("unexpected status %q", app.status)
	}
}

func TestAppInitLoadFailureAlerts(t *testing.T) {
	backend := kv.NewMemory()
	backend.Set(context.Background(), store.KeyTodos, `{broken`)
	s := store.New(backend, nil)

	app := NewApp(s)
	app = drain(app, app.Init())

	if app.statusOK || !strings.Contains(app.status, "Failed to load data") {
		t.Fatalf("status = %q", app.status)
	}
}

func TestAppSavedMsg(t *testing.T) {
	s := newTestStore(t)
	app := sizedApp(t, s)

	app = drain(app, func() tea.Msg { return savedMsg{text: "Added Tom"} })
	if app.status != "Added Tom" || !app.statusOK {
		t.Fatalf("status = %q ok=%v", app.status, app.statusOK)
	}

	app = drain(app, func() tea.Msg { return savedMsg{text: "Added Rex", err: errors.New("disk full")} })
	if app.statusOK || !strings.Contains(app.status, "disk full") {
		t.Fatalf("status = %q ok=%v", app.status, app.statusOK)
	}
}

func TestAppTabCycles(t *testing.T) {
	s := newTestStore(t)
	app := sizedApp(t, s)

	for i := 1; i <= len(viewNames); i++ {
		app = press(app, tea.KeyMsg{Type: tea.KeyTab})
		want := viewState(i % len(viewNames))
		if app.activeView != want {
			t.Fatalf("after %d tabs view = %d, want %d", i, app.activeView, want)
		}
	}
}

func TestAppViewStates(t *testing.T) {
	s := newTestStore(t)
	addPet(t, s, "Tom", store.SpeciesCat)
	addTodo(t, s, "Feed", "Tom")
	app := sizedApp(t, s)

	views := []viewState{viewHome, viewPets, viewTodos, viewAgenda, viewDetails}
	for _, v := range views {
		app.activeView = v
		if output := app.View(); output == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppRenderHeaderContainsAllTabs(t *testing.T) {
	s := newTestStore(t)
	app := sizedApp(t, s)

	header := app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestAppFooterShowsStatusAndOpenCount(t *testing.T) {
	s := newTestStore(t)
	addTodo(t, s, "Feed", "Tom")
	app := sizedApp(t, s)
	app.status = "test status"

	footer := app.renderFooter()
	if !strings.Contains(footer, "test status") {
		t.Fatal("footer should contain status message")
	}
	if !strings.Contains(footer, "1 open") {
		t.Fatal("footer should show open to-do count")
	}
}

func TestAppLoadingState(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)
	if output := app.View(); output != "Loading..." {
		t.Fatalf("expected 'Loading...', got %q", output)
	}
}

func TestAppExportPicker(t *testing.T) {
	s := newTestStore(t)
	app := sizedApp(t, s)

	app = press(app, runeKey("e"))
	if !app.exportPicking {
		t.Fatal("e should open the export picker")
	}
	app = press(app, runeKey("j"))
	if app.exportCursor != 1 {
		t.Fatalf("cursor = %d", app.exportCursor)
	}
	app = press(app, runeKey("j"))
	if app.exportCursor != 1 {
		t.Fatal("cursor should stop at the last format")
	}
	if !strings.Contains(app.View(), "JSON") {
		t.Fatal("picker should list JSON")
	}
	app = press(app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.exportPicking {
		t.Fatal("esc should close the picker")
	}
}

func TestAppExportWritesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := newTestStore(t)
	addTodo(t, s, "Feed", "Tom")
	app := sizedApp(t, s)

	app = press(app, runeKey("e"))
	app = press(app, tea.KeyMsg{Type: tea.KeyEnter})

	if !app.statusOK || !strings.Contains(app.status, "petpal-export-") || !strings.HasSuffix(app.status, ".csv") {
		t.Fatalf("status = %q", app.status)
	}
}

// ============================================================
// Key bindings
// ============================================================

func TestKeyMapShortHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
}

func TestKeyMapFullHelp(t *testing.T) {
	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("full help should have groups")
	}
	for i, g := range groups {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

// ============================================================
// Styles (smoke test, just verify they don't panic)
// ============================================================

func TestStylesRender(t *testing.T) {
	styles := []struct {
		name string
		fn   func() string
	}{
		{"activeTab", func() string { return activeTabStyle.Render("test") }},
		{"inactiveTab", func() string { return inactiveTabStyle.Render("test") }},
		{"panel", func() string { return panelStyle.Render("test") }},
		{"activePanel", func() string { return activePanelStyle.Render("test") }},
		{"banner", func() string { return bannerStyle.Render("test") }},
		{"title", func() string { return titleStyle.Render("test") }},
		{"subtitle", func() string { return subtitleStyle.Render("test") }},
		{"accent", func() string { return accentStyle.Render("test") }},
		{"success", func() string { return successStyle.Render("test") }},
		{"warning", func() string { return warningStyle.Render("test") }},
		{"error", func() string { return errorStyle.Render("test") }},
		{"muted", func() string { return mutedStyle.Render("test") }},
		{"highlight", func() string { return highlightStyle.Render("test") }},
		{"day", func() string { return dayStyle.Render("test") }},
		{"busyDay", func() string { return busyDayStyle.Render("test") }},
		{"selectedDay", func() string { return selectedDayStyle.Render("test") }},
		{"importance", func() string { return importanceStyle("Urgent").Render("test") }},
	}

	for _, s := range styles {
		if s.fn() == "" {
			t.Fatalf("style %q rendered empty", s.name)
		}
	}
}
