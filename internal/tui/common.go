package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/petpal/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewHome viewState = iota
	viewPets
	viewTodos
	viewAgenda
	viewDetails
)

var viewNames = []string{"Home", "Pets", "Todos", "Agenda", "Details"}

// storeTimeout bounds a single load or save issued from the UI.
const storeTimeout = 5 * time.Second

// --- Messages ---

type storeLoadedMsg struct {
	err error
}

// savedMsg reports a finished mutation. The in-memory collections change even
// when err is set, so views refresh either way.
type savedMsg struct {
	text string
	err  error
}

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func storeCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), storeTimeout)
}

// mutate runs fn against the store off the update loop and reports the
// outcome as a savedMsg.
func mutate(text string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := storeCtx()
		defer cancel()
		return savedMsg{text: text, err: fn(ctx)}
	}
}

var speciesGlyphs = map[store.Species]string{
	store.SpeciesCat:     "🐱",
	store.SpeciesDog:     "🐶",
	store.SpeciesParrot:  "🦜",
	store.SpeciesHamster: "🐹",
	store.SpeciesFish:    "🐟",
	store.SpeciesTurtle:  "🐢",
	store.SpeciesSnake:   "🐍",
}

const pawGlyph = "🐾"

func speciesGlyph(s store.Species) string {
	if g, ok := speciesGlyphs[s]; ok {
		return g
	}
	return pawGlyph
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	return max(0, cursor)
}

func checkMark(done bool) string {
	if done {
		return successStyle.Render("[x]")
	}
	return mutedStyle.Render("[ ]")
}
