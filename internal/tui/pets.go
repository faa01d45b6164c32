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

type petsModel struct {
	store  *store.Store
	width  int
	height int

	pets   []store.Pet
	cursor int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formName    *string
	formAge     *string
	formWeight  *string
	formGender  *store.Gender
	formSpecies *store.Species
	formBreed   *string
}

func newPetsModel(s *store.Store) petsModel {
	name, age, weight, breed := "", "", "", ""
	gender, species := store.GenderGirl, store.SpeciesCat
	return petsModel{
		store:       s,
		formName:    &name,
		formAge:     &age,
		formWeight:  &weight,
		formGender:  &gender,
		formSpecies: &species,
		formBreed:   &breed,
	}
}

func (p *petsModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

type petsDataMsg struct {
	pets []store.Pet
}

func (p petsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return petsDataMsg{pets: p.store.Pets.List()}
	}
}

func (p petsModel) update(msg tea.Msg) (petsModel, tea.Cmd) {
	if p.formActive && p.form != nil {
		return p.updateForm(msg)
	}

	switch msg := msg.(type) {
	case petsDataMsg:
		p.pets = msg.pets
		p.cursor = clampCursor(p.cursor, len(p.pets))
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, keys.Down):
			if p.cursor < len(p.pets)-1 {
				p.cursor++
			}
		case key.Matches(msg, keys.New):
			return p.showNewPetForm()
		case key.Matches(msg, keys.Delete):
			if len(p.pets) > 0 {
				pet := p.pets[p.cursor]
				return p, mutate("Deleted "+pet.Name, func(ctx context.Context) error {
					return p.store.Pets.Delete(ctx, pet.ID)
				})
			}
		}
	}
	return p, nil
}

func (p petsModel) showNewPetForm() (petsModel, tea.Cmd) {
	*p.formName = ""
	*p.formAge = ""
	*p.formWeight = ""
	*p.formGender = store.GenderGirl
	*p.formSpecies = store.SpeciesCat
	*p.formBreed = ""

	genderOptions := make([]huh.Option[store.Gender], len(store.Genders))
	for i, g := range store.Genders {
		genderOptions[i] = huh.NewOption(string(g), g)
	}
	speciesOptions := make([]huh.Option[store.Species], len(store.AllSpecies))
	for i, s := range store.AllSpecies {
		speciesOptions[i] = huh.NewOption(speciesGlyph(s)+" "+string(s), s)
	}

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(p.formName).Validate(huh.ValidateNotEmpty()),
			huh.NewInput().Title("Age").Value(p.formAge).Validate(huh.ValidateNotEmpty()),
			huh.NewInput().Title("Weight").Value(p.formWeight).Validate(huh.ValidateNotEmpty()),
			huh.NewSelect[store.Gender]().Title("Gender").Options(genderOptions...).Value(p.formGender),
			huh.NewSelect[store.Species]().Title("Species").Options(speciesOptions...).Value(p.formSpecies),
			huh.NewInput().Title("Breed").Value(p.formBreed).Validate(huh.ValidateNotEmpty()),
		),
	).WithShowHelp(true).WithShowErrors(true)

	p.formActive = true
	return p, p.form.Init()
}

func (p petsModel) formInput() store.PetInput {
	return store.PetInput{
		Name:    *p.formName,
		Age:     *p.formAge,
		Weight:  *p.formWeight,
		Gender:  *p.formGender,
		Species: *p.formSpecies,
		Breed:   *p.formBreed,
	}
}

func (p petsModel) updateForm(msg tea.Msg) (petsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			p.formActive = false
			p.form = nil
			return p, nil
		}
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State == huh.StateCompleted {
		p.formActive = false
		p.form = nil
		in := p.formInput()
		return p, mutate("Added "+strings.TrimSpace(in.Name), func(ctx context.Context) error {
			_, err := p.store.Pets.Add(ctx, in)
			return err
		})
	}

	return p, cmd
}

func (p petsModel) view() string {
	w := p.width - 4
	if p.formActive && p.form != nil {
		content := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("New Pet"), "", p.form.View())
		return panelStyle.Width(w).Render(content)
	}

	title := titleStyle.Render("Pets")
	if len(p.pets) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No pets yet. Press n to add one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-3s %-18s %-8s %-8s %-8s %-8s %s", "", "Name", "Species", "Gender", "Age", "Weight", "Breed")))

	for i, pet := range p.pets {
		cursor := "  "
		style := normalItemStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		row := fmt.Sprintf("%s%s %-18s %-8s %-8s %-8s %-8s %s",
			cursor, speciesGlyph(pet.Species),
			truncate(pet.Name, 18), pet.Species, pet.Gender,
			truncate(pet.Age, 8), truncate(pet.Weight, 8), pet.Breed,
		)
		rows = append(rows, style.Render(row))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
