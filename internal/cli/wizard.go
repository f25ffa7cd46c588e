package cli

import (
	"errors"
	"slices"
	"strings"

	"github.com/alexanderramin/zeitrechner/internal/cli/formatter"
	"github.com/alexanderramin/zeitrechner/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// zeitrechnerHuhTheme returns a huh theme using the formatter palette.
func zeitrechnerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateOptionalClock accepts an empty value or anything that parses as
// HH:MM.
func validateOptionalClock(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, ok := domain.ParseTimeOfDay(s); !ok {
		return errors.New("erwartet HH:MM")
	}
	return nil
}

// durationOptions lists the preset durations and keeps a stored value that
// is not one of them selectable.
func durationOptions(presets []string, current string) []huh.Option[string] {
	values := slices.Clone(presets)
	if current != "" && !slices.Contains(values, current) {
		values = append(values, current)
		slices.Sort(values)
	}
	return huh.NewOptions(values...)
}

// inputsForm edits the three session inputs in place.
func inputsForm(in *domain.SessionInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Arbeitsbeginn").
				Description("HH:MM, leer laesst den gespeicherten Wert").
				Placeholder("08:00").
				Value(&in.Start).
				Validate(validateOptionalClock),
			huh.NewSelect[string]().
				Title("Pause").
				Options(durationOptions(domain.BreakOptions, in.Break)...).
				Value(&in.Break),
			huh.NewSelect[string]().
				Title("Sollzeit").
				Options(durationOptions(domain.TargetOptions, in.Target)...).
				Value(&in.Target),
		),
	).WithTheme(zeitrechnerHuhTheme()).WithShowHelp(false)
}

// newInputsWizard opens the input form prefilled with current. On completion
// the trimmed inputs are handed to save.
func newInputsWizard(state *SharedState, current domain.SessionInput, save func(domain.SessionInput) tea.Cmd) *wizardView {
	values := current
	done := func() tea.Cmd {
		values.Start = strings.TrimSpace(values.Start)
		return save(values)
	}
	return newWizardView(state, "Eingaben", inputsForm(&values), done)
}
