package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/goaltrack/internal/cli/formatter"
	"github.com/alexanderramin/goaltrack/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// goaltrackHuhTheme returns a huh theme using the formatter palette.
func goaltrackHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
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

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// goalFormValues holds the raw strings collected by goalForm.
type goalFormValues struct {
	title       string
	description string
	target      string
	start       string
	end         string
	tags        string
}

// goalForm collects the fields of a new goal. start is pre-filled.
func goalForm(v *goalFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Spanish practice").
				Value(&v.title).
				Validate(validateRequired("title")),
			huh.NewText().
				Title("Description").
				Value(&v.description),
			huh.NewInput().
				Title("Target Minutes per Day").
				Placeholder("30").
				Value(&v.target).
				Validate(validatePositiveInt),
		),
		huh.NewGroup(
			dateInput("Start Date (YYYY-MM-DD)", v.start, &v.start),
			dateInput("End Date (YYYY-MM-DD, blank for open-ended)", "", &v.end),
			huh.NewInput().
				Title("Tags").
				Description("Comma separated").
				Value(&v.tags),
		),
	).WithTheme(goaltrackHuhTheme()).WithShowHelp(false)
}

// apply copies the collected values onto g.
func (v goalFormValues) apply(g *domain.Goal) error {
	g.Title = strings.TrimSpace(v.title)
	g.Description = strings.TrimSpace(v.description)
	if v.target != "" {
		n, err := strconv.Atoi(v.target)
		if err != nil {
			return fmt.Errorf("invalid target %q", v.target)
		}
		g.TargetMinutesPerDay = n
	}
	if v.start != "" {
		start, err := domain.ParseDay(v.start)
		if err != nil {
			return err
		}
		g.StartDate = start
	}
	if v.end != "" {
		end, err := domain.ParseDay(v.end)
		if err != nil {
			return err
		}
		g.EndDate = &end
	}
	if v.tags != "" {
		g.Tags = strings.Split(v.tags, ",")
	}
	return nil
}

// dateInput returns a huh.Input for an optional date field with YYYY-MM-DD validation.
func dateInput(title, placeholder string, value *string) *huh.Input {
	if placeholder == "" {
		placeholder = "2025-06-30"
	}
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateOptionalDate)
}

// confirmForm creates a huh form for a yes/no confirmation.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(goaltrackHuhTheme()).WithShowHelp(false)
}

// confirmRemoval asks before a destructive command unless --yes was given.
func confirmRemoval(a *App, yes bool, what string) (bool, error) {
	if yes {
		return true, nil
	}
	if !a.interactive() {
		return false, fmt.Errorf("refusing to remove %s without --yes", what)
	}
	var ok bool
	if err := confirmForm(fmt.Sprintf("Remove %s?", what), &ok).Run(); err != nil {
		return false, err
	}
	return ok, nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
