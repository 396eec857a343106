package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/nhb-tools/sitedesk/internal/cli/formatter"
	"github.com/nhb-tools/sitedesk/internal/domain"
	"github.com/nhb-tools/sitedesk/internal/service"
)

// ── validators ───────────────────────────────────────────────────────────────

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateMoney enforces the numeric guard at the form level, so a bad
// budget or amount never reaches the creation operation.
func validateMoney(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("enter an amount")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

// ── creation wizards ─────────────────────────────────────────────────────────

func statusOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption(string(domain.StatusPlanning), string(domain.StatusPlanning)),
		huh.NewOption(string(domain.StatusInProgress), string(domain.StatusInProgress)),
		huh.NewOption(string(domain.StatusCompleted), string(domain.StatusCompleted)),
	}
}

// newProjectWizard returns the project-creation form view. On completion it
// creates the project and broadcasts a refresh so the dashboard and project
// list re-render.
func newProjectWizard(state *SharedState) View {
	in := &service.CreateProjectInput{Status: string(domain.StatusPlanning)}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Value(&in.Name).
				Validate(validateRequired("project name")),
			huh.NewInput().
				Title("Client").
				Value(&in.Client).
				Validate(validateRequired("client")),
			huh.NewInput().
				Title("Budget").
				Placeholder("5000").
				Value(&in.Budget).
				Validate(validateMoney),
			huh.NewSelect[string]().
				Title("Status").
				Options(statusOptions()...).
				Value(&in.Status),
		),
	).WithTheme(sitedeskHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			p, err := state.App.Projects.Create(context.Background(), *in)
			if err != nil {
				return statusLineMsg{text: "Error: " + err.Error(), isErr: true}
			}
			return tea.BatchMsg{refreshViews(), showStatus(fmt.Sprintf("Created project %s", p.Name))}
		}
	}

	return newWizardView(state, "New Project", form, done)
}

// newExpenseWizard returns the expense-creation form view. The project field
// is a select over the existing projects; nil is returned when there are
// none to choose from.
func newExpenseWizard(state *SharedState) View {
	projects, err := state.App.Projects.List(context.Background())
	if err != nil || len(projects) == 0 {
		return nil
	}

	options := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		options = append(options, huh.NewOption(p.Name, p.ID))
	}

	in := &service.CreateExpenseInput{Date: time.Now().Format(domain.DateLayout)}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Project").
				Options(options...).
				Value(&in.ProjectID),
			huh.NewInput().
				Title("Description").
				Value(&in.Description).
				Validate(validateRequired("description")),
			huh.NewInput().
				Title("Amount").
				Placeholder("250").
				Value(&in.Amount).
				Validate(validateMoney),
			huh.NewInput().
				Title("Date").
				Placeholder(time.Now().Format(domain.DateLayout)).
				Value(&in.Date).
				Validate(validateDate),
		),
	).WithTheme(sitedeskHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			if _, err := state.App.Expenses.Create(context.Background(), *in); err != nil {
				return statusLineMsg{text: "Error: " + err.Error(), isErr: true}
			}
			return tea.BatchMsg{refreshViews(), showStatus("Expense logged")}
		}
	}

	return newWizardView(state, "New Expense", form, done)
}

// newTaskWizard returns the task-entry form for the current task context.
func newTaskWizard(state *SharedState) View {
	var text string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("New task for %s", state.ActiveProjectName)).
				Value(&text).
				Validate(validateRequired("task text")),
		),
	).WithTheme(sitedeskHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		projectID := state.ActiveProjectID
		return func() tea.Msg {
			if _, err := state.App.Tasks.Add(context.Background(), projectID, text); err != nil {
				return statusLineMsg{text: "Error: " + err.Error(), isErr: true}
			}
			return tea.BatchMsg{refreshViews()}
		}
	}

	return newWizardView(state, "Add Task", form, done)
}

// ── confirmation ─────────────────────────────────────────────────────────────

// newConfirmWizard shows a yes/no form before a destructive action.
// Declining pops the wizard with no state change and no message.
func newConfirmWizard(state *SharedState, title, prompt string, onYes func() tea.Cmd) View {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(sitedeskHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		if !confirmed {
			return nil
		}
		return onYes()
	}

	return newWizardView(state, title, form, done)
}

// emptyStateLine renders the muted empty-collection message used by views.
func emptyStateLine(text string) string {
	return "\n  " + formatter.Dim(text) + "\n"
}
