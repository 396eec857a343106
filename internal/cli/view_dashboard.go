package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nhb-tools/sitedesk/internal/cli/formatter"
	"github.com/nhb-tools/sitedesk/internal/service"
)

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	report *service.DashboardReport
	err    error
}

// backupDoneMsg reports the outcome of an export triggered from the TUI.
type backupDoneMsg struct {
	path string
	err  error
}

// dashboardView is the home screen of the TUI: the three summary stats and
// shortcuts into the other views.
type dashboardView struct {
	state   *SharedState
	report  *service.DashboardReport
	loading bool
	err     error
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state, loading: true}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "projects")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "expenses")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new project")),
		key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "backup")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadData()
}

func (v *dashboardView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		report, err := app.Reports.Dashboard(context.Background())
		return dashboardLoadedMsg{report: report, err: err}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		v.report = msg.report
		v.err = msg.err
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case backupDoneMsg:
		if msg.err != nil {
			return v, showError(msg.err)
		}
		return v, showStatus("Backup exported to " + msg.path)

	case tea.KeyMsg:
		switch msg.String() {
		case "p":
			return v, pushView(newProjectListView(v.state))
		case "e":
			return v, pushView(newExpenseListView(v.state))
		case "n":
			return v, pushView(newProjectWizard(v.state))
		case "b":
			return v, v.exportBackup()
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}
	return v, nil
}

func (v *dashboardView) exportBackup() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		path, err := app.Backups.ExportToDir(context.Background(), ".")
		return backupDoneMsg{path: path, err: err}
	}
}

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...") + "\n"
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + formatter.Header("Overview") + "\n\n")
	b.WriteString(statLine("Active Projects", fmt.Sprintf("%d", v.report.ActiveProjects)))
	b.WriteString(statLine("Total Revenue", formatter.Money(v.report.Revenue)))
	b.WriteString(statLine("Upcoming Deadlines", fmt.Sprintf("%d", v.report.UpcomingDeadlines)))
	return b.String()
}

func statLine(label, value string) string {
	return fmt.Sprintf("  %s %s\n", formatter.Dim(fmt.Sprintf("%-20s", label)), formatter.Bold(value))
}
