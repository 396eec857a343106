package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nhb-tools/sitedesk/internal/cli/formatter"
	"github.com/nhb-tools/sitedesk/internal/domain"
)

// projectsLoadedMsg signals that project list data has been loaded.
type projectsLoadedMsg struct {
	projects []domain.Project
	err      error
}

// invoiceDoneMsg reports the outcome of invoice generation.
type invoiceDoneMsg struct {
	path string
	err  error
}

// projectListView shows one summary card per project with task, invoice,
// and delete actions.
type projectListView struct {
	state    *SharedState
	projects []domain.Project
	cursor   int
	loading  bool
	err      error
}

func newProjectListView(state *SharedState) *projectListView {
	return &projectListView{state: state, loading: true}
}

func (v *projectListView) ID() ViewID    { return ViewProjectList }
func (v *projectListView) Title() string { return "Projects" }

func (v *projectListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "tasks")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "invoice")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *projectListView) Init() tea.Cmd {
	return v.loadProjects()
}

func (v *projectListView) loadProjects() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		projects, err := app.Projects.List(context.Background())
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

func (v *projectListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.projects = msg.projects
		if v.cursor >= len(v.projects) && len(v.projects) > 0 {
			v.cursor = len(v.projects) - 1
		}
		return v, nil

	case refreshViewMsg:
		return v, v.loadProjects()

	case invoiceDoneMsg:
		if msg.err != nil {
			return v, showError(msg.err)
		}
		return v, showStatus("Invoice written to " + msg.path)

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.projects)-1 {
				v.cursor++
			}
		case "enter", "t":
			if p := v.selected(); p != nil {
				v.state.SetActiveProject(p.ID, p.Name)
				return v, pushView(newTaskPanelView(v.state))
			}
		case "n":
			return v, pushView(newProjectWizard(v.state))
		case "i":
			if p := v.selected(); p != nil {
				return v, v.generateInvoice(p.ID)
			}
		case "x":
			if p := v.selected(); p != nil {
				return v, pushView(v.confirmDelete(*p))
			}
		case "r":
			v.loading = true
			return v, v.loadProjects()
		}
	}
	return v, nil
}

func (v *projectListView) selected() *domain.Project {
	if v.cursor < len(v.projects) {
		return &v.projects[v.cursor]
	}
	return nil
}

func (v *projectListView) generateInvoice(projectID string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		path, err := generateInvoice(context.Background(), app, projectID)
		return invoiceDoneMsg{path: path, err: err}
	}
}

func (v *projectListView) confirmDelete(p domain.Project) View {
	app := v.state.App
	onYes := func() tea.Cmd {
		return func() tea.Msg {
			if err := app.Projects.Delete(context.Background(), p.ID); err != nil {
				return statusLineMsg{text: "Error: " + err.Error(), isErr: true}
			}
			return tea.BatchMsg{refreshViews(), showStatus("Deleted project " + p.Name)}
		}
	}
	prompt := fmt.Sprintf("Are you sure you want to delete %s?", p.Name)
	return newConfirmWizard(v.state, "Delete Project", prompt, onYes)
}

func (v *projectListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...") + "\n"
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n"
	}
	if len(v.projects) == 0 {
		return emptyStateLine("No projects found. Create one to get started!")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, p := range v.projects {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleHeader.Render("❯ ")
		}

		name := formatter.Bold(p.Name)
		if i == v.cursor {
			name = formatter.StyleHeader.Render(p.Name)
		}

		progress := float64(p.Status.Progress()) / 100
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, name, formatter.StatusBadge(p.Status)))
		b.WriteString(fmt.Sprintf("    %s %s   %s %s\n",
			formatter.Dim("Client:"), p.Client,
			formatter.Dim("Budget:"), formatter.Money(p.Budget)))
		b.WriteString(fmt.Sprintf("    %s\n\n", formatter.RenderProgress(progress, 24)))
	}
	return b.String()
}
