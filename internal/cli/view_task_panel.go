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

// tasksLoadedMsg signals that task panel data has been loaded.
type tasksLoadedMsg struct {
	tasks []domain.Task
	err   error
}

// taskPanelView lists the open project's tasks with toggle and delete
// controls. The project comes from the shared task context.
type taskPanelView struct {
	state   *SharedState
	tasks   []domain.Task
	cursor  int
	loading bool
	err     error
}

func newTaskPanelView(state *SharedState) *taskPanelView {
	return &taskPanelView{state: state, loading: true}
}

func (v *taskPanelView) ID() ViewID { return ViewTaskPanel }
func (v *taskPanelView) Title() string {
	if v.state.ActiveProjectName != "" {
		return "Tasks: " + v.state.ActiveProjectName
	}
	return "Tasks"
}

func (v *taskPanelView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *taskPanelView) Init() tea.Cmd {
	return v.loadTasks()
}

func (v *taskPanelView) loadTasks() tea.Cmd {
	app := v.state.App
	projectID := v.state.ActiveProjectID
	return func() tea.Msg {
		tasks, err := app.Tasks.ListByProject(context.Background(), projectID)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (v *taskPanelView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.tasks = msg.tasks
		if v.cursor >= len(v.tasks) && len(v.tasks) > 0 {
			v.cursor = len(v.tasks) - 1
		}
		return v, nil

	case refreshViewMsg:
		return v, v.loadTasks()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.tasks)-1 {
				v.cursor++
			}
		case " ":
			if t := v.selected(); t != nil {
				return v, v.toggle(t.ID)
			}
		case "a":
			return v, pushView(newTaskWizard(v.state))
		case "x":
			if t := v.selected(); t != nil {
				return v, pushView(v.confirmDelete(*t))
			}
		case "r":
			v.loading = true
			return v, v.loadTasks()
		}
	}
	return v, nil
}

func (v *taskPanelView) selected() *domain.Task {
	if v.cursor < len(v.tasks) {
		return &v.tasks[v.cursor]
	}
	return nil
}

func (v *taskPanelView) toggle(id string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		if err := app.Tasks.Toggle(context.Background(), id); err != nil {
			return statusLineMsg{text: "Error: " + err.Error(), isErr: true}
		}
		return refreshViewMsg{}
	}
}

func (v *taskPanelView) confirmDelete(t domain.Task) View {
	app := v.state.App
	onYes := func() tea.Cmd {
		return func() tea.Msg {
			if err := app.Tasks.Delete(context.Background(), t.ID); err != nil {
				return statusLineMsg{text: "Error: " + err.Error(), isErr: true}
			}
			return tea.BatchMsg{refreshViews()}
		}
	}
	return newConfirmWizard(v.state, "Delete Task", "Delete this task?", onYes)
}

func (v *taskPanelView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...") + "\n"
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n"
	}
	if len(v.tasks) == 0 {
		return emptyStateLine("No tasks yet.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, t := range v.tasks {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleHeader.Render("❯ ")
		}

		check := "[ ]"
		text := t.Text
		if t.Completed {
			check = formatter.StyleGreen.Render("[✓]")
			text = formatter.Dim(t.Text)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, check, text))
	}
	return b.String()
}
