package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewDashboard ViewID = iota
	ViewProjectList
	ViewExpenseList
	ViewTaskPanel
	ViewForm
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// ── navigation messages ──────────────────────────────────────────────────────

// pushViewMsg pushes a view onto the stack.
type pushViewMsg struct{ view View }

// refreshViewMsg tells every view on the stack to reload its data.
// Sent after any mutation so affected views re-render from current state.
type refreshViewMsg struct{}

// statusLineMsg shows a transient message in the footer.
type statusLineMsg struct {
	text  string
	isErr bool
}

// wizardDoneMsg pops the wizard and runs the follow-up command.
type wizardDoneMsg struct{ next tea.Cmd }

// wizardCancelMsg pops the wizard with no state change and no message.
type wizardCancelMsg struct{}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

func showStatus(text string) tea.Cmd {
	return func() tea.Msg { return statusLineMsg{text: text} }
}

func showError(err error) tea.Cmd {
	return func() tea.Msg { return statusLineMsg{text: "Error: " + err.Error(), isErr: true} }
}
