package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "sitedesk" command and registers all
// subcommands against the provided App. With no subcommand and an
// interactive terminal, it launches the TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "sitedesk",
		Short:        "Construction business manager",
		Long:         "sitedesk tracks projects, expenses, and tasks for a small construction business,\nall in a local store. Run without arguments for the interactive UI.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return RunTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newDashboardCmd(app),
		newProjectCmd(app),
		newExpenseCmd(app),
		newTaskCmd(app),
		newBackupCmd(app),
		newInvoiceCmd(app),
	)

	return root
}

// RunTUI starts the interactive terminal UI.
func RunTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
