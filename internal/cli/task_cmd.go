package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/nhb-tools/sitedesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage a project's tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskToggleCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <project> <text>...",
		Short: "Add a task to a project",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			t, err := app.Tasks.Add(ctx, p.ID, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Printf("Added task to %s: %s\n", p.Name, t.Text)
			return nil
		},
	}
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <project>",
		Short: "List a project's tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			tasks, err := app.Tasks.ListByProject(ctx, p.ID)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks yet.")
				return nil
			}

			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				check := "[ ]"
				if t.Completed {
					check = "[x]"
				}
				rows = append(rows, []string{shortID(t.ID), check, t.Text})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "Done", "Task"}, rows))
			return nil
		},
	}
}

func newTaskToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Toggle a task's completed flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			return app.Tasks.Toggle(ctx, id)
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			ok, err := confirmDestructive("Delete this task?", yes)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}

			if err := app.Tasks.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Task deleted")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

// resolveTaskID resolves an exact task id or a unique prefix across all
// projects.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, p := range projects {
		tasks, err := app.Tasks.ListByProject(ctx, p.ID)
		if err != nil {
			return "", err
		}
		for _, t := range tasks {
			if t.ID == input {
				return t.ID, nil
			}
			if strings.HasPrefix(t.ID, input) {
				matches = append(matches, t.ID)
			}
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task id prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
