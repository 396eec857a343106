package cli

import (
	"context"
	"fmt"

	"github.com/nhb-tools/sitedesk/internal/cli/formatter"
	"github.com/nhb-tools/sitedesk/internal/domain"
	"github.com/nhb-tools/sitedesk/internal/service"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, client, budget string
	status := statusValue(domain.StatusPlanning)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Create(context.Background(), service.CreateProjectInput{
				Name:   name,
				Client: client,
				Budget: budget,
				Status: string(status),
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created project %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&budget, "budget", "", "Project budget (number)")
	cmd.Flags().Var(&status, "status", `Project status (default "Planning")`)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("budget")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found. Create one to get started!")
				return nil
			}

			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, []string{
					p.DisplayID(),
					p.Name,
					p.Client,
					formatter.Money(p.Budget),
					string(p.Status),
					fmt.Sprintf("%d%%", p.Status.Progress()),
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"ID", "Name", "Client", "Budget", "Status", "Progress"}, rows))
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <project>",
		Short: "Delete a project",
		Long:  "Delete a project. Expenses and tasks that reference it are kept.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			ok, err := confirmDestructive(
				fmt.Sprintf("Are you sure you want to delete %s?", p.Name), yes)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}

			if err := app.Projects.Delete(ctx, p.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted project %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}
