package cli

import (
	"context"
	"fmt"

	"github.com/nhb-tools/sitedesk/internal/cli/formatter"
	"github.com/nhb-tools/sitedesk/internal/service"
	"github.com/spf13/cobra"
)

func newExpenseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Manage expenses",
	}

	cmd.AddCommand(
		newExpenseAddCmd(app),
		newExpenseListCmd(app),
		newExpenseRemoveCmd(app),
	)

	return cmd
}

func newExpenseAddCmd(app *App) *cobra.Command {
	var project, description, amount, date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log an expense against a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProject(ctx, app, project)
			if err != nil {
				return err
			}

			e, err := app.Expenses.Create(ctx, service.CreateExpenseInput{
				ProjectID:   p.ID,
				Description: description,
				Amount:      amount,
				Date:        date,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Logged %s against %s\n", formatter.Money(e.Amount), p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project id, id prefix, or name")
	cmd.Flags().StringVar(&description, "description", "", "What the expense was for")
	cmd.Flags().StringVar(&amount, "amount", "", "Expense amount (number)")
	cmd.Flags().StringVar(&date, "date", "", "Expense date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newExpenseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show expense totals and the expense table",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Reports.Expenses(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("Total Expenses: %s\n", formatter.Money(report.TotalExpenses))
			fmt.Printf("Total Budget:   %s\n", formatter.Money(report.TotalBudget))
			fmt.Printf("%s\n\n", report.PercentageLabel())

			if len(report.Rows) == 0 {
				fmt.Println("No expenses logged yet.")
				return nil
			}

			rows := make([][]string, 0, len(report.Rows))
			for _, row := range report.Rows {
				rows = append(rows, []string{
					shortID(row.Expense.ID),
					row.Expense.Date,
					row.ProjectName,
					row.Expense.Description,
					formatter.Money(row.Expense.Amount),
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"ID", "Date", "Project", "Description", "Amount"}, rows))
			return nil
		},
	}
}

func newExpenseRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <expense-id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveExpenseID(ctx, app, args[0])
			if err != nil {
				return err
			}

			ok, err := confirmDestructive("Delete this expense?", yes)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}

			if err := app.Expenses.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Expense deleted")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

// resolveExpenseID resolves an exact expense id or a unique prefix.
func resolveExpenseID(ctx context.Context, app *App, input string) (string, error) {
	expenses, err := app.Expenses.List(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, e := range expenses {
		if e.ID == input {
			return e.ID, nil
		}
		if len(input) > 0 && len(e.ID) > len(input) && e.ID[:len(input)] == input {
			matches = append(matches, e.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("expense not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("expense id prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
