package cli

import (
	"context"
	"fmt"

	"github.com/nhb-tools/sitedesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the business summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Reports.Dashboard(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("Active Projects:    %d\n", report.ActiveProjects)
			fmt.Printf("Total Revenue:      %s\n", formatter.Money(report.Revenue))
			fmt.Printf("Upcoming Deadlines: %d\n", report.UpcomingDeadlines)
			return nil
		},
	}
}
