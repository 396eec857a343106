package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/nhb-tools/sitedesk/internal/invoice"
	"github.com/nhb-tools/sitedesk/internal/service"
)

// App holds references to all service interfaces used by CLI commands and
// TUI views.
type App struct {
	Projects service.ProjectService
	Expenses service.ExpenseService
	Tasks    service.TaskService
	Reports  service.ReportService
	Backups  service.BackupService

	// IsInteractive reports whether stdin is a terminal; the bare command
	// launches the TUI only when it is.
	IsInteractive func() bool

	// InvoiceDir is where generated invoice pages are written.
	// Empty means the system temp directory.
	InvoiceDir string

	// OpenInvoices hands generated invoices to the platform browser
	// (which runs the page's print script). Disabled in tests.
	OpenInvoices bool
}

// generateInvoice builds and writes the printable invoice for a project,
// returning the written file path.
func generateInvoice(ctx context.Context, app *App, projectID string) (string, error) {
	p, err := app.Projects.GetByID(ctx, projectID)
	if err != nil {
		return "", err
	}
	doc := invoice.Build(*p, time.Now())
	path, err := invoice.WriteFile(doc, app.InvoiceDir)
	if err != nil {
		return "", err
	}
	if app.OpenInvoices {
		if err := invoice.OpenInBrowser(path); err != nil {
			return "", fmt.Errorf("invoice written to %s but could not be opened: %w", path, err)
		}
	}
	return path, nil
}
