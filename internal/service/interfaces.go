package service

import (
	"context"

	"github.com/nhb-tools/sitedesk/internal/domain"
)

// CreateProjectInput carries raw form/flag values for project creation.
// Budget arrives as text and is parsed with the numeric guard.
type CreateProjectInput struct {
	Name   string
	Client string
	Budget string
	Status string
}

// CreateExpenseInput carries raw form/flag values for expense creation.
type CreateExpenseInput struct {
	ProjectID   string
	Description string
	Amount      string
	Date        string
}

type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

type ExpenseService interface {
	Create(ctx context.Context, in CreateExpenseInput) (*domain.Expense, error)
	List(ctx context.Context) ([]domain.Expense, error)
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Add(ctx context.Context, projectID, text string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Task, error)
	Toggle(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ReportService interface {
	Dashboard(ctx context.Context) (*DashboardReport, error)
	Expenses(ctx context.Context) (*ExpenseReport, error)
}

// ExportFile is a rendered backup ready to be written somewhere.
type ExportFile struct {
	Name string
	Data []byte
}

type BackupService interface {
	Export(ctx context.Context) (*ExportFile, error)
	ExportToDir(ctx context.Context, dir string) (string, error)
	Restore(ctx context.Context, blob []byte) error
	RestoreFile(ctx context.Context, path string) error
}
