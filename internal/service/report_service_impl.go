package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/nhb-tools/sitedesk/internal/domain"
	"github.com/nhb-tools/sitedesk/internal/state"
)

// DashboardReport is the display model for the dashboard view.
type DashboardReport struct {
	ActiveProjects int     // projects with status In Progress
	Revenue        float64 // sum of all project budgets
	// UpcomingDeadlines is always zero: the data model has no deadline
	// field. Kept as a placeholder stat, not derived from anything.
	UpcomingDeadlines int
}

// ExpenseRow is one rendered expense with its project name resolved.
type ExpenseRow struct {
	Expense     domain.Expense
	ProjectName string
}

// ExpenseReport is the display model for the expenses view.
type ExpenseReport struct {
	TotalExpenses float64
	TotalBudget   float64
	// Percentage is TotalExpenses/TotalBudget*100, unclamped (0 when the
	// budget is 0). The textual display shows it unclamped; progress bars
	// use BarFraction.
	Percentage float64
	Rows       []ExpenseRow
}

// BarFraction returns the budget consumption clamped to [0, 1] for
// progress-bar widths.
func (r *ExpenseReport) BarFraction() float64 {
	f := r.Percentage / 100
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// PercentageLabel formats the unclamped percentage with one decimal.
func (r *ExpenseReport) PercentageLabel() string {
	return fmt.Sprintf("%.1f%% of Total Budget", r.Percentage)
}

// DeriveDashboard computes the dashboard display model from a state
// snapshot. Pure.
func DeriveDashboard(d state.Data) DashboardReport {
	var rep DashboardReport
	for _, p := range d.Projects {
		if p.Status == domain.StatusInProgress {
			rep.ActiveProjects++
		}
		rep.Revenue += p.Budget
	}
	return rep
}

// DeriveExpenseReport computes the expenses display model from a state
// snapshot. Rows are sorted by date descending; rows with equal dates keep
// their insertion order. Pure.
func DeriveExpenseReport(d state.Data) ExpenseReport {
	var rep ExpenseReport
	for _, e := range d.Expenses {
		rep.TotalExpenses += e.Amount
	}
	for _, p := range d.Projects {
		rep.TotalBudget += p.Budget
	}
	if rep.TotalBudget > 0 {
		rep.Percentage = rep.TotalExpenses / rep.TotalBudget * 100
	}

	names := make(map[string]string, len(d.Projects))
	for _, p := range d.Projects {
		names[p.ID] = p.Name
	}

	rep.Rows = make([]ExpenseRow, 0, len(d.Expenses))
	for _, e := range d.Expenses {
		name, ok := names[e.ProjectID]
		if !ok {
			name = "Unknown Project"
		}
		rep.Rows = append(rep.Rows, ExpenseRow{Expense: e, ProjectName: name})
	}
	sort.SliceStable(rep.Rows, func(i, j int) bool {
		return rep.Rows[i].Expense.DateValue().After(rep.Rows[j].Expense.DateValue())
	})

	return rep
}

type reportService struct {
	store *state.Store
}

func NewReportService(store *state.Store) ReportService {
	return &reportService{store: store}
}

func (s *reportService) Dashboard(ctx context.Context) (*DashboardReport, error) {
	rep := DeriveDashboard(s.store.Snapshot())
	return &rep, nil
}

func (s *reportService) Expenses(ctx context.Context) (*ExpenseReport, error) {
	rep := DeriveExpenseReport(s.store.Snapshot())
	return &rep, nil
}
