package service

import (
	"context"
	"testing"

	"github.com/nhb-tools/sitedesk/internal/domain"
	"github.com/nhb-tools/sitedesk/internal/state"
	"github.com/nhb-tools/sitedesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveDashboard(t *testing.T) {
	d := state.Data{
		Projects: []domain.Project{
			testutil.NewTestProject("Barn", testutil.WithStatus(domain.StatusInProgress), testutil.WithBudget(1000)),
			testutil.NewTestProject("Deck", testutil.WithStatus(domain.StatusPlanning), testutil.WithBudget(2000)),
			testutil.NewTestProject("Roof", testutil.WithStatus(domain.StatusCompleted), testutil.WithBudget(500)),
		},
	}

	rep := DeriveDashboard(d)
	// Only In Progress counts as active; revenue sums every budget.
	assert.Equal(t, 1, rep.ActiveProjects)
	assert.Equal(t, 3500.0, rep.Revenue)
	assert.Equal(t, 0, rep.UpcomingDeadlines)
}

func TestDeriveDashboard_Empty(t *testing.T) {
	rep := DeriveDashboard(state.Data{})
	assert.Equal(t, 0, rep.ActiveProjects)
	assert.Equal(t, 0.0, rep.Revenue)
}

func TestDeriveExpenseReport_Totals(t *testing.T) {
	p1 := testutil.NewTestProject("Barn", testutil.WithBudget(1000))
	p2 := testutil.NewTestProject("Deck", testutil.WithBudget(2000))
	d := state.Data{
		Projects: []domain.Project{p1, p2},
		Expenses: []domain.Expense{
			testutil.NewTestExpense(p1.ID, "Lumber", testutil.WithAmount(300)),
			testutil.NewTestExpense(p2.ID, "Paint", testutil.WithAmount(200)),
		},
	}

	rep := DeriveExpenseReport(d)
	assert.Equal(t, 500.0, rep.TotalExpenses)
	assert.Equal(t, 3000.0, rep.TotalBudget)
	assert.InDelta(t, 16.6667, rep.Percentage, 0.001)
	assert.Equal(t, "16.7% of Total Budget", rep.PercentageLabel())
}

func TestDeriveExpenseReport_ZeroBudget(t *testing.T) {
	d := state.Data{
		Expenses: []domain.Expense{
			testutil.NewTestExpense("p1", "Lumber", testutil.WithAmount(300)),
		},
	}

	rep := DeriveExpenseReport(d)
	assert.Equal(t, 0.0, rep.Percentage)
	assert.Equal(t, 0.0, rep.BarFraction())
}

func TestExpenseReport_BarFractionClamps(t *testing.T) {
	rep := ExpenseReport{Percentage: 250}
	assert.Equal(t, 1.0, rep.BarFraction())

	rep = ExpenseReport{Percentage: 50}
	assert.Equal(t, 0.5, rep.BarFraction())
}

func TestDeriveExpenseReport_SortStable(t *testing.T) {
	d := state.Data{
		Expenses: []domain.Expense{
			testutil.NewTestExpense("p1", "first of Jan", testutil.WithDate("2024-01-01")),
			testutil.NewTestExpense("p1", "March", testutil.WithDate("2024-03-01")),
			testutil.NewTestExpense("p1", "second of Jan", testutil.WithDate("2024-01-01")),
		},
	}

	rep := DeriveExpenseReport(d)
	require.Len(t, rep.Rows, 3)
	// Descending by date; equal dates keep insertion order.
	assert.Equal(t, "March", rep.Rows[0].Expense.Description)
	assert.Equal(t, "first of Jan", rep.Rows[1].Expense.Description)
	assert.Equal(t, "second of Jan", rep.Rows[2].Expense.Description)
}

func TestDeriveExpenseReport_OrphanedExpense(t *testing.T) {
	p := testutil.NewTestProject("Barn")
	d := state.Data{
		Projects: []domain.Project{p},
		Expenses: []domain.Expense{
			testutil.NewTestExpense(p.ID, "Lumber"),
			testutil.NewTestExpense("deleted-project", "Ghost cost"),
		},
	}

	rep := DeriveExpenseReport(d)
	require.Len(t, rep.Rows, 2)
	byDesc := map[string]string{}
	for _, row := range rep.Rows {
		byDesc[row.Expense.Description] = row.ProjectName
	}
	assert.Equal(t, "Barn", byDesc["Lumber"])
	assert.Equal(t, "Unknown Project", byDesc["Ghost cost"])
}

func TestReportService(t *testing.T) {
	store := testutil.NewTestStore(t)
	projects := NewProjectService(store)
	reports := NewReportService(store)
	ctx := context.Background()

	_, err := projects.Create(ctx, CreateProjectInput{
		Name: "Barn", Client: "Ann", Budget: "1000", Status: "In Progress",
	})
	require.NoError(t, err)

	dash, err := reports.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, dash.ActiveProjects)
	assert.Equal(t, 1000.0, dash.Revenue)

	exp, err := reports.Expenses(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, exp.TotalBudget)
	assert.Empty(t, exp.Rows)
}
