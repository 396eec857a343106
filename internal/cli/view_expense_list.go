package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nhb-tools/sitedesk/internal/cli/formatter"
	"github.com/nhb-tools/sitedesk/internal/service"
)

// expensesLoadedMsg signals that expense report data has been loaded.
type expensesLoadedMsg struct {
	report *service.ExpenseReport
	err    error
}

// expenseListView shows the expense totals, budget consumption, and the
// date-sorted expense table.
type expenseListView struct {
	state   *SharedState
	report  *service.ExpenseReport
	cursor  int
	loading bool
	err     error
}

func newExpenseListView(state *SharedState) *expenseListView {
	return &expenseListView{state: state, loading: true}
}

func (v *expenseListView) ID() ViewID    { return ViewExpenseList }
func (v *expenseListView) Title() string { return "Expenses" }

func (v *expenseListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *expenseListView) Init() tea.Cmd {
	return v.loadReport()
}

func (v *expenseListView) loadReport() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		report, err := app.Reports.Expenses(context.Background())
		return expensesLoadedMsg{report: report, err: err}
	}
}

func (v *expenseListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case expensesLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.report = msg.report
		if n := len(v.report.Rows); v.cursor >= n && n > 0 {
			v.cursor = n - 1
		}
		return v, nil

	case refreshViewMsg:
		return v, v.loadReport()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.report != nil && v.cursor < len(v.report.Rows)-1 {
				v.cursor++
			}
		case "a":
			w := newExpenseWizard(v.state)
			if w == nil {
				return v, showStatus("Create a project before logging expenses")
			}
			return v, pushView(w)
		case "x":
			if row := v.selected(); row != nil {
				return v, pushView(v.confirmDelete(*row))
			}
		case "r":
			v.loading = true
			return v, v.loadReport()
		}
	}
	return v, nil
}

func (v *expenseListView) selected() *service.ExpenseRow {
	if v.report != nil && v.cursor < len(v.report.Rows) {
		return &v.report.Rows[v.cursor]
	}
	return nil
}

func (v *expenseListView) confirmDelete(row service.ExpenseRow) View {
	app := v.state.App
	onYes := func() tea.Cmd {
		return func() tea.Msg {
			if err := app.Expenses.Delete(context.Background(), row.Expense.ID); err != nil {
				return statusLineMsg{text: "Error: " + err.Error(), isErr: true}
			}
			return tea.BatchMsg{refreshViews(), showStatus("Expense deleted")}
		}
	}
	return newConfirmWizard(v.state, "Delete Expense", "Delete this expense?", onYes)
}

func (v *expenseListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...") + "\n"
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(statLine("Total Expenses", formatter.Money(v.report.TotalExpenses)))
	b.WriteString(statLine("Total Budget", formatter.Money(v.report.TotalBudget)))
	b.WriteString(fmt.Sprintf("  %s %s\n\n",
		formatter.RenderProgress(v.report.BarFraction(), 24),
		formatter.Dim(v.report.PercentageLabel())))

	if len(v.report.Rows) == 0 {
		b.WriteString(emptyStateLine("No expenses logged yet."))
		return b.String()
	}

	rows := make([][]string, 0, len(v.report.Rows))
	for i, row := range v.report.Rows {
		marker := "  "
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("❯ ")
		}
		rows = append(rows, []string{
			marker + row.Expense.Date,
			row.ProjectName,
			row.Expense.Description,
			formatter.Money(row.Expense.Amount),
		})
	}
	b.WriteString(formatter.RenderTable([]string{"  Date", "Project", "Description", "Amount"}, rows))
	return b.String()
}
