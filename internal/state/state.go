package state

import "github.com/nhb-tools/sitedesk/internal/domain"

// Store keys for the three persisted collections. The names predate this
// implementation and are kept so existing backups stay importable.
const (
	KeyProjects = "cm_projects"
	KeyExpenses = "cm_expenses"
	KeyTasks    = "cm_tasks"
)

// Data is the full domain state: three ordered record collections.
// Insertion order is significant and preserved.
type Data struct {
	Projects []domain.Project
	Expenses []domain.Expense
	Tasks    []domain.Task
}

// Clone returns a deep copy so callers can read or mutate freely without
// aliasing the live state.
func (d Data) Clone() Data {
	out := Data{
		Projects: make([]domain.Project, len(d.Projects)),
		Expenses: make([]domain.Expense, len(d.Expenses)),
		Tasks:    make([]domain.Task, len(d.Tasks)),
	}
	copy(out.Projects, d.Projects)
	copy(out.Expenses, d.Expenses)
	copy(out.Tasks, d.Tasks)
	return out
}

// FindProject returns the project with the given id, or nil.
func (d *Data) FindProject(id string) *domain.Project {
	for i := range d.Projects {
		if d.Projects[i].ID == id {
			return &d.Projects[i]
		}
	}
	return nil
}

// FindTask returns the task with the given id, or nil.
func (d *Data) FindTask(id string) *domain.Task {
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			return &d.Tasks[i]
		}
	}
	return nil
}
