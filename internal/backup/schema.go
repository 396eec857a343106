package backup

import (
	"time"

	"github.com/nhb-tools/sitedesk/internal/domain"
	"github.com/nhb-tools/sitedesk/internal/state"
)

// Archive is the backup file format: the full domain state as one JSON
// object. Field names match the original export format.
type Archive struct {
	Projects []domain.Project `json:"projects"`
	Expenses []domain.Expense `json:"expenses"`
	Tasks    []domain.Task    `json:"tasks"`
}

// FromData builds an archive from a state snapshot.
func FromData(d state.Data) Archive {
	return Archive{Projects: d.Projects, Expenses: d.Expenses, Tasks: d.Tasks}
}

// Data converts the archive into a domain state.
func (a Archive) Data() state.Data {
	return state.Data{Projects: a.Projects, Expenses: a.Expenses, Tasks: a.Tasks}
}

// FileName returns the export file name for the given day, e.g.
// construction_manager_backup_2026-08-30.json.
func FileName(t time.Time) string {
	return "construction_manager_backup_" + t.Format("2006-01-02") + ".json"
}
