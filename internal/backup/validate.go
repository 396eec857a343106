package backup

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nhb-tools/sitedesk/internal/domain"
)

// ErrMalformedBackup indicates the supplied blob is not a usable backup:
// invalid JSON, or the projects/expenses collections are missing.
var ErrMalformedBackup = errors.New("invalid backup file format")

// rawArchive distinguishes absent collections from empty ones.
type rawArchive struct {
	Projects *[]domain.Project `json:"projects"`
	Expenses *[]domain.Expense `json:"expenses"`
	Tasks    *[]domain.Task    `json:"tasks"`
}

// Parse validates an externally supplied backup blob. Projects and expenses
// are required (empty arrays are fine); a missing tasks collection defaults
// to empty.
func Parse(blob []byte) (*Archive, error) {
	var raw rawArchive
	if err := json.Unmarshal(blob, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBackup, err)
	}
	if raw.Projects == nil {
		return nil, fmt.Errorf("%w: missing projects collection", ErrMalformedBackup)
	}
	if raw.Expenses == nil {
		return nil, fmt.Errorf("%w: missing expenses collection", ErrMalformedBackup)
	}

	a := &Archive{Projects: *raw.Projects, Expenses: *raw.Expenses}
	if raw.Tasks != nil {
		a.Tasks = *raw.Tasks
	}
	if a.Tasks == nil {
		a.Tasks = []domain.Task{}
	}
	return a, nil
}

// Encode serializes an archive for export, indented for human inspection.
func Encode(a Archive) ([]byte, error) {
	if a.Projects == nil {
		a.Projects = []domain.Project{}
	}
	if a.Expenses == nil {
		a.Expenses = []domain.Expense{}
	}
	if a.Tasks == nil {
		a.Tasks = []domain.Task{}
	}
	out, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing backup: %w", err)
	}
	return out, nil
}
