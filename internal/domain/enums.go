package domain

// ProjectStatus is the closed set of project lifecycle stages.
// The string values are part of the persisted format and must not change.
type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "Planning"
	StatusInProgress ProjectStatus = "In Progress"
	StatusCompleted  ProjectStatus = "Completed"
)

// ValidStatuses is the canonical set of accepted project status strings.
var ValidStatuses = map[ProjectStatus]bool{
	StatusPlanning:   true,
	StatusInProgress: true,
	StatusCompleted:  true,
}

func (s ProjectStatus) Valid() bool {
	return ValidStatuses[s]
}

// Progress maps a status to its displayed completion percentage.
// Unknown statuses map to 0.
func (s ProjectStatus) Progress() int {
	switch s {
	case StatusPlanning:
		return 33
	case StatusInProgress:
		return 66
	case StatusCompleted:
		return 100
	default:
		return 0
	}
}
