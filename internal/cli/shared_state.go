package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Task context: the project whose task panel is open.
	ActiveProjectID   string
	ActiveProjectName string

	// Terminal dimensions
	Width  int
	Height int
}

// SetActiveProject sets the task context.
func (s *SharedState) SetActiveProject(id, name string) {
	s.ActiveProjectID = id
	s.ActiveProjectName = name
}

// ClearActiveProject resets the task context.
func (s *SharedState) ClearActiveProject() {
	s.ActiveProjectID = ""
	s.ActiveProjectName = ""
}

// ContentHeight returns the available height for view content, accounting
// for the header (title + separator) and the footer (status + key hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		h = 1
	}
	return h
}
