package domain

import (
	"fmt"
	"math"
	"time"
)

// Project is a tracked construction job. The JSON tags match the persisted
// blob format and the backup archive format.
type Project struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Client    string        `json:"client"`
	Budget    float64       `json:"budget"`
	Status    ProjectStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Validate checks the invariants a project must satisfy before it is
// admitted into state.
func (p *Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if p.Client == "" {
		return fmt.Errorf("client name is required")
	}
	if math.IsNaN(p.Budget) || math.IsInf(p.Budget, 0) {
		return fmt.Errorf("budget must be a finite number")
	}
	if p.Budget < 0 {
		return fmt.Errorf("budget must not be negative")
	}
	if !p.Status.Valid() {
		return fmt.Errorf("status %q must be one of Planning, In Progress, Completed", p.Status)
	}
	return nil
}

// DisplayID returns a short identifier suitable for list output.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
