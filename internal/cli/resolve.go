package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/nhb-tools/sitedesk/internal/domain"
)

// resolveProject resolves user input to a project: exact id, then unique id
// prefix, then exact name (case-insensitive).
func resolveProject(ctx context.Context, app *App, input string) (*domain.Project, error) {
	if input == "" {
		return nil, fmt.Errorf("project is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range projects {
		if projects[i].ID == input {
			return &projects[i], nil
		}
	}

	var prefixMatches []*domain.Project
	for i := range projects {
		if strings.HasPrefix(projects[i].ID, input) {
			prefixMatches = append(prefixMatches, &projects[i])
		}
	}
	if len(prefixMatches) == 1 {
		return prefixMatches[0], nil
	}
	if len(prefixMatches) > 1 {
		return nil, fmt.Errorf("project id prefix %q is ambiguous (%d matches)", input, len(prefixMatches))
	}

	for i := range projects {
		if strings.EqualFold(projects[i].Name, input) {
			return &projects[i], nil
		}
	}

	return nil, fmt.Errorf("project not found: %q", input)
}
