package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nhb-tools/sitedesk/internal/domain"
	"github.com/nhb-tools/sitedesk/internal/logger"
	"github.com/nhb-tools/sitedesk/internal/state"
)

type projectService struct {
	store *state.Store
}

func NewProjectService(store *state.Store) ProjectService {
	return &projectService{store: store}
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error) {
	budget, err := parseMoney(in.Budget)
	if err != nil {
		return nil, fmt.Errorf("invalid budget %w", err)
	}

	p := domain.Project{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Client:    strings.TrimSpace(in.Client),
		Budget:    budget,
		Status:    domain.ProjectStatus(in.Status),
		CreatedAt: time.Now().UTC(),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	err = s.store.Mutate(ctx, func(d *state.Data) error {
		d.Projects = append(d.Projects, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.L.WithFields(map[string]any{"id": p.ID, "name": p.Name}).Info("project created")
	return &p, nil
}

func (s *projectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.store.Projects(), nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	for _, p := range s.store.Projects() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("project not found: %q", id)
}

// Delete removes the project. Expenses and tasks referencing it are left in
// place; a missing id is a no-op.
func (s *projectService) Delete(ctx context.Context, id string) error {
	err := s.store.Mutate(ctx, func(d *state.Data) error {
		for i := range d.Projects {
			if d.Projects[i].ID == id {
				d.Projects = append(d.Projects[:i], d.Projects[i+1:]...)
				return nil
			}
		}
		return errNoop
	})
	if errors.Is(err, errNoop) {
		return nil
	}
	if err == nil {
		logger.L.WithField("id", id).Info("project deleted")
	}
	return err
}
