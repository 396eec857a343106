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

type taskService struct {
	store *state.Store
}

func NewTaskService(store *state.Store) TaskService {
	return &taskService{store: store}
}

func (s *taskService) Add(ctx context.Context, projectID, text string) (*domain.Task, error) {
	text = strings.TrimSpace(text)
	if projectID == "" {
		return nil, fmt.Errorf("no project selected")
	}
	if text == "" {
		return nil, fmt.Errorf("task text is required")
	}

	t := domain.Task{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Text:      text,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}

	err := s.store.Mutate(ctx, func(d *state.Data) error {
		d.Tasks = append(d.Tasks, t)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.L.WithFields(map[string]any{"id": t.ID, "projectId": projectID}).Info("task added")
	return &t, nil
}

// ListByProject returns the project's tasks in insertion order.
func (s *taskService) ListByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range s.store.Tasks() {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

// Toggle flips the completed flag. A missing id is a no-op.
func (s *taskService) Toggle(ctx context.Context, id string) error {
	err := s.store.Mutate(ctx, func(d *state.Data) error {
		if t := d.FindTask(id); t != nil {
			t.Completed = !t.Completed
			return nil
		}
		return errNoop
	})
	if errors.Is(err, errNoop) {
		return nil
	}
	return err
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	err := s.store.Mutate(ctx, func(d *state.Data) error {
		for i := range d.Tasks {
			if d.Tasks[i].ID == id {
				d.Tasks = append(d.Tasks[:i], d.Tasks[i+1:]...)
				return nil
			}
		}
		return errNoop
	})
	if errors.Is(err, errNoop) {
		return nil
	}
	if err == nil {
		logger.L.WithField("id", id).Info("task deleted")
	}
	return err
}
