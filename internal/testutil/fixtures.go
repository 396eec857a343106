package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/nhb-tools/sitedesk/internal/domain"
)

// Project options
type ProjectOption func(*domain.Project)

func WithBudget(b float64) ProjectOption {
	return func(p *domain.Project) {
		p.Budget = b
	}
}

func WithStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithProjectID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ID = id
	}
}

func NewTestProject(name string, opts ...ProjectOption) domain.Project {
	p := domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Client:    "Test Client",
		Budget:    10000,
		Status:    domain.StatusPlanning,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Expense options
type ExpenseOption func(*domain.Expense)

func WithAmount(a float64) ExpenseOption {
	return func(e *domain.Expense) {
		e.Amount = a
	}
}

func WithDate(d string) ExpenseOption {
	return func(e *domain.Expense) {
		e.Date = d
	}
}

func NewTestExpense(projectID, description string, opts ...ExpenseOption) domain.Expense {
	e := domain.Expense{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		Description: description,
		Amount:      100,
		Date:        "2026-01-15",
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Task options
type TaskOption func(*domain.Task)

func WithCompleted(done bool) TaskOption {
	return func(t *domain.Task) {
		t.Completed = done
	}
}

func NewTestTask(projectID, text string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
