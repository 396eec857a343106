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

type expenseService struct {
	store *state.Store
}

func NewExpenseService(store *state.Store) ExpenseService {
	return &expenseService{store: store}
}

func (s *expenseService) Create(ctx context.Context, in CreateExpenseInput) (*domain.Expense, error) {
	amount, err := parseMoney(in.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %w", err)
	}

	e := domain.Expense{
		ID:          uuid.New().String(),
		ProjectID:   in.ProjectID,
		Description: strings.TrimSpace(in.Description),
		Amount:      amount,
		Date:        strings.TrimSpace(in.Date),
		CreatedAt:   time.Now().UTC(),
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	err = s.store.Mutate(ctx, func(d *state.Data) error {
		d.Expenses = append(d.Expenses, e)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.L.WithFields(map[string]any{"id": e.ID, "projectId": e.ProjectID, "amount": e.Amount}).Info("expense created")
	return &e, nil
}

func (s *expenseService) List(ctx context.Context) ([]domain.Expense, error) {
	return s.store.Expenses(), nil
}

func (s *expenseService) Delete(ctx context.Context, id string) error {
	err := s.store.Mutate(ctx, func(d *state.Data) error {
		for i := range d.Expenses {
			if d.Expenses[i].ID == id {
				d.Expenses = append(d.Expenses[:i], d.Expenses[i+1:]...)
				return nil
			}
		}
		return errNoop
	})
	if errors.Is(err, errNoop) {
		return nil
	}
	if err == nil {
		logger.L.WithField("id", id).Info("expense deleted")
	}
	return err
}
