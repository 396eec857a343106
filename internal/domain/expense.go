package domain

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the calendar date format used for expense dates.
const DateLayout = "2006-01-02"

// Expense is a cost logged against a project. ProjectID is not enforced as
// a foreign key; it may reference a project that was since deleted.
type Expense struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate checks the invariants an expense must satisfy before it is
// admitted into state.
func (e *Expense) Validate() error {
	if e.ProjectID == "" {
		return fmt.Errorf("project is required")
	}
	if e.Description == "" {
		return fmt.Errorf("description is required")
	}
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return fmt.Errorf("amount must be a finite number")
	}
	if e.Amount < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", e.Date)
	}
	return nil
}

// DateValue parses the user-supplied date for sort ordering.
// Unparseable dates sort as the zero time, i.e. last in descending order.
func (e *Expense) DateValue() time.Time {
	t, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
