package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validExpense() Expense {
	return Expense{
		ID:          "e1",
		ProjectID:   "p1",
		Description: "Lumber",
		Amount:      340.50,
		Date:        "2026-03-14",
	}
}

func TestExpenseValidate(t *testing.T) {
	e := validExpense()
	require.NoError(t, e.Validate())

	e = validExpense()
	e.ProjectID = ""
	assert.Error(t, e.Validate())

	e = validExpense()
	e.Description = ""
	assert.Error(t, e.Validate())

	e = validExpense()
	e.Amount = -5
	assert.Error(t, e.Validate())

	e = validExpense()
	e.Date = "03/14/2026"
	assert.Error(t, e.Validate())

	e = validExpense()
	e.Date = "not a date"
	assert.Error(t, e.Validate())
}

func TestExpenseDateValue(t *testing.T) {
	e := Expense{Date: "2026-03-14"}
	want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	assert.True(t, e.DateValue().Equal(want))

	// Unparseable dates sort as zero time.
	e.Date = "garbage"
	assert.True(t, e.DateValue().IsZero())
}
