package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProject() Project {
	return Project{
		ID:     "abc12345-0000",
		Name:   "Lakeside Remodel",
		Client: "Dana Reeve",
		Budget: 50000,
		Status: StatusPlanning,
	}
}

func TestProjectValidate(t *testing.T) {
	p := validProject()
	require.NoError(t, p.Validate())

	p = validProject()
	p.Name = ""
	assert.Error(t, p.Validate())

	p = validProject()
	p.Client = ""
	assert.Error(t, p.Validate())

	p = validProject()
	p.Budget = -1
	assert.Error(t, p.Validate())

	p = validProject()
	p.Budget = math.NaN()
	assert.Error(t, p.Validate())

	p = validProject()
	p.Status = "Done"
	assert.Error(t, p.Validate())

	// Zero budget is allowed.
	p = validProject()
	p.Budget = 0
	assert.NoError(t, p.Validate())
}

func TestStatusProgress(t *testing.T) {
	assert.Equal(t, 33, StatusPlanning.Progress())
	assert.Equal(t, 66, StatusInProgress.Progress())
	assert.Equal(t, 100, StatusCompleted.Progress())
	assert.Equal(t, 0, ProjectStatus("bogus").Progress())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPlanning.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, ProjectStatus("planning").Valid())
	assert.False(t, ProjectStatus("").Valid())
}

func TestProjectDisplayID(t *testing.T) {
	p := Project{ID: "0123456789abcdef"}
	assert.Equal(t, "01234567", p.DisplayID())

	p.ID = "short"
	assert.Equal(t, "short", p.DisplayID())
}
