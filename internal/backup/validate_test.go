package backup

import (
	"testing"
	"time"

	"github.com/nhb-tools/sitedesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	assert.ErrorIs(t, err, ErrMalformedBackup)
}

func TestParse_MissingCollections(t *testing.T) {
	_, err := Parse([]byte(`{}`))
	assert.ErrorIs(t, err, ErrMalformedBackup)

	_, err = Parse([]byte(`{"projects":[]}`))
	assert.ErrorIs(t, err, ErrMalformedBackup)

	_, err = Parse([]byte(`{"expenses":[]}`))
	assert.ErrorIs(t, err, ErrMalformedBackup)
}

func TestParse_TasksOptional(t *testing.T) {
	a, err := Parse([]byte(`{"projects":[],"expenses":[]}`))
	require.NoError(t, err)
	assert.NotNil(t, a.Tasks)
	assert.Empty(t, a.Tasks)
}

func TestParse_FullArchive(t *testing.T) {
	blob := `{
	  "projects": [{"id":"p1","name":"Barn","client":"Ann","budget":100,"status":"Planning","createdAt":"2026-01-01T00:00:00Z"}],
	  "expenses": [{"id":"e1","projectId":"p1","description":"Nails","amount":40,"date":"2026-02-01","createdAt":"2026-02-01T00:00:00Z"}],
	  "tasks": [{"id":"t1","projectId":"p1","text":"Frame walls","completed":true,"createdAt":"2026-02-01T00:00:00Z"}]
	}`

	a, err := Parse([]byte(blob))
	require.NoError(t, err)
	require.Len(t, a.Projects, 1)
	assert.Equal(t, "Barn", a.Projects[0].Name)
	assert.Equal(t, domain.StatusPlanning, a.Projects[0].Status)
	require.Len(t, a.Expenses, 1)
	assert.Equal(t, 40.0, a.Expenses[0].Amount)
	require.Len(t, a.Tasks, 1)
	assert.True(t, a.Tasks[0].Completed)
}

func TestEncodeParseRoundTrip(t *testing.T) {
	a := Archive{
		Projects: []domain.Project{{
			ID: "p1", Name: "Barn", Client: "Ann", Budget: 100,
			Status: domain.StatusPlanning, CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}},
	}

	blob, err := Encode(a)
	require.NoError(t, err)

	parsed, err := Parse(blob)
	require.NoError(t, err)
	assert.Equal(t, a.Projects, parsed.Projects)
	assert.Empty(t, parsed.Expenses)
	assert.Empty(t, parsed.Tasks)
}

func TestEncode_NormalizesNilSlices(t *testing.T) {
	blob, err := Encode(Archive{})
	require.NoError(t, err)
	assert.Contains(t, string(blob), `"projects": []`)
	assert.Contains(t, string(blob), `"expenses": []`)
	assert.Contains(t, string(blob), `"tasks": []`)
}

func TestFileName(t *testing.T) {
	day := time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "construction_manager_backup_2026-08-30.json", FileName(day))
}
