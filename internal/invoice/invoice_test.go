package invoice

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nhb-tools/sitedesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProject() domain.Project {
	return domain.Project{
		ID:     "p1",
		Name:   "Lakeside Remodel",
		Client: "Dana Reeve",
		Budget: 52500.50,
		Status: domain.StatusInProgress,
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	doc := Build(sampleProject(), now)

	assert.Equal(t, CompanyName, doc.Company)
	assert.Equal(t, "Dana Reeve", doc.BillTo)
	assert.Equal(t, "Lakeside Remodel", doc.ProjectName)
	assert.Equal(t, domain.StatusInProgress, doc.ProjectStatus)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "Construction Services - Lakeside Remodel", doc.Items[0].Description)
	assert.Equal(t, 52500.50, doc.Items[0].Amount)
	assert.Equal(t, 52500.50, doc.TotalDue)
}

func TestRenderHTML(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	html, err := RenderHTML(Build(sampleProject(), now))
	require.NoError(t, err)

	assert.Contains(t, html, "New Heights Builders")
	assert.Contains(t, html, "INVOICE")
	assert.Contains(t, html, "Dana Reeve")
	assert.Contains(t, html, "Lakeside Remodel")
	assert.Contains(t, html, "In Progress")
	assert.Contains(t, html, "$52,500.5")
	assert.Contains(t, html, "Date: 8/30/2026")
	assert.Contains(t, html, "window.print()")
	assert.Contains(t, html, "Thank you for your business!")
}

func TestRenderHTML_EscapesProjectName(t *testing.T) {
	p := sampleProject()
	p.Name = `<script>alert("x")</script>`
	html, err := RenderHTML(Build(p, time.Now()))
	require.NoError(t, err)
	assert.NotContains(t, html, `<script>alert`)
}

func TestWriteFile(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	dir := t.TempDir()

	path, err := WriteFile(Build(sampleProject(), now), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "invoice_lakeside-remodel_2026-08-30.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<!DOCTYPE html>"))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "lakeside-remodel", slug("Lakeside Remodel"))
	assert.Equal(t, "unit-7b", slug("  Unit 7B "))
	assert.Equal(t, "project", slug("!!!"))
}
