// Package invoice derives a printable invoice document from a project.
// Building the document model is pure; rendering and handing the result to
// the platform's print capability are kept separate.
package invoice

import (
	"time"

	"github.com/nhb-tools/sitedesk/internal/domain"
)

// CompanyName appears on every invoice header.
const CompanyName = "New Heights Builders"

// LineItem is a single billable row.
type LineItem struct {
	Description string
	Amount      float64
}

// Document is the content model of an invoice.
type Document struct {
	Company       string
	Date          time.Time
	BillTo        string
	ProjectName   string
	ProjectStatus domain.ProjectStatus
	Items         []LineItem
	TotalDue      float64
}

// Build derives the invoice document for a project: one line item for the
// full project budget, total due equal to the budget.
func Build(p domain.Project, now time.Time) Document {
	return Document{
		Company:       CompanyName,
		Date:          now,
		BillTo:        p.Client,
		ProjectName:   p.Name,
		ProjectStatus: p.Status,
		Items: []LineItem{
			{Description: "Construction Services - " + p.Name, Amount: p.Budget},
		},
		TotalDue: p.Budget,
	}
}
