package invoice

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/dustin/go-humanize"
)

var pageTmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": func(v float64) string { return "$" + humanize.Commaf(v) },
}).Parse(pageHTML))

// RenderHTML renders the document as a standalone printable page that
// invokes the browser's print action on load.
func RenderHTML(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("rendering invoice: %w", err)
	}
	return buf.String(), nil
}

const pageHTML = `<!DOCTYPE html>
<html>
<head>
<title>Invoice - {{.ProjectName}}</title>
<style>
body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; padding: 40px; color: #333; }
.invoice-header { display: flex; justify-content: space-between; margin-bottom: 40px; border-bottom: 2px solid #eee; padding-bottom: 20px; }
.company-name { font-size: 24px; font-weight: bold; color: #2563eb; }
.invoice-title { font-size: 32px; font-weight: bold; text-align: right; color: #1e293b; }
.details-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 40px; margin-bottom: 40px; }
.details-grid h3 { font-size: 14px; text-transform: uppercase; color: #64748b; margin-bottom: 10px; }
.info-row { margin-bottom: 5px; }
table { width: 100%; border-collapse: collapse; margin-bottom: 30px; }
th { text-align: left; padding: 15px; background: #f8fafc; border-bottom: 1px solid #e2e8f0; }
td { padding: 15px; border-bottom: 1px solid #e2e8f0; }
.total-section { text-align: right; font-size: 20px; font-weight: bold; }
.footer { margin-top: 60px; text-align: center; color: #94a3b8; font-size: 12px; }
@media print { body { padding: 0; } }
</style>
</head>
<body>
<div class="invoice-header">
  <div class="company-name">{{.Company}}</div>
  <div>
    <div class="invoice-title">INVOICE</div>
    <div style="text-align: right; color: #64748b;">Date: {{.Date.Format "1/2/2006"}}</div>
  </div>
</div>

<div class="details-grid">
  <div>
    <h3>Bill To</h3>
    <div class="info-row"><strong>{{.BillTo}}</strong></div>
  </div>
  <div>
    <h3>Project Details</h3>
    <div class="info-row"><strong>Project:</strong> {{.ProjectName}}</div>
    <div class="info-row"><strong>Status:</strong> {{.ProjectStatus}}</div>
  </div>
</div>

<table>
  <thead>
    <tr><th>Description</th><th style="text-align: right;">Amount</th></tr>
  </thead>
  <tbody>
    {{range .Items}}<tr><td>{{.Description}}</td><td style="text-align: right;">{{money .Amount}}</td></tr>
    {{end}}
  </tbody>
</table>

<div class="total-section">Total Due: {{money .TotalDue}}</div>

<div class="footer"><p>Thank you for your business!</p></div>

<script>window.onload = function() { window.print(); }</script>
</body>
</html>
`
