package templates

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/csg33k/employee-console/internal/console"
)

// NOTE: the page chrome stays in html/template and is bridged into templ with
// FromGoHTML/ToGoHTML; the table body is a templ component so the same
// escaping rules apply to every record cell.

var funcs = template.FuncMap{
	"millis": millis,
	"itoa":   itoa,
}

var consoleTmpl = template.Must(template.New("fragments").Funcs(funcs).Parse(`
{{define "status"}}
{{if .View.HasStatus}}
<div id="status" class="status-message {{.View.Status.Kind}} show"
  hx-get="/status" hx-trigger="load delay:{{millis .View.StatusRemaining}}ms" hx-swap="outerHTML">{{.View.Status.Message}}</div>
{{else}}
<div id="status" class="status-message"></div>
{{end}}
{{end}}

{{define "console"}}
<div id="console" hx-indicator="#loading">
<div id="loading" class="htmx-indicator{{if .View.Loading}} show{{end}}">LOADING…</div>
{{template "status" .}}
<div style="display:grid;grid-template-columns:340px 1fr;gap:28px;align-items:start;">

<!-- Employee Form -->
<div class="card form-section" style="padding:22px;">
  <div class="section-header">{{if .Editing}}Edit Employee #{{itoa .View.EditingID}}{{else}}New Employee{{end}}</div>
  <form id="employee-form" hx-post="/employees" hx-target="#console" hx-swap="outerHTML">
    <input type="hidden" id="employeeId" name="id" value="{{if .Editing}}{{itoa .View.EditingID}}{{end}}">
    <div style="display:grid;gap:12px;">
      <div>
        <label class="field-label" for="firstName">First Name *</label>
        <input type="text" id="firstName" name="firstName" value="{{.View.Form.FirstName}}" required>
      </div>
      <div>
        <label class="field-label" for="lastName">Last Name *</label>
        <input type="text" id="lastName" name="lastName" value="{{.View.Form.LastName}}" required>
      </div>
      <div>
        <label class="field-label" for="email">Email *</label>
        <input type="email" id="email" name="email" value="{{.View.Form.Email}}" required>
      </div>
      <div>
        <label class="field-label" for="role">Role *</label>
        <input type="text" id="role" name="role" value="{{.View.Form.Role}}" required>
      </div>
    </div>
    <div style="display:flex;gap:10px;margin-top:18px;">
      <button type="submit" id="submitBtn" class="btn btn-primary">{{.View.SubmitLabel}}</button>
      {{if .Editing}}<button type="button" class="btn btn-danger" hx-post="/cancel" hx-target="#console" hx-swap="outerHTML">Cancel</button>{{end}}
    </div>
  </form>
</div>

<!-- Employee Table -->
<div class="card" style="padding:22px;">
  <div style="display:flex;justify-content:space-between;align-items:center;gap:12px;margin-bottom:12px;">
    <div class="section-header" style="margin:0;border:none;">Employees · {{.View.StoreSize}}</div>
    <div style="display:flex;gap:8px;">
      <button class="btn" hx-post="/reload" hx-target="#console" hx-swap="outerHTML">Reload</button>
      <a class="btn" href="/export.pdf" style="text-decoration:none;">PDF</a>
    </div>
  </div>
  <input type="search" id="searchInput" name="q" placeholder="Search employees…" value="{{.View.Term}}"
    hx-get="/search" hx-trigger="input changed delay:200ms, search" hx-target="#employeeTableBody">
  <table class="employee-table">
    <thead><tr><th>ID</th><th>First Name</th><th>Last Name</th><th>Email</th><th>Role</th><th>Actions</th></tr></thead>
    <tbody id="employeeTableBody">{{.TableHTML}}</tbody>
  </table>
</div>

</div>
</div>
{{end}}
`))

var pageTmpl = template.Must(template.Must(consoleTmpl.Clone()).Parse(`{{define "console-page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Employee Console</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link href="https://fonts.googleapis.com/css2?family=IBM+Plex+Mono:wght@400;500;600&family=IBM+Plex+Sans:wght@300;400;500;600&display=swap" rel="stylesheet">
<style>
  :root{--ink:#0d1117;--paper:#f5f0e8;--ledger:#e8e0cc;--accent:#c0392b;--accent2:#2c6e49;--muted:#6b5e4e;--rule:#b8a898;--info:#2c5d8a;}
  *{box-sizing:border-box;}
  body{background:var(--paper);color:var(--ink);font-family:'IBM Plex Sans',sans-serif;min-height:100vh;margin:0;}
  .card{background:rgba(255,255,255,0.7);border:1px solid var(--ledger);border-left:4px solid var(--ink);}
  .field-label{font-family:'IBM Plex Mono',monospace;font-size:0.6rem;font-weight:600;letter-spacing:0.1em;text-transform:uppercase;color:var(--muted);display:block;margin-bottom:2px;}
  input{background:white;border:1px solid var(--rule);border-bottom:2px solid var(--ink);padding:6px 8px;font-family:'IBM Plex Mono',monospace;font-size:0.85rem;width:100%;outline:none;transition:border-color 0.15s;}
  input:focus{border-bottom-color:var(--accent);}
  .btn{font-family:'IBM Plex Mono',monospace;font-weight:600;font-size:0.75rem;letter-spacing:0.08em;padding:7px 14px;border:2px solid var(--ink);background:white;color:var(--ink);cursor:pointer;transition:all 0.15s;text-transform:uppercase;}
  .btn-primary{background:var(--ink);color:white;}
  .btn-primary:hover{background:var(--accent);border-color:var(--accent);}
  .btn-danger{background:white;color:var(--accent);border-color:var(--accent);}
  .btn-danger:hover{background:var(--accent);color:white;}
  .action-btn{padding:4px 10px;font-size:0.65rem;}
  .section-header{font-family:'IBM Plex Mono',monospace;font-size:0.7rem;font-weight:600;letter-spacing:0.18em;text-transform:uppercase;color:var(--muted);border-bottom:1px solid var(--rule);padding-bottom:4px;margin-bottom:16px;}
  .employee-table{width:100%;border-collapse:collapse;margin-top:12px;font-size:0.85rem;}
  .employee-table th{font-family:'IBM Plex Mono',monospace;font-size:0.6rem;letter-spacing:0.1em;text-transform:uppercase;color:var(--muted);text-align:left;border-bottom:2px solid var(--ink);padding:6px;}
  .employee-table td{border-bottom:1px solid var(--ledger);padding:6px;}
  .empty-state{text-align:center;color:var(--muted);padding:24px !important;}
  .status-message{font-family:'IBM Plex Mono',monospace;font-size:0.8rem;padding:8px 12px;margin-bottom:16px;border-left:4px solid var(--ink);opacity:0;transition:opacity 0.2s;min-height:1em;}
  .status-message.show{opacity:1;}
  .status-message.success{border-left-color:var(--accent2);color:var(--accent2);}
  .status-message.error{border-left-color:var(--accent);color:var(--accent);}
  .status-message.info{border-left-color:var(--info);color:var(--info);}
  .htmx-indicator{font-family:'IBM Plex Mono',monospace;font-size:0.65rem;letter-spacing:0.2em;color:var(--muted);opacity:0;transition:opacity 0.2s;}
  .htmx-request .htmx-indicator,.htmx-request.htmx-indicator,.htmx-indicator.show{opacity:1;}
</style>
</head>
<body>
<div style="max-width:1200px;margin:0 auto;padding:32px 24px;">
<h1 style="font-family:'IBM Plex Mono',monospace;font-size:1.5rem;font-weight:600;margin:0 0 24px;">Employee Console</h1>
{{template "console" .}}
</div>
<script>
document.addEventListener('keydown', function (event) {
  if ((event.ctrlKey || event.metaKey) && event.key === 'Enter') {
    if (document.activeElement && document.activeElement.tagName === 'INPUT' && document.activeElement.form) {
      event.preventDefault();
      htmx.trigger('#employee-form', 'submit');
    }
  }
  if (event.key === 'Escape') {
    var search = document.getElementById('searchInput');
    if (search) { search.value = ''; search.blur(); }
    htmx.ajax('POST', '/escape', {target: '#console', swap: 'outerHTML'});
  }
});
</script>
</body>
</html>{{end}}`))

type consoleData struct {
	View      console.View
	Editing   bool
	TableHTML template.HTML
}

func newConsoleData(ctx context.Context, v console.View) (consoleData, error) {
	table, err := templ.ToGoHTML(ctx, TableBody(BuildTable(v.Records, v.Term)))
	if err != nil {
		return consoleData{}, err
	}
	return consoleData{View: v, Editing: v.Mode == console.ModeEditing, TableHTML: table}, nil
}

func execute(t *template.Template, name string, v console.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		data, err := newConsoleData(ctx, v)
		if err != nil {
			return err
		}
		return t.ExecuteTemplate(w, name, data)
	})
}

// Page renders the full console page.
func Page(v console.View) templ.Component {
	return execute(pageTmpl, "console-page", v)
}

// Console renders the swappable #console fragment: status, form and table.
func Console(v console.View) templ.Component {
	return execute(consoleTmpl, "console", v)
}

// Status renders only the #status fragment.
func Status(v console.View) templ.Component {
	return templ.FromGoHTML(consoleTmpl.Lookup("status"), consoleData{View: v})
}
