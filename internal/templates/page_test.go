package templates_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/employee-console/internal/console"
	"github.com/csg33k/employee-console/internal/domain"
	"github.com/csg33k/employee-console/internal/templates"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestPage_CreatingMode(t *testing.T) {
	v := console.View{
		Records:     records(),
		StoreSize:   2,
		SubmitLabel: console.LabelAdd,
	}

	out := renderString(t, templates.Page(v))

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, `id="employee-form"`)
	assert.Contains(t, out, `>Add Employee</button>`)
	assert.Contains(t, out, `name="id" value=""`)
	assert.NotContains(t, out, `hx-post="/cancel"`)
	assert.Contains(t, out, `<tr data-id="1">`)
	assert.Contains(t, out, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;")
	assert.NotContains(t, out, `<script>alert("x")</script>`)
	assert.Contains(t, out, "Employees · 2")
	assert.Contains(t, out, "'/escape'")
	assert.Contains(t, out, `<div id="status" class="status-message"></div>`)
}

func TestPage_EditingMode(t *testing.T) {
	v := console.View{
		Records:     records(),
		StoreSize:   2,
		Mode:        console.ModeEditing,
		EditingID:   2,
		Form:        domain.EmployeeDraft{FirstName: `"><b>`, LastName: "O'Brien", Email: "a&b@x.com", Role: "R&D"},
		SubmitLabel: console.LabelUpdate,
	}

	out := renderString(t, templates.Console(v))

	assert.Contains(t, out, `id="console"`)
	assert.NotContains(t, out, "<!DOCTYPE html>", "fragment only")
	assert.Contains(t, out, "Edit Employee #2")
	assert.Contains(t, out, `name="id" value="2"`)
	assert.Contains(t, out, `>Update Employee</button>`)
	assert.Contains(t, out, `hx-post="/cancel"`)
	assert.NotContains(t, out, `value=""><b>"`, "form values are attribute-escaped")
	assert.Contains(t, out, "&#34;&gt;&lt;b&gt;")
}

func TestPage_EmptyAndSearch(t *testing.T) {
	out := renderString(t, templates.Console(console.View{SubmitLabel: console.LabelAdd}))
	assert.Contains(t, out, templates.EmptyNoData)

	out = renderString(t, templates.Console(console.View{Term: "zed", SubmitLabel: console.LabelAdd}))
	assert.Contains(t, out, "No employees match your search criteria: &#34;zed&#34;")
	assert.Contains(t, out, `value="zed"`)
}

func TestStatus_Fragment(t *testing.T) {
	v := console.View{
		HasStatus:       true,
		Status:          console.Status{Seq: 1, Message: "Loaded 3 employees", Kind: console.KindSuccess},
		StatusRemaining: 2500 * time.Millisecond,
	}

	out := renderString(t, templates.Status(v))

	assert.Contains(t, out, `class="status-message success show"`)
	assert.Contains(t, out, `hx-trigger="load delay:2500ms"`)
	assert.Contains(t, out, "Loaded 3 employees")

	out = renderString(t, templates.Status(console.View{}))
	assert.Contains(t, out, `<div id="status" class="status-message"></div>`)
	assert.NotContains(t, out, "hx-trigger")
}

func TestPage_LoadingIndicator(t *testing.T) {
	out := renderString(t, templates.Console(console.View{Loading: true, SubmitLabel: console.LabelAdd}))
	assert.Contains(t, out, `class="htmx-indicator show"`)
}
