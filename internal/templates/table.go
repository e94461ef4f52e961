package templates

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/a-h/templ"

	"github.com/csg33k/employee-console/internal/console"
	"github.com/csg33k/employee-console/internal/domain"
)

// Columns is the table width: id, first name, last name, email, role, actions.
const Columns = 6

const (
	EmptyTitle    = "No employees found"
	EmptyNoData   = "Add your first employee using the form."
	EmptyNoMatchF = `No employees match your search criteria: "%s"`
)

// Row is one rendered record. Cells hold the markup-escaped id, first name,
// last name, email and role; Employee keeps the raw values.
type Row struct {
	Employee   domain.Employee
	Cells      [5]string
	EditPath   string
	DeletePath string
	// Confirm is the escaped delete confirmation question.
	Confirm string
}

// EmptyState is the placeholder shown instead of rows.
type EmptyState struct {
	Title      string
	Detail     string
	DetailHTML string
	Colspan    int
}

// Table is the display structure for a record sequence. Exactly one of Rows
// and Empty is set.
type Table struct {
	Rows  []Row
	Empty *EmptyState
}

// BuildTable maps records to rows. With no records it produces the "no
// employees" placeholder, or the "no match" placeholder when term is set.
func BuildTable(records []domain.Employee, term string) Table {
	if len(records) == 0 {
		es := &EmptyState{Title: EmptyTitle, Detail: EmptyNoData, Colspan: Columns}
		if term != "" {
			es.Detail = fmt.Sprintf(EmptyNoMatchF, term)
		}
		es.DetailHTML = templ.EscapeString(es.Detail)
		return Table{Empty: es}
	}

	rows := make([]Row, 0, len(records))
	for _, e := range records {
		id := itoa(e.ID)
		rows = append(rows, Row{
			Employee: e,
			Cells: [5]string{
				id,
				templ.EscapeString(e.FirstName),
				templ.EscapeString(e.LastName),
				templ.EscapeString(e.Email),
				templ.EscapeString(e.Role),
			},
			EditPath:   "/employees/" + id + "/edit",
			DeletePath: "/employees/" + id + "?confirmed=true",
			Confirm:    templ.EscapeString(console.DeletePrompt(e)),
		})
	}
	return Table{Rows: rows}
}

// TableBody renders the <tbody> contents for t. Action buttons address the
// record by its id path; no script is built from record data.
func TableBody(t Table) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if t.Empty != nil {
			_, err := fmt.Fprintf(w,
				`<tr><td colspan="%d" class="empty-state"><h3>%s</h3><p>%s</p></td></tr>`+"\n",
				t.Empty.Colspan, templ.EscapeString(t.Empty.Title), t.Empty.DetailHTML)
			return err
		}
		for _, r := range t.Rows {
			_, err := fmt.Fprintf(w,
				`<tr data-id="%s"><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>`+
					`<td class="actions">`+
					`<button class="btn btn-primary action-btn" hx-get="%s" hx-target="#console" hx-swap="outerHTML">Edit</button> `+
					`<button class="btn btn-danger action-btn" hx-delete="%s" hx-confirm="%s" hx-target="#console" hx-swap="outerHTML">Delete</button>`+
					`</td></tr>`+"\n",
				r.Cells[0], r.Cells[0], r.Cells[1], r.Cells[2], r.Cells[3], r.Cells[4],
				r.EditPath, templ.EscapeString(r.DeletePath), r.Confirm)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// TableText writes t as an aligned plain-text table.
func TableText(w io.Writer, t Table) error {
	if t.Empty != nil {
		_, err := fmt.Fprintf(w, "%s\n%s\n", t.Empty.Title, t.Empty.Detail)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFIRST NAME\tLAST NAME\tEMAIL\tROLE")
	for _, r := range t.Rows {
		e := r.Employee
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", e.ID, e.FirstName, e.LastName, e.Email, e.Role)
	}
	return tw.Flush()
}
