// Package pdf renders a printable employee roster. Rows are laid out in the
// order given, one line each, with the header repeated on every page.
package pdf

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/csg33k/employee-console/internal/domain"
	"github.com/csg33k/employee-console/internal/ports"
)

type Exporter struct {
	// Now stamps the generation time in the header; nil means time.Now.
	Now func() time.Time
}

var _ ports.RosterExporter = (*Exporter)(nil)

// column widths in mm for a Letter page with 18mm margins
var (
	colTitles = []string{"ID", "First Name", "Last Name", "Email", "Role"}
	colWidths = []float64{14, 32, 32, 62, 39.9}
)

const rowH = 6.5

// Export writes the roster PDF to w.
func (x *Exporter) Export(ctx context.Context, title string, rows []domain.Employee, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := time.Now
	if x.Now != nil {
		now = x.Now
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("{nb}")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	stamp := now().Format("Jan 02, 2006 15:04")

	pdf.SetHeaderFunc(func() {
		drawHeader(pdf, tr(title), stamp, len(rows))
	})
	pdf.AddPage()

	if len(rows) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(sum(colWidths), rowH, "No employees found", "1", 1, "C", false, 0, "")
		return pdf.Output(w)
	}

	pdf.SetFont("Helvetica", "", 8.5)
	for i, e := range rows {
		// Alternating row background
		if i%2 == 0 {
			pdf.SetFillColor(250, 250, 250)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		cells := []string{fmt.Sprint(e.ID), e.FirstName, e.LastName, e.Email, e.Role}
		for c, text := range cells {
			ln := 0
			if c == len(cells)-1 {
				ln = 1
			}
			pdf.CellFormat(colWidths[c], rowH, fit(pdf, tr(text), colWidths[c]), "1", ln, "L", true, 0, "")
		}
	}
	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func drawHeader(pdf *fpdf.Fpdf, title, stamp string, count int) {
	pageW, _ := pdf.GetPageSize()
	marginL, marginT, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	// ── Header bar ───────────────────────────────────────────────────────────
	pdf.SetFillColor(30, 30, 30)
	pdf.Rect(marginL, marginT, contentW, 10, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginL+2, marginT+1.5)
	pdf.CellFormat(contentW-40, 7, title, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(36, 7, "Page "+fmt.Sprint(pdf.PageNo())+" of {nb}", "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(marginL, marginT+12)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("%d employee(s) - generated %s", count, stamp), "", 1, "L", false, 0, "")

	// ── Column header ────────────────────────────────────────────────────────
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 8.5)
	pdf.SetX(marginL)
	for i, t := range colTitles {
		ln := 0
		if i == len(colTitles)-1 {
			ln = 1
		}
		pdf.CellFormat(colWidths[i], 7, t, "1", ln, "L", true, 0, "")
	}
	pdf.SetFont("Helvetica", "", 8.5)
}

// fit truncates s with an ellipsis so it stays inside a cell of width w.
func fit(pdf *fpdf.Fpdf, s string, w float64) string {
	const pad = 2
	if pdf.GetStringWidth(s) <= w-pad {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > w-pad {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

func sum(xs []float64) float64 {
	var t float64
	for _, x := range xs {
		t += x
	}
	return t
}
