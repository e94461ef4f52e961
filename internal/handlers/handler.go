package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/csg33k/employee-console/internal/console"
	"github.com/csg33k/employee-console/internal/domain"
	"github.com/csg33k/employee-console/internal/ports"
	"github.com/csg33k/employee-console/internal/templates"
)

// RosterTitle heads the exported PDF.
const RosterTitle = "Employee Roster"

type Handler struct {
	ctrl     *console.Controller
	exporter ports.RosterExporter
	log      *slog.Logger
}

func New(ctrl *console.Controller, exporter ports.RosterExporter, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{ctrl: ctrl, exporter: exporter, log: logger}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("GET /table", h.table)
	mux.HandleFunc("GET /status", h.status)
	mux.HandleFunc("POST /employees", h.submit)
	mux.HandleFunc("GET /employees/{id}/edit", h.beginEdit)
	mux.HandleFunc("DELETE /employees/{id}", h.deleteEmployee)
	mux.HandleFunc("POST /cancel", h.cancel)
	mux.HandleFunc("POST /escape", h.escape)
	mux.HandleFunc("POST /reload", h.reload)
	mux.HandleFunc("GET /search", h.search)
	mux.HandleFunc("GET /export.pdf", h.exportPDF)
	return mux
}

// index rebuilds state from the backend on every page load.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.Reload(r.Context()); err != nil {
		h.log.Debug("reload failed", "err", err)
	}
	render(w, r, templates.Page(h.ctrl.View()))
}

// table renders only the table body for the current term (search swaps it in).
func (h *Handler) table(w http.ResponseWriter, r *http.Request) {
	v := h.ctrl.View()
	render(w, r, templates.TableBody(templates.BuildTable(v.Records, v.Term)))
}

// status re-renders the status area; an expired message renders empty.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	render(w, r, templates.Status(h.ctrl.View()))
}

// Action handlers always answer 200 with the #console fragment: failures are
// reported through the status area, not the HTTP status.

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	input := domain.EmployeeDraft{
		FirstName: r.FormValue("firstName"),
		LastName:  r.FormValue("lastName"),
		Email:     r.FormValue("email"),
		Role:      r.FormValue("role"),
	}
	if err := h.ctrl.Submit(r.Context(), input); err != nil {
		h.log.Debug("submit rejected", "err", err)
	}
	h.renderConsole(w, r)
}

func (h *Handler) beginEdit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", 400)
		return
	}
	if err := h.ctrl.BeginEdit(id); err != nil {
		h.log.Debug("begin edit rejected", "id", id, "err", err)
	}
	h.renderConsole(w, r)
}

// deleteEmployee only proceeds when the browser confirmed via hx-confirm,
// which the row button signals with ?confirmed=true.
func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", 400)
		return
	}
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirmed"))
	err = h.ctrl.Delete(r.Context(), id, func(domain.Employee) bool { return confirmed })
	if err != nil && !errors.Is(err, console.ErrDeclined) {
		h.log.Debug("delete failed", "id", id, "err", err)
	}
	h.renderConsole(w, r)
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	h.ctrl.Cancel()
	h.renderConsole(w, r)
}

func (h *Handler) escape(w http.ResponseWriter, r *http.Request) {
	h.ctrl.Escape()
	h.renderConsole(w, r)
}

func (h *Handler) reload(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.Reload(r.Context()); err != nil {
		h.log.Debug("reload failed", "err", err)
	}
	h.renderConsole(w, r)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	h.ctrl.Search(r.URL.Query().Get("q"))
	h.table(w, r)
}

func (h *Handler) exportPDF(w http.ResponseWriter, r *http.Request) {
	rows := h.ctrl.View().Records
	var buf bytes.Buffer
	if err := h.exporter.Export(r.Context(), RosterTitle, rows, &buf); err != nil {
		h.log.Error("roster export failed", "err", err)
		http.Error(w, err.Error(), 500)
		return
	}
	filename := fmt.Sprintf("employees_%s.pdf", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.log.Error("roster download interrupted", "err", err)
	}
}

func (h *Handler) renderConsole(w http.ResponseWriter, r *http.Request) {
	render(w, r, templates.Console(h.ctrl.View()))
}

// render writes a templ component to the response.
func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), 500)
	}
}

func pathID(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(r.PathValue(key), 10, 64)
}
