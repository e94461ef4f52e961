// Package restapi is the reference REST backend for the console: the
// /api/employees collection served from an EmployeeRepository.
package restapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/csg33k/employee-console/internal/domain"
	"github.com/csg33k/employee-console/internal/ports"
)

const (
	BasePath        = "/api/employees"
	RequestIDHeader = "X-Request-ID"

	// maxBody caps request bodies; an employee draft is a few hundred bytes.
	maxBody = 64 << 10
)

type Handler struct {
	repo ports.EmployeeRepository
	log  *slog.Logger
}

// New returns a handler over repo. A nil logger means slog.Default().
func New(repo ports.EmployeeRepository, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{repo: repo, log: logger}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+BasePath, h.list)
	mux.HandleFunc("POST "+BasePath, h.create)
	mux.HandleFunc("GET "+BasePath+"/{id}", h.get)
	mux.HandleFunc("PUT "+BasePath+"/{id}", h.update)
	mux.HandleFunc("DELETE "+BasePath+"/{id}", h.delete)
	return h.logRequests(mux)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	employees, err := h.repo.ListEmployees(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	e, err := h.repo.GetEmployee(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	d, ok := decodeDraft(w, r)
	if !ok {
		return
	}
	e, err := h.repo.CreateEmployee(r.Context(), d)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("%s/%d", BasePath, e.ID))
	writeJSON(w, http.StatusCreated, e)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	d, ok := decodeDraft(w, r)
	if !ok {
		return
	}
	e, err := h.repo.UpdateEmployee(r.Context(), id, d)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.repo.DeleteEmployee(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeDraft reads and validates the request body. It writes the error
// response itself and reports false when the handler should stop.
func decodeDraft(w http.ResponseWriter, r *http.Request) (domain.EmployeeDraft, bool) {
	var d domain.EmployeeDraft
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	if err := dec.Decode(&d); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return d, false
	}
	d = d.Trimmed()
	if err := d.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return d, false
	}
	return d, true
}

// fail maps repository errors to a status: NotFoundError is 404, anything
// else is logged and returned as 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		writeError(w, http.StatusNotFound, nf.Error())
		return
	}
	h.log.Error("repository error", "method", r.Method, "path", r.URL.Path,
		"request_id", r.Header.Get(RequestIDHeader), "err", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

// statusWriter records the status code for the access log.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

// logRequests echoes the caller's request id, minting one when absent, and
// writes one log line per request.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if reqID == "" {
			reqID = uuid.NewString()
			r.Header.Set(RequestIDHeader, reqID)
		}
		w.Header().Set(RequestIDHeader, reqID)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r)
		h.log.Info("request", "method", r.Method, "path", r.URL.Path,
			"status", sw.status, "request_id", reqID, "duration", time.Since(start))
	})
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func pathID(r *http.Request, key string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(key), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be positive: %d", id)
	}
	return id, nil
}
