package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/csg33k/employee-console/internal/domain"
	"github.com/csg33k/employee-console/internal/ports"
)

// User-facing status messages.
const (
	MsgLoaded        = "Loaded %d employees"
	MsgLoadFailed    = "Error loading employees. Please check if the server is running."
	MsgMissingFields = "Please fill in all required fields."
	MsgInvalidEmail  = "Please enter a valid email address."
	MsgAdded         = "Employee added successfully!"
	MsgUpdated       = "Employee updated successfully!"
	MsgSaveFailed    = "Error saving employee. Please try again."
	MsgNotFound      = "Employee not found!"
	MsgEditReady     = "Ready to edit employee. Make your changes and click Update."
	MsgDeleted       = "Employee deleted successfully!"
	MsgDeleteFailed  = "Error deleting employee. Please try again."
)

// ErrDeclined is returned by Delete when the confirmation was refused.
var ErrDeclined = errors.New("console: delete not confirmed")

// Confirmer asks the user whether e should be deleted.
type Confirmer func(e domain.Employee) bool

// DeletePrompt is the question a Confirmer should put to the user.
func DeletePrompt(e domain.Employee) string {
	return fmt.Sprintf("Are you sure you want to delete %s %s?", e.FirstName, e.LastName)
}

// View is a snapshot of everything a front end needs to render.
type View struct {
	// Records is what the table shows: the store, a filtered subset of it,
	// or nothing after a failed load.
	Records     []domain.Employee
	Term        string
	StoreSize   int
	Mode        Mode
	EditingID   int64
	Form        domain.EmployeeDraft
	SubmitLabel string
	Status      Status
	HasStatus   bool
	// StatusRemaining is how long the visible status has left.
	StatusRemaining time.Duration
	Loading         bool
}

// Controller owns the console state. State is guarded by mu, which is never
// held across an API call: two overlapping submissions are both sent.
type Controller struct {
	api      ports.EmployeeAPI
	notifier *Notifier
	log      *slog.Logger

	mu      sync.Mutex
	store   Store
	session Session
	form    domain.EmployeeDraft
	visible []domain.Employee
	term    string

	inflight atomic.Int32
}

// NewController wires a controller to the API. A nil notifier gets the
// default TTL; a nil logger means slog.Default().
func NewController(api ports.EmployeeAPI, notifier *Notifier, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = NewNotifier(DefaultStatusTTL, nil, logger)
	}
	return &Controller{api: api, notifier: notifier, log: logger}
}

func (c *Controller) Notifier() *Notifier { return c.notifier }

// startLoading marks a network action in flight. The returned func must be
// deferred so the indicator clears on every path.
func (c *Controller) startLoading() func() {
	c.inflight.Add(1)
	return func() { c.inflight.Add(-1) }
}

// Reload fetches the full list and replaces the store. The search term is
// dropped. On failure the store is kept but the table is forced empty.
func (c *Controller) Reload(ctx context.Context) error {
	done := c.startLoading()
	defer done()

	records, err := c.api.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.term = ""
	if err != nil {
		c.visible = nil
		c.log.Error("error loading employees", "err", err)
		c.notifier.Notify(MsgLoadFailed, KindError)
		return err
	}
	c.store.Replace(records)
	c.visible = c.store.All()
	c.notifier.Notify(fmt.Sprintf(MsgLoaded, c.store.Len()), KindSuccess)
	return nil
}

// Submit validates the form input and creates or updates depending on the
// session. Only success resets the session to Creating and reloads; on any
// failure the form keeps the user's input and the session is unchanged.
func (c *Controller) Submit(ctx context.Context, input domain.EmployeeDraft) error {
	c.mu.Lock()
	c.form = input
	session := c.session
	c.mu.Unlock()

	draft := input.Trimmed()
	if err := draft.Validate(); err != nil {
		c.notifier.Notify(validationMessage(err), KindError)
		return err
	}

	done := c.startLoading()
	defer done()

	var err error
	if id, editing := session.Target(); editing {
		_, err = c.api.Update(ctx, id, draft)
		if err == nil {
			c.notifier.Notify(MsgUpdated, KindSuccess)
		}
	} else {
		_, err = c.api.Create(ctx, draft)
		if err == nil {
			c.notifier.Notify(MsgAdded, KindSuccess)
		}
	}
	if err != nil {
		c.log.Error("error saving employee", "mode", session.Mode().String(), "err", err)
		if domain.IsNotFound(err) {
			c.notifier.Notify(MsgNotFound, KindError)
		} else {
			c.notifier.Notify(MsgSaveFailed, KindError)
		}
		return err
	}

	c.mu.Lock()
	c.resetFormLocked()
	c.mu.Unlock()

	return c.Reload(ctx)
}

func validationMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) && ve.Reason == domain.ReasonInvalidEmail {
		return MsgInvalidEmail
	}
	return MsgMissingFields
}

// BeginEdit moves the session to Editing(id) and fills the form from the
// store. An id not in the store leaves everything unchanged.
func (c *Controller) BeginEdit(id int64) error {
	c.mu.Lock()
	e, ok := c.store.Find(id)
	if ok {
		c.session = Editing(id)
		c.form = e.Draft()
	}
	c.mu.Unlock()

	if !ok {
		c.notifier.Notify(MsgNotFound, KindError)
		return &domain.NotFoundError{ID: id}
	}
	c.notifier.Notify(MsgEditReady, KindInfo)
	return nil
}

// Cancel returns to Creating, clears the form and the search term and shows
// the whole store again.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetFormLocked()
	c.term = ""
	c.visible = c.store.All()
}

// Escape is the keyboard shortcut for Cancel.
func (c *Controller) Escape() { c.Cancel() }

func (c *Controller) resetFormLocked() {
	c.session = Creating()
	c.form = domain.EmployeeDraft{}
}

// Search narrows the table to records matching term and returns how many
// matched. The store is untouched. The term is kept as typed, trimmed, for
// display; only matching folds it.
func (c *Controller) Search(term string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.term = strings.TrimSpace(term)
	c.visible = Filter(c.store.All(), c.term)
	return len(c.visible)
}

// Delete removes id after confirm agrees, then reloads. Declining returns
// ErrDeclined without any network call.
func (c *Controller) Delete(ctx context.Context, id int64, confirm Confirmer) error {
	c.mu.Lock()
	e, ok := c.store.Find(id)
	c.mu.Unlock()
	if !ok {
		c.notifier.Notify(MsgNotFound, KindError)
		return &domain.NotFoundError{ID: id}
	}
	if confirm == nil || !confirm(e) {
		return ErrDeclined
	}

	done := c.startLoading()
	defer done()

	if err := c.api.Delete(ctx, id); err != nil {
		c.log.Error("error deleting employee", "id", id, "err", err)
		if domain.IsNotFound(err) {
			c.notifier.Notify(MsgNotFound, KindError)
		} else {
			c.notifier.Notify(MsgDeleteFailed, KindError)
		}
		return err
	}
	c.notifier.Notify(MsgDeleted, KindSuccess)
	return c.Reload(ctx)
}

// Loading reports whether any network action is in flight.
func (c *Controller) Loading() bool { return c.inflight.Load() > 0 }

// View returns a snapshot of the current state.
func (c *Controller) View() View {
	c.mu.Lock()
	v := View{
		Records:     append([]domain.Employee(nil), c.visible...),
		Term:        c.term,
		StoreSize:   c.store.Len(),
		Mode:        c.session.Mode(),
		Form:        c.form,
		SubmitLabel: c.session.SubmitLabel(),
	}
	v.EditingID, _ = c.session.Target()
	c.mu.Unlock()

	v.Status, v.HasStatus = c.notifier.Current()
	if v.HasStatus {
		v.StatusRemaining = v.Status.ExpiresAt.Sub(c.notifier.clock.Now())
	}
	v.Loading = c.Loading()
	return v
}
