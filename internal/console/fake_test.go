package console

import (
	"context"
	"sync"
	"time"

	"github.com/csg33k/employee-console/internal/domain"
)

type call struct {
	Op    string
	ID    int64
	Draft domain.EmployeeDraft
}

// fakeAPI is an in-memory backend that assigns ids from 1 and records calls.
type fakeAPI struct {
	mu        sync.Mutex
	employees []domain.Employee
	nextID    int64
	calls     []call

	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func newFakeAPI(seed ...domain.Employee) *fakeAPI {
	f := &fakeAPI{nextID: 1}
	for _, e := range seed {
		f.employees = append(f.employees, e)
		if e.ID >= f.nextID {
			f.nextID = e.ID + 1
		}
	}
	return f
}

func (f *fakeAPI) record(c call) {
	f.calls = append(f.calls, c)
}

func (f *fakeAPI) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func (f *fakeAPI) ops() []string {
	var out []string
	for _, c := range f.Calls() {
		out = append(out, c.Op)
	}
	return out
}

func (f *fakeAPI) List(_ context.Context) ([]domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(call{Op: "list"})
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Employee{}, f.employees...), nil
}

func (f *fakeAPI) Create(_ context.Context, d domain.EmployeeDraft) (*domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(call{Op: "create", Draft: d})
	if f.createErr != nil {
		return nil, f.createErr
	}
	e := domain.Employee{ID: f.nextID, FirstName: d.FirstName, LastName: d.LastName, Email: d.Email, Role: d.Role}
	f.nextID++
	f.employees = append(f.employees, e)
	return &e, nil
}

func (f *fakeAPI) Update(_ context.Context, id int64, d domain.EmployeeDraft) (*domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(call{Op: "update", ID: id, Draft: d})
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i, e := range f.employees {
		if e.ID == id {
			f.employees[i] = domain.Employee{ID: id, FirstName: d.FirstName, LastName: d.LastName, Email: d.Email, Role: d.Role}
			out := f.employees[i]
			return &out, nil
		}
	}
	return nil, &domain.NotFoundError{ID: id}
}

func (f *fakeAPI) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(call{Op: "delete", ID: id})
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, e := range f.employees {
		if e.ID == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return &domain.NotFoundError{ID: id}
}

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time { return s.now }

func (s *stubClock) Advance(d time.Duration) { s.now = s.now.Add(d) }

func newStubClock() *stubClock {
	return &stubClock{now: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)}
}
