package ports

import (
	"context"
	"io"

	"github.com/csg33k/employee-console/internal/domain"
)

// EmployeeAPI is the console's view of the REST backend.
// Failures are *domain.NotFoundError or *domain.NetworkError; nothing is retried.
type EmployeeAPI interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Create(ctx context.Context, d domain.EmployeeDraft) (*domain.Employee, error)
	Update(ctx context.Context, id int64, d domain.EmployeeDraft) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

// EmployeeRepository defines persistence operations for the reference backend.
// Get, Update and Delete return *domain.NotFoundError for unknown ids.
type EmployeeRepository interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*domain.Employee, error)
	CreateEmployee(ctx context.Context, d domain.EmployeeDraft) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, d domain.EmployeeDraft) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}

// RosterExporter defines the document output port.
type RosterExporter interface {
	// Export writes a printable roster of rows, in the given order, to w.
	Export(ctx context.Context, title string, rows []domain.Employee, w io.Writer) error
}
