package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/csg33k/employee-console/internal/domain"
	"github.com/csg33k/employee-console/internal/ports"
)

//go:embed schema.sql
var schema string

type Repository struct {
	db *sql.DB
}

var _ ports.EmployeeRepository = (*Repository)(nil)

// New opens the SQLite database. In deployed environments the schema is
// managed by dbmate (db/migrations); call Migrate for local runs and tests.
func New(dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dsn+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	// One writer keeps SQLite from returning SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)
	return &Repository{db: db}, nil
}

// Migrate creates the employees table if it does not exist.
func (r *Repository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// ── Employees ─────────────────────────────────────────────────────────────────

func (r *Repository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, email, role
		FROM employees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Role); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repository) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	e := &domain.Employee{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, role
		FROM employees WHERE id=?`, id).Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Role,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{ID: id}
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *Repository) CreateEmployee(ctx context.Context, d domain.EmployeeDraft) (*domain.Employee, error) {
	now := time.Now()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO employees (first_name, last_name, email, role, created_at, updated_at)
		VALUES (?,?,?,?,?,?)`,
		d.FirstName, d.LastName, d.Email, d.Role, now, now,
	)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &domain.Employee{
		ID:        id,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Role:      d.Role,
	}, nil
}

func (r *Repository) UpdateEmployee(ctx context.Context, id int64, d domain.EmployeeDraft) (*domain.Employee, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE employees SET first_name=?, last_name=?, email=?, role=?, updated_at=?
		WHERE id=?`,
		d.FirstName, d.LastName, d.Email, d.Role, time.Now(), id,
	)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, &domain.NotFoundError{ID: id}
	}
	return &domain.Employee{
		ID:        id,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Role:      d.Role,
	}, nil
}

func (r *Repository) DeleteEmployee(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{ID: id}
	}
	return nil
}
