package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqliteadapter "github.com/csg33k/employee-console/internal/adapters/sqlite"
	"github.com/csg33k/employee-console/internal/domain"
)

func newRepo(t *testing.T) *sqliteadapter.Repository {
	t.Helper()
	repo, err := sqliteadapter.New(filepath.Join(t.TempDir(), "employees.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	require.NoError(t, repo.Migrate(context.Background()))
	return repo
}

func TestRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	list, err := repo.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list, "empty table lists as an empty slice")

	ann, err := repo.CreateEmployee(ctx, domain.EmployeeDraft{FirstName: "Ann", LastName: "Lee", Email: "ann@x.com", Role: "Eng"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), ann.ID)

	bob, err := repo.CreateEmployee(ctx, domain.EmployeeDraft{FirstName: "Bob", LastName: "Ray", Email: "bob@x.com", Role: "Ops"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), bob.ID)

	got, err := repo.GetEmployee(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, *ann, *got)

	updated, err := repo.UpdateEmployee(ctx, ann.ID, domain.EmployeeDraft{FirstName: "Ann", LastName: "Lee", Email: "ann@x.com", Role: "Lead"})
	require.NoError(t, err)
	assert.Equal(t, "Lead", updated.Role)

	list, err = repo.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Lead", list[0].Role)
	assert.Equal(t, "Bob", list[1].FirstName)

	require.NoError(t, repo.DeleteEmployee(ctx, ann.ID))
	list, err = repo.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Employee{*bob}, list)
}

func TestRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.GetEmployee(ctx, 42)
	assert.True(t, domain.IsNotFound(err))

	_, err = repo.UpdateEmployee(ctx, 42, domain.EmployeeDraft{FirstName: "A", LastName: "B", Email: "a@b.c", Role: "R"})
	assert.True(t, domain.IsNotFound(err))

	err = repo.DeleteEmployee(ctx, 42)
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, int64(42), nf.ID)
}

func TestRepository_MigrateIsIdempotent(t *testing.T) {
	repo := newRepo(t)
	assert.NoError(t, repo.Migrate(context.Background()))
}
