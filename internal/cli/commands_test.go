package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqliteadapter "github.com/csg33k/employee-console/internal/adapters/sqlite"
	"github.com/csg33k/employee-console/internal/console"
	"github.com/csg33k/employee-console/internal/domain"
	"github.com/csg33k/employee-console/internal/restapi"
)

// backend starts the reference REST API on a temp SQLite file, seeded with
// the given drafts.
func backend(t *testing.T, seed ...domain.EmployeeDraft) string {
	t.Helper()
	repo, err := sqliteadapter.New(filepath.Join(t.TempDir(), "cli.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	require.NoError(t, repo.Migrate(context.Background()))
	for _, d := range seed {
		_, err := repo.CreateEmployee(context.Background(), d)
		require.NoError(t, err)
	}

	srv := httptest.NewServer(restapi.New(repo, nil).Routes())
	t.Cleanup(srv.Close)
	return srv.URL
}

type result struct {
	stdout, stderr string
	err            error
}

func execute(t *testing.T, baseURL, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--base-url", baseURL}, args...))
	err := cmd.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

var (
	annDraft = domain.EmployeeDraft{FirstName: "Ann", LastName: "Lee", Email: "ann@x.com", Role: "Eng"}
	bobDraft = domain.EmployeeDraft{FirstName: "Bob", LastName: "Ray", Email: "bob@x.com", Role: "Ops"}
)

// ── list / search ────────────────────────────────────────────────────────────

func TestList_Text(t *testing.T) {
	url := backend(t, annDraft, bobDraft)

	r := execute(t, url, "", "list")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "FIRST NAME")
	assert.Contains(t, r.stdout, "ann@x.com")
	assert.Contains(t, r.stdout, "bob@x.com")
}

func TestList_EmptyPlaceholder(t *testing.T) {
	r := execute(t, backend(t), "", "list")
	require.NoError(t, r.err)
	assert.Equal(t, "No employees found\nAdd your first employee using the form.\n", r.stdout)
}

func TestList_JSON(t *testing.T) {
	url := backend(t, annDraft)

	r := execute(t, url, "", "--format", "json", "list")
	require.NoError(t, r.err)

	var resp struct {
		Status string      `json:"status"`
		Data   TableResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Data.Total)
	require.Len(t, resp.Data.Employees, 1)
	assert.Equal(t, "Ann", resp.Data.Employees[0].FirstName)
}

func TestSearch(t *testing.T) {
	url := backend(t, annDraft, bobDraft)

	r := execute(t, url, "", "search", "OPS")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "bob@x.com")
	assert.NotContains(t, r.stdout, "ann@x.com")

	r = execute(t, url, "", "search", "nobody", "here")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, `No employees match your search criteria: "nobody here"`)
}

func TestBackendDown(t *testing.T) {
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()

	r := execute(t, url, "", "list")
	require.Error(t, r.err)
	assert.Equal(t, ExitFailure, GetExitCode(r.err))
	assert.Contains(t, r.stderr, "Error [E003]: "+console.MsgLoadFailed)
}

// ── add / update ─────────────────────────────────────────────────────────────

func TestAdd(t *testing.T) {
	url := backend(t)

	r := execute(t, url, "", "add", "--first", " Ann ", "--last", "Lee", "--email", "ann@x.com", "--role", "Eng")
	require.NoError(t, r.err)
	assert.Equal(t, console.MsgAdded+"\n", r.stdout)

	r = execute(t, url, "", "list")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Ann")
}

func TestAdd_Validation(t *testing.T) {
	url := backend(t)

	r := execute(t, url, "", "add", "--first", "Ann", "--last", "Lee", "--email", "a@b", "--role", "Eng")
	require.Error(t, r.err)
	assert.Equal(t, ExitFailure, GetExitCode(r.err))
	assert.Contains(t, r.stderr, "Error [E004]: "+console.MsgInvalidEmail)

	r = execute(t, url, "", "add", "--first", "Ann")
	require.Error(t, r.err)
	assert.Contains(t, r.stderr, console.MsgMissingFields)
}

func TestUpdate_KeepsUnsetFields(t *testing.T) {
	url := backend(t, annDraft)

	r := execute(t, url, "", "update", "1", "--role", "Lead")
	require.NoError(t, r.err)
	assert.Equal(t, console.MsgUpdated+"\n", r.stdout)

	r = execute(t, url, "", "--format", "json", "list")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, `"role":"Lead"`)
	assert.Contains(t, r.stdout, `"email":"ann@x.com"`)
}

func TestUpdate_UnknownAndInvalidID(t *testing.T) {
	url := backend(t, annDraft)

	r := execute(t, url, "", "update", "9", "--role", "Lead")
	require.Error(t, r.err)
	assert.Equal(t, ExitFailure, GetExitCode(r.err))
	assert.Contains(t, r.stderr, "Error [E005]: "+console.MsgNotFound)

	r = execute(t, url, "", "update", "abc")
	require.Error(t, r.err)
	assert.Equal(t, ExitCommandError, GetExitCode(r.err))
}

// ── delete ───────────────────────────────────────────────────────────────────

func TestDelete_Prompt(t *testing.T) {
	url := backend(t, annDraft, bobDraft)

	r := execute(t, url, "n\n", "delete", "1")
	require.NoError(t, r.err)
	assert.Equal(t, MsgDeleteCancelled+"\n", r.stdout)
	assert.Contains(t, r.stderr, "Are you sure you want to delete Ann Lee? [y/N]: ")

	r = execute(t, url, "", "delete", "1")
	require.NoError(t, r.err)
	assert.Equal(t, MsgDeleteCancelled+"\n", r.stdout, "no answer is a refusal")

	r = execute(t, url, "yes\n", "delete", "1")
	require.NoError(t, r.err)
	assert.Equal(t, console.MsgDeleted+"\n", r.stdout)

	r = execute(t, url, "", "list")
	require.NoError(t, r.err)
	assert.NotContains(t, r.stdout, "ann@x.com")
	assert.Contains(t, r.stdout, "bob@x.com")
}

func TestDelete_YesFlagAndUnknown(t *testing.T) {
	url := backend(t, annDraft)

	r := execute(t, url, "", "delete", "--yes", "1")
	require.NoError(t, r.err)
	assert.Equal(t, console.MsgDeleted+"\n", r.stdout)

	r = execute(t, url, "", "delete", "-y", "1")
	require.Error(t, r.err)
	assert.Contains(t, r.stderr, console.MsgNotFound)
}

// ── export ───────────────────────────────────────────────────────────────────

func TestExport(t *testing.T) {
	url := backend(t, annDraft, bobDraft)
	file := filepath.Join(t.TempDir(), "roster.pdf")

	r := execute(t, url, "", "export", "-o", file, "--search", "bob")
	require.NoError(t, r.err)
	assert.Equal(t, "Wrote 1 employee(s) to "+file+"\n", r.stdout)

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
}

func TestExport_Stdout(t *testing.T) {
	r := execute(t, backend(t, annDraft), "", "export", "-o", "-")
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.stdout, "%PDF-"))
}
