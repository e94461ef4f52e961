package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/csg33k/employee-console/internal/console"
	"github.com/csg33k/employee-console/internal/domain"
	"github.com/csg33k/employee-console/internal/templates"
)

// TableResult is the JSON payload of list and search.
type TableResult struct {
	Term      string            `json:"term,omitempty"`
	Total     int               `json:"total"`
	Employees []domain.Employee `json:"employees"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List all employees",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), rootOpts, cmd)
			if err != nil {
				return err
			}
			return s.printTable(s.ctrl.View())
		},
	}
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>...",
		Short: "Show employees matching a term",
		Long: `Show employees whose first name, last name, email or role contains the
term (case-insensitive), or whose id contains it as digits. Multiple
arguments are joined with spaces.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), rootOpts, cmd)
			if err != nil {
				return err
			}
			n := s.ctrl.Search(strings.Join(args, " "))
			s.out.VerboseLog("%d match(es)", n)
			return s.printTable(s.ctrl.View())
		},
	}
}

func (s *session) printTable(v console.View) error {
	records := v.Records
	if records == nil {
		records = []domain.Employee{}
	}
	res := TableResult{Term: v.Term, Total: v.StoreSize, Employees: records}
	return s.out.Success(res, func(w io.Writer) error {
		return templates.TableText(w, templates.BuildTable(v.Records, v.Term))
	})
}
