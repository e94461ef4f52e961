package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/csg33k/employee-console/internal/adapters/pdf"
)

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		output string
		term   string
		title  string
	)
	cmd := &cobra.Command{
		Use:           "export",
		Short:         "Write a PDF roster",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), rootOpts, cmd)
			if err != nil {
				return err
			}
			if term != "" {
				s.ctrl.Search(term)
			}
			rows := s.ctrl.View().Records

			var buf bytes.Buffer
			if err := (&pdf.Exporter{}).Export(cmd.Context(), title, rows, &buf); err != nil {
				s.out.Error(ErrCodeWriteFail, err.Error(), nil)
				return WrapExitError(ExitFailure, "rendering roster", err)
			}
			if output == "-" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				s.out.Error(ErrCodeWriteFail, err.Error(), nil)
				return WrapExitError(ExitFailure, "writing roster", err)
			}
			return s.out.Success(map[string]any{"file": output, "rows": len(rows)}, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Wrote %d employee(s) to %s\n", len(rows), output)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "employees.pdf", `output file ("-" for stdout)`)
	cmd.Flags().StringVar(&term, "search", "", "only export employees matching this term")
	cmd.Flags().StringVar(&title, "title", "Employee Roster", "roster heading")
	return cmd
}
