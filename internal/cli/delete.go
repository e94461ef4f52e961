package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/csg33k/employee-console/internal/console"
	"github.com/csg33k/employee-console/internal/domain"
)

// MsgDeleteCancelled is printed when the prompt is declined.
const MsgDeleteCancelled = "Delete cancelled."

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee",
		Long: `Delete an employee after confirmation. Without --yes the command asks
"Are you sure you want to delete <first> <last>?" and reads the answer
from stdin.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				newFormatter(rootOpts, cmd).Error(ErrCodeGeneric, err.Error(), nil)
				return WrapExitError(ExitCommandError, "invalid id", err)
			}
			s, err := openSession(cmd.Context(), rootOpts, cmd)
			if err != nil {
				return err
			}

			confirm := promptConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr())
			if yes {
				confirm = func(domain.Employee) bool { return true }
			}
			err = s.ctrl.Delete(cmd.Context(), id, confirm)
			switch {
			case errors.Is(err, console.ErrDeclined):
				return s.out.Message(MsgDeleteCancelled)
			case err != nil:
				return s.fail(err)
			}
			return s.out.Message(console.MsgDeleted)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// promptConfirmer asks on w and accepts "y" or "yes" from r.
func promptConfirmer(r io.Reader, w io.Writer) console.Confirmer {
	return func(e domain.Employee) bool {
		fmt.Fprintf(w, "%s [y/N]: ", console.DeletePrompt(e))
		line, err := bufio.NewReader(r).ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	}
}
