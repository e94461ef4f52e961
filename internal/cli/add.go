package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/csg33k/employee-console/internal/console"
	"github.com/csg33k/employee-console/internal/domain"
)

// draftFlags binds one flag per mutable employee field.
type draftFlags struct {
	domain.EmployeeDraft
}

func (d *draftFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&d.FirstName, "first", "", "first name")
	cmd.Flags().StringVar(&d.LastName, "last", "", "last name")
	cmd.Flags().StringVar(&d.Email, "email", "", "email address")
	cmd.Flags().StringVar(&d.Role, "role", "", "role")
}

// overlay copies the flags the user actually set onto base.
func (d *draftFlags) overlay(cmd *cobra.Command, base domain.EmployeeDraft) domain.EmployeeDraft {
	if cmd.Flags().Changed("first") {
		base.FirstName = d.FirstName
	}
	if cmd.Flags().Changed("last") {
		base.LastName = d.LastName
	}
	if cmd.Flags().Changed("email") {
		base.Email = d.Email
	}
	if cmd.Flags().Changed("role") {
		base.Role = d.Role
	}
	return base
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &draftFlags{}
	cmd := &cobra.Command{
		Use:           "add --first NAME --last NAME --email ADDR --role ROLE",
		Short:         "Create an employee",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), rootOpts, cmd)
			if err != nil {
				return err
			}
			if err := s.ctrl.Submit(cmd.Context(), flags.EmployeeDraft); err != nil {
				return s.fail(err)
			}
			return s.out.Message(console.MsgAdded)
		},
	}
	flags.bind(cmd)
	return cmd
}

// NewUpdateCommand creates the update command. Fields not given keep their
// current values.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &draftFlags{}
	cmd := &cobra.Command{
		Use:           "update <id> [--first NAME] [--last NAME] [--email ADDR] [--role ROLE]",
		Short:         "Change an existing employee",
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
			if err := s.ctrl.BeginEdit(id); err != nil {
				return s.fail(err)
			}
			draft := flags.overlay(cmd, s.ctrl.View().Form)
			if err := s.ctrl.Submit(cmd.Context(), draft); err != nil {
				return s.fail(err)
			}
			return s.out.Message(console.MsgUpdated)
		},
	}
	flags.bind(cmd)
	return cmd
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid employee id %q", arg)
	}
	return id, nil
}
