package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/csg33k/employee-console/internal/adapters/restclient"
	"github.com/csg33k/employee-console/internal/config"
	"github.com/csg33k/employee-console/internal/console"
	"github.com/csg33k/employee-console/internal/domain"
)

// session is one command invocation: a loaded controller plus its output.
type session struct {
	ctrl *console.Controller
	out  *OutputFormatter
	cfg  *config.Config
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// openSession loads config, wires the REST client and performs the initial
// reload every command starts from.
func openSession(ctx context.Context, opts *RootOptions, cmd *cobra.Command) (*session, error) {
	out := newFormatter(opts, cmd)

	cfg, err := config.Load(config.EffectivePath(opts.Config))
	if err != nil {
		out.Error(ErrCodeConfig, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "loading config", err)
	}
	baseURL := cfg.API.BaseURL
	if opts.BaseURL != "" {
		baseURL = opts.BaseURL
	}
	out.VerboseLog("Using backend %s", baseURL)

	logger := slog.New(slog.DiscardHandler)
	if opts.Verbose {
		logger = slog.New(slog.NewTextHandler(out.GetErrWriter(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	api := restclient.New(baseURL, restclient.WithTimeout(cfg.API.Timeout), restclient.WithLogger(logger))
	ctrl := console.NewController(api, console.NewNotifier(cfg.Status.TTL, nil, logger), logger)

	s := &session{ctrl: ctrl, out: out, cfg: cfg}
	if err := ctrl.Reload(ctx); err != nil {
		return nil, s.fail(err)
	}
	out.VerboseLog("%s", s.status())
	return s, nil
}

// status is the notifier's current message.
func (s *session) status() string {
	st, _ := s.ctrl.Notifier().Current()
	return st.Message
}

// fail reports the controller's last status for err and returns the matching
// exit error.
func (s *session) fail(err error) error {
	code := ErrCodeBackend
	var ve *domain.ValidationError
	var nf *domain.NotFoundError
	switch {
	case errors.As(err, &ve):
		code = ErrCodeValidation
	case errors.As(err, &nf):
		code = ErrCodeNotFound
	case s.status() == console.MsgLoadFailed:
		code = ErrCodeLoadFailed
	}
	msg := s.status()
	if msg == "" {
		msg = err.Error()
	}
	s.out.Error(code, msg, err.Error())
	return WrapExitError(ExitFailure, msg, err)
}
