package main

import (
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/ogeom/oerror"
	"github.com/spf13/cobra"
)

// maxPrecision bounds --precision.
const maxPrecision = 9

// options holds the persistent flags shared by every command.
type options struct {
	debug       bool
	fingerprint bool
	precision   int
	sentryDSN   string

	log *slog.Logger
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "orient",
		Short: "Inspect orientations, bases and transform scenes",
		Long: `orient builds rotation bases from Euler angles, inverts arbitrary 3x3 bases and
applies TOML transform scenes to named points.

Angles are radians unless --degrees is given. Arguments that start with a minus
sign must follow a "--" so they are not read as flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.precision < 0 || opts.precision > maxPrecision {
				return oerror.New("--precision must be between 0 and %d, got %d", maxPrecision, opts.precision)
			}
			level := slog.LevelInfo
			if opts.debug {
				level = slog.LevelDebug
			}
			opts.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			if opts.sentryDSN == "" {
				return nil
			}
			if err := sentry.Init(sentry.ClientOptions{Dsn: opts.sentryDSN}); err != nil {
				return oerror.Wrap(err, "unable to initialise sentry")
			}
			opts.log.Debug("sentry enabled")
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&opts.debug, "debug", false, "log at debug level")
	flags.BoolVar(&opts.fingerprint, "fingerprint", false, "print the xxh3 fingerprint of every matrix and point")
	flags.IntVar(&opts.precision, "precision", 6, "decimal places printed for every number")
	flags.StringVar(&opts.sentryDSN, "sentry-dsn", os.Getenv("SENTRY_DSN"), "report crashes to this sentry DSN")

	root.AddCommand(newEulerCommand(opts), newInvertCommand(opts), newSceneCommand(opts))
	return root
}
