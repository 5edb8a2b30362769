package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/apod/pkg/client"
	"tableflip.dev/apod/pkg/commands/options"
	"tableflip.dev/apod/pkg/config"
	"tableflip.dev/apod/pkg/logging"
	"tableflip.dev/apod/pkg/viewmodel"
)

// env is the state shared by every command, resolved once before any of
// them runs.
type env struct {
	v      *viper.Viper
	cfg    config.Config
	closer io.Closer
}

// logger returns the diagnostics logger. Without a log file, interactive
// commands discard logs and the rest write them to stderr.
func (e *env) logger(cmd *cobra.Command, interactive bool) (*slog.Logger, error) {
	fallback := cmd.ErrOrStderr()
	if interactive {
		fallback = io.Discard
	}
	l, closer, err := logging.Open(e.cfg.LogFile, e.cfg.LogLevel, fallback)
	if err != nil {
		return nil, err
	}
	e.closer = closer
	return l, nil
}

func (e *env) client(logger *slog.Logger) (*client.Client, error) {
	return client.New(client.Options{
		BaseURL: e.cfg.Backend,
		Timeout: e.cfg.RequestTimeout,
		Logger:  logger,
	})
}

func (e *env) close() {
	if e.closer != nil {
		_ = e.closer.Close()
		e.closer = nil
	}
}

// New returns the root command. With no subcommand it opens the UI on a
// terminal and prints today's picture otherwise.
func New() *cobra.Command {
	e := &env{v: config.New()}

	cmd := &cobra.Command{
		Use:   "apod",
		Short: options.Wrap80("Browse NASA's Astronomy Picture of the Day."),
		Long: options.Wrap80("Browse NASA's Astronomy Picture of the Day through an APOD backend: " +
			"today's picture, any date, and the recent gallery."),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(e.v)
			if err != nil {
				return err
			}
			e.cfg = cfg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			e.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if isTerminal(cmd.OutOrStdout()) {
				return runUI(contextOf(cmd), cmd, e)
			}
			return runToday(contextOf(cmd), cmd, e, &options.OutputOptions{})
		},
	}

	addGlobalFlags(cmd, e.v)
	addCommands(cmd, e)
	return cmd
}

func addCommands(topLevel *cobra.Command, e *env) {
	addUI(topLevel, e)
	addToday(topLevel, e)
	addDate(topLevel, e)
	addRecent(topLevel, e)
	addServe(topLevel, e)
	addMCP(topLevel, e)
	addVersion(topLevel)
}

func addGlobalFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.PersistentFlags()
	flags.String(config.KeyBackend, client.DefaultBaseURL, "Base URL of the APOD backend.")
	flags.Int(config.KeyRecentDays, viewmodel.DefaultRecentDays, "Days shown in the recent gallery.")
	flags.Duration(config.KeyRequestTimeout, 0, "Per-request timeout, 0 for none.")
	flags.String(config.KeyLogFile, "", "Append diagnostics to this file.")
	flags.String(config.KeyLogLevel, "info", "Log level: debug, info, warn or error.")

	for _, key := range []string{
		config.KeyBackend,
		config.KeyRecentDays,
		config.KeyRequestTimeout,
		config.KeyLogFile,
		config.KeyLogLevel,
	} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
