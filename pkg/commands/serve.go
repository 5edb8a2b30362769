package commands

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/apod/pkg/runner/serve"
)

func addServe(topLevel *cobra.Command, e *env) {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the APOD page over HTTP",
		Example: `
apod serve
apod serve --addr :3000
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := e.logger(cmd, false)
			if err != nil {
				return err
			}
			c, err := e.client(logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := serve.Serve{
				Source:     c,
				RecentDays: e.cfg.RecentDays,
				Logger:     logger,
				Addr:       addr,
				OnListening: func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "APOD page listening on http://%s/\n", a)
				},
			}
			return s.Do(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", serve.DefaultAddr, "address to listen on")
	topLevel.AddCommand(cmd)
}
