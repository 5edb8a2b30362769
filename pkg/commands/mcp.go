package commands

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/apod/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command, e *env) {
	var transport, addr, path string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server with the tools apod_today, apod_by_date and
apod_recent, and the resources apod://today, apod://recent and
apod://date/{date}.`,
		Example: `
apod mcp
apod mcp --addr 127.0.0.1:0
apod mcp --transport stdio
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := mcp.Transport(strings.ToLower(strings.TrimSpace(transport)))
			if t != mcp.TransportHTTP && t != mcp.TransportStdio {
				return fmt.Errorf("unsupported transport %q, expected http or stdio", transport)
			}

			logger, err := e.logger(cmd, false)
			if err != nil {
				return err
			}
			c, err := e.client(logger)
			if err != nil {
				return err
			}

			endpoint := mcp.EndpointPath(path)
			v, _, _ := buildVersion()
			r := mcp.Runner{
				Source:     c,
				RecentDays: e.cfg.RecentDays,
				Logger:     logger,
				Version:    v,
				Transport:  t,
				Addr:       addr,
				Path:       endpoint,
				OnListening: func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s%s\n", a, endpoint)
				},
			}

			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return r.Do(ctx)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportHTTP), "Transport to use: http or stdio.")
	cmd.Flags().StringVar(&addr, "addr", mcp.DefaultAddr, "Address for the http transport, port 0 picks one.")
	cmd.Flags().StringVar(&path, "path", mcp.DefaultPath, "Endpoint path for the http transport.")

	topLevel.AddCommand(cmd)
}
