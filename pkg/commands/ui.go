package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/apod/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
apod ui
apod ui --backend http://localhost:8080 --log-file ~/.apod.log
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(contextOf(cmd), cmd, e)
		},
	}

	topLevel.AddCommand(cmd)
}

func runUI(ctx context.Context, cmd *cobra.Command, e *env) error {
	logger, err := e.logger(cmd, true)
	if err != nil {
		return err
	}
	c, err := e.client(logger)
	if err != nil {
		return err
	}
	i := ui.UI{Source: c, RecentDays: e.cfg.RecentDays, Logger: logger}
	return i.Do(ctx)
}
