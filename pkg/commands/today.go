package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/apod/pkg/commands/options"
	"tableflip.dev/apod/pkg/runner/get"
)

func addToday(topLevel *cobra.Command, e *env) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "today",
		Short: "print today's picture",
		Example: `
apod today
apod today --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToday(contextOf(cmd), cmd, e, oo)
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func runToday(ctx context.Context, cmd *cobra.Command, e *env, oo *options.OutputOptions) error {
	g, err := newGet(cmd, e, oo)
	if err != nil {
		return err
	}
	return oo.HandleError(cmd.OutOrStdout(), g.Today(ctx))
}

func newGet(cmd *cobra.Command, e *env, oo *options.OutputOptions) (*get.Get, error) {
	logger, err := e.logger(cmd, false)
	if err != nil {
		return nil, err
	}
	c, err := e.client(logger)
	if err != nil {
		return nil, err
	}
	return &get.Get{
		Source: c,
		Logger: logger,
		Out:    cmd.OutOrStdout(),
		JSON:   oo.JSON,
	}, nil
}
