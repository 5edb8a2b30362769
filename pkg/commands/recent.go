package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/apod/pkg/commands/options"
)

func addRecent(topLevel *cobra.Command, e *env) {
	oo := &options.OutputOptions{}
	dd := &options.DaysOptions{}

	cmd := &cobra.Command{
		Use:     "recent",
		Aliases: []string{"gallery"},
		Short:   "print the recent gallery",
		Example: `
apod recent
apod recent --days 3 --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := dd.Resolve(e.cfg.RecentDays)
			if err != nil {
				return err
			}
			g, err := newGet(cmd, e, oo)
			if err != nil {
				return err
			}
			return oo.HandleError(cmd.OutOrStdout(), g.Recent(contextOf(cmd), days))
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddDaysArgs(cmd, dd)
	topLevel.AddCommand(cmd)
}
