package commands

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"tableflip.dev/apod/pkg/commands/options"
	apod "tableflip.dev/apod/pkg/picture"
)

func addDate(topLevel *cobra.Command, e *env) {
	oo := &options.OutputOptions{}
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "date [YYYY-MM-DD]",
		Short: "print the picture for a date",
		Long: options.Wrap80("Print the Astronomy Picture of the Day for one date. " +
			"The date defaults to today; -i prompts for it."),
		Example: `
apod date 2024-01-01
apod date 2/14
apod date --date=2024-1-1 --json
apod date -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("expected at most one date")
			}
			if len(args) == 1 {
				if do.DateString != "" {
					return errors.New("date given twice, use either the argument or --date")
				}
				do.DateString = args[0]
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !do.Prompt {
				return nil
			}
			d, err := options.PromptDate(io.NopCloser(cmd.InOrStdin()), nopWriteCloser{cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			do.DateString = d
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := do.GetDate()
			if err != nil {
				return oo.HandleError(cmd.OutOrStdout(), err)
			}
			if date == "" {
				date = apod.Today()
			}

			g, err := newGet(cmd, e, oo)
			if err != nil {
				return err
			}
			return oo.HandleError(cmd.OutOrStdout(), g.Date(contextOf(cmd), date))
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddDateArgs(cmd, do)
	topLevel.AddCommand(cmd)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
