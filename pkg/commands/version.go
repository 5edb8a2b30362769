package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"
)

// Set by the linker, -X tableflip.dev/apod/pkg/commands.version=v1.2.3.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion fills in what the linker left unset from the module build
// info, so `go install`ed binaries still report a version.
func buildVersion() (string, string, string) {
	v, c, d := version, commit, date
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v, c, d
	}
	if v == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		v = info.Main.Version
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && c == "none":
			c = s.Value
		case s.Key == "vcs.time" && d == "unknown":
			d = s.Value
		}
	}
	return v, c, d
}

func addVersion(topLevel *cobra.Command) {
	var short bool
	var output string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "print the apod version",
		Example: `
apod version
apod version -o yaml
`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			v, c, d := buildVersion()
			_, _ = fmt.Fprint(cmd.OutOrStdout(), goversion.FuncWithOutput(short, v, c, d, output))
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print just the version number.")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format, json or yaml.")

	topLevel.AddCommand(cmd)
}
