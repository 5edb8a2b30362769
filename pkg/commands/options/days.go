package options

import (
	"fmt"

	"github.com/spf13/cobra"
)

// DaysOptions sizes the recent window. Zero means the configured value.
type DaysOptions struct {
	Days int
}

func AddDaysArgs(cmd *cobra.Command, o *DaysOptions) {
	cmd.Flags().IntVarP(&o.Days, "days", "n", 0,
		"Number of days in the recent gallery (default from config, 8).")
}

// Resolve returns the window to load, falling back to configured when the
// flag was left at zero. Negative windows are rejected.
func (o *DaysOptions) Resolve(configured int) (int, error) {
	if o.Days < 0 {
		return 0, fmt.Errorf("--days must be at least 1, got %d", o.Days)
	}
	if o.Days == 0 {
		return configured, nil
	}
	return o.Days, nil
}
