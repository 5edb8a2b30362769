package options

import (
	"encoding/json"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions selects between colored text and JSON.
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().BoolVar(&o.JSON, "json", false,
		"Print JSON instead of text.")
}

type errorBody struct {
	Error string `json:"error"`
}

// HandleError writes err to w as {"error": "..."} in JSON mode and returns
// nil, so scripts always read a JSON document. In text mode err is returned
// for cobra to report.
func (o *OutputOptions) HandleError(w io.Writer, err error) error {
	if err == nil || !o.JSON {
		return err
	}
	if w == nil {
		w = color.Output
	}
	return json.NewEncoder(w).Encode(errorBody{Error: err.Error()})
}
