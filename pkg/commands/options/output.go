package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/trip/pkg/printers"
	"tableflip.dev/trip/pkg/trip"
)

// OutputOptions
type OutputOptions struct {
	Output string
	ShowID bool
}

func AddOutputArgs(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", string(printers.FormatPretty),
		fmt.Sprintf("Output format. One of %v.", printers.Formats()))
	cmd.Flags().BoolVar(&o.ShowID, "id", false,
		"Show ids next to links and guests.")
	_ = cmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return printers.Formats(), cobra.ShellCompDirectiveNoFileComp
	})
}

func (o *OutputOptions) Format() (printers.Format, error) {
	return printers.ParseFormat(o.Output)
}

// HandleError prints err as JSON when JSON output was asked for. Validation
// errors carry their user facing message.
func (o *OutputOptions) HandleError(err error) error {
	if err == nil {
		return nil
	}
	if f, _ := o.Format(); f != printers.FormatJSON {
		return err
	}
	out := map[string]string{
		"error": trip.Message(err),
	}
	b, jerr := json.Marshal(out)
	if jerr != nil {
		return jerr
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return nil
}
