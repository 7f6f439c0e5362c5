package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/francoispqt/gojay"
	"github.com/spf13/cobra"

	"github.com/viant/dateconv"
)

func newKindsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List supported date kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := kindsOutput(dateconv.Kinds())
			if asJSON {
				data, err := gojay.MarshalJSONArray(kinds)
				if err != nil {
					return systemError(fmt.Errorf("encode kinds: %w", err))
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "KIND\tFAMILY\tCOMPLETENESS\tTYPE")
			for _, kind := range kinds {
				fmt.Fprintf(writer, "%v\t%v\t%v\t%v\n", kind, kind.Family(), kind.Completeness(), kind.Type())
			}
			return writer.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print kinds as JSON")
	return cmd
}
