package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/dateconv/loose"
)

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <text>",
		Short: "Print the Go layout of loosely formatted date text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := loose.Detect(args[0])
			if err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), layout)
			return nil
		},
	}
}
