package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/dateconv"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "dateconv %s\n", dateconv.Version)
			return nil
		},
	}
}
