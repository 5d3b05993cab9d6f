package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordsapi/internal/app"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wordsapi version %s\n", app.BuildVersion())
		},
	}
}
