package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordsapi/pkg/wordsapi"
)

func newRelationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relations",
		Short: "List the relations a word can be looked up for",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("RELATION", "PATH")
			for _, rel := range wordsapi.Relations() {
				path := "{word}" + rel.Suffix()
				t.Row(rel.String(), path)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		},
	}
}
