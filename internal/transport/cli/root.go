// Package cli implements the wordsapi command line.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

type root struct {
	build      Builder
	configPath string
	logLevel   string
}

// NewRootCmd builds the command tree. build is invoked by the commands that
// talk to the API or the journal; relations and version never call it.
func NewRootCmd(build Builder) *cobra.Command {
	r := &root{build: build}

	cmd := &cobra.Command{
		Use:   "wordsapi",
		Short: "Query the WordsAPI dictionary",
		Long: `wordsapi looks words up in the WordsAPI dictionary service.
Each lookup is one request for a word and a relation (definitions,
synonyms, rhymes, ...). When a database is configured every lookup is
recorded and can be listed with the history command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&r.configPath, "config", "", "path to config file (default $CONFIG_PATH or ./config.yaml)")
	cmd.PersistentFlags().StringVar(&r.logLevel, "log-level", "", "override log level: debug, info, warn, error")

	cmd.AddCommand(
		newLookupCmd(r),
		newRelationsCmd(),
		newHistoryCmd(r),
		newVersionCmd(),
	)

	return cmd
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCmd(DefaultBuilder).ExecuteContext(ctx)
}

func (r *root) dependencies(cmd *cobra.Command) (*Dependencies, error) {
	return r.build(cmd.Context(), r.options(cmd))
}

// journalDependencies is dependencies for commands that never call the API,
// so a missing API key does not stop them.
func (r *root) journalDependencies(cmd *cobra.Command) (*Dependencies, error) {
	opts := r.options(cmd)
	opts.JournalOnly = true
	return r.build(cmd.Context(), opts)
}

func (r *root) options(cmd *cobra.Command) Options {
	return Options{
		ConfigPath: r.configPath,
		LogLevel:   r.logLevel,
		Stderr:     cmd.ErrOrStderr(),
	}
}
