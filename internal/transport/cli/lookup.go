package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordsapi/internal/domain"
	"github.com/heartmarshall/wordsapi/pkg/wordsapi"
)

type lookupFlags struct {
	relations []string
	raw       bool
}

func newLookupCmd(r *root) *cobra.Command {
	var f lookupFlags

	cmd := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look a word up",
		Long: `Looks a word up for one or more relations and prints the decoded result
as JSON. With --raw the response body is printed exactly as received.
Rate-limit counters reported by the API are printed to stderr.`,
		Example: `  wordsapi lookup example
  wordsapi lookup example -r synonyms -r antonyms
  wordsapi lookup "ice cream" -r rhymes --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, r, f, args[0])
		},
	}

	cmd.Flags().StringSliceVarP(&f.relations, "relation", "r", []string{wordsapi.RelationWord.String()}, "relation to look up (repeatable)")
	cmd.Flags().BoolVar(&f.raw, "raw", false, "print the response body as received")

	return cmd
}

func runLookup(cmd *cobra.Command, r *root, f lookupFlags, word string) error {
	rels, err := parseRelations(f.relations)
	if err != nil {
		return err
	}

	deps, err := r.dependencies(cmd)
	if err != nil {
		return err
	}
	defer deps.close()

	var responses []*wordsapi.Response
	if len(rels) == 1 {
		resp, err := deps.Lookup.Lookup(cmd.Context(), word, rels[0])
		if err != nil {
			return err
		}
		responses = []*wordsapi.Response{resp}
	} else {
		responses, err = deps.Lookup.LookupMany(cmd.Context(), word, rels)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	for i, resp := range responses {
		if len(responses) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "# %s\n", resp.Relation)
		}
		if err := printResponse(out, resp, f.raw); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "rate limit (%s): %d/%d remaining\n",
			resp.Relation, resp.RateLimit.Remaining, resp.RateLimit.Limit)
	}

	return nil
}

func printResponse(w io.Writer, resp *wordsapi.Response, raw bool) error {
	if raw {
		_, err := fmt.Fprintln(w, resp.Text())
		return err
	}

	record, err := resp.DecodeRecord()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s result: %w", resp.Relation, err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func parseRelations(names []string) ([]wordsapi.Relation, error) {
	if len(names) == 0 {
		return []wordsapi.Relation{wordsapi.RelationWord}, nil
	}

	rels := make([]wordsapi.Relation, 0, len(names))
	seen := make(map[wordsapi.Relation]bool, len(names))
	for _, name := range names {
		rel, err := wordsapi.ParseRelation(name)
		if err != nil {
			return nil, domain.NewValidationError("relation", err.Error())
		}
		if seen[rel] {
			continue
		}
		seen[rel] = true
		rels = append(rels, rel)
	}
	return rels, nil
}
