package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordsapi/internal/domain"
	"github.com/heartmarshall/wordsapi/pkg/wordsapi"
)

type historyFlags struct {
	limit    int
	relation string
	json     bool
}

func newHistoryCmd(r *root) *cobra.Command {
	var f historyFlags

	cmd := &cobra.Command{
		Use:   "history <word>",
		Short: "Show recorded lookups of a word",
		Long: `Lists journaled lookups of a word, newest first. With --relation only the
most recent lookup for that relation is shown. Requires a configured database.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, r, f, args[0])
		},
	}

	cmd.Flags().IntVarP(&f.limit, "limit", "n", 20, "maximum number of records (max 100)")
	cmd.Flags().StringVarP(&f.relation, "relation", "r", "", "show only the latest lookup for this relation")
	cmd.Flags().BoolVar(&f.json, "json", false, "output records as JSON")

	return cmd
}

func runHistory(cmd *cobra.Command, r *root, f historyFlags, word string) error {
	var (
		rel    wordsapi.Relation
		latest = f.relation != ""
	)
	if latest {
		parsed, err := wordsapi.ParseRelation(f.relation)
		if err != nil {
			return domain.NewValidationError("relation", err.Error())
		}
		rel = parsed
	}

	deps, err := r.journalDependencies(cmd)
	if err != nil {
		return err
	}
	defer deps.close()

	var records []domain.LookupRecord
	if latest {
		rec, err := deps.Lookup.Latest(cmd.Context(), word, rel)
		if err != nil {
			return err
		}
		records = []domain.LookupRecord{rec}
	} else {
		records, err = deps.Lookup.History(cmd.Context(), word, f.limit)
		if err != nil {
			return err
		}
	}

	if f.json {
		return writeHistoryJSON(cmd.OutOrStdout(), records)
	}
	return writeHistoryTable(cmd.OutOrStdout(), records)
}

type historyJSON struct {
	ID                 string          `json:"id"`
	RequestID          string          `json:"request_id,omitempty"`
	Word               string          `json:"word"`
	Relation           string          `json:"relation"`
	URL                string          `json:"url"`
	StatusCode         int             `json:"status_code"`
	Outcome            string          `json:"outcome"`
	RateLimitRemaining int             `json:"rate_limit_remaining"`
	RateLimitLimit     int             `json:"rate_limit_limit"`
	Error              string          `json:"error,omitempty"`
	DurationMS         int64           `json:"duration_ms"`
	CreatedAt          time.Time       `json:"created_at"`
	Body               json.RawMessage `json:"body,omitempty"`
}

func writeHistoryJSON(w io.Writer, records []domain.LookupRecord) error {
	out := make([]historyJSON, len(records))
	for i, rec := range records {
		out[i] = historyJSON{
			ID:                 rec.ID.String(),
			RequestID:          rec.RequestID,
			Word:               rec.Word,
			Relation:           rec.Relation,
			URL:                rec.URL,
			StatusCode:         rec.StatusCode,
			Outcome:            rec.Outcome.String(),
			RateLimitRemaining: rec.RateLimitRemaining,
			RateLimitLimit:     rec.RateLimitLimit,
			Error:              rec.Error,
			DurationMS:         rec.Duration.Milliseconds(),
			CreatedAt:          rec.CreatedAt,
		}
		if json.Valid(rec.Body) {
			out[i].Body = rec.Body
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeHistoryTable(w io.Writer, records []domain.LookupRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No lookups recorded.")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TIME", "RELATION", "OUTCOME", "STATUS", "RATE LIMIT", "DURATION")
	for _, rec := range records {
		t.Row(
			rec.CreatedAt.Local().Format(time.DateTime),
			rec.Relation,
			rec.Outcome.String(),
			strconv.Itoa(rec.StatusCode),
			fmt.Sprintf("%d/%d", rec.RateLimitRemaining, rec.RateLimitLimit),
			rec.Duration.Round(time.Millisecond).String(),
		)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
