package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/binomen/internal/corpus"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the questions in a range",
	RunE: func(cmd *cobra.Command, args []string) error {
		all := corpus.All()

		if check, _ := cmd.Flags().GetBool("check"); check {
			if err := corpus.Validate(all); err != nil {
				return fmt.Errorf("validate corpus: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "corpus ok: %d questions\n", len(all))
			return nil
		}

		rng, _ := cmd.Flags().GetString("range")
		qs := corpus.SelectRange(all, rng)
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, corpus.Label(rng))
		fmt.Fprintf(out, "%4s  %-24s  %-32s  %s\n", "ID", "Question", "Answer", "Hint")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for _, q := range qs {
			fmt.Fprintf(out, "%4s  %-24s  %-32s  %s\n", q.ID, q.Question, q.Answer, q.Hint)
		}
		fmt.Fprintf(out, "\n%d questions\n", len(qs))
		return nil
	},
}

func init() {
	questionsCmd.Flags().String("range", corpus.RangeAll, `Question range: "all", "<start>-<end>" or a single id`)
	questionsCmd.Flags().Bool("check", false, "Validate the corpus instead of listing it")
}
