package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/binomen/internal/corpus"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent quiz sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sessions, err := st.SessionRepo().RecentSessions(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(sessions) == 0 {
			fmt.Fprintln(out, "No sessions yet.")
			return nil
		}

		fmt.Fprintf(out, "%-16s  %-20s  %7s  %5s  %8s  %s\n",
			"When", "Range", "Score", "Skip", "Duration", "Status")
		fmt.Fprintln(out, strings.Repeat("─", 76))

		var correct, total int
		for _, s := range sessions {
			status := "abandoned"
			if s.Completed {
				status = "completed"
			}
			fmt.Fprintf(out, "%-16s  %-20s  %7s  %5d  %7ds  %s\n",
				s.Timestamp.Local().Format("2006-01-02 15:04"),
				corpus.Label(s.Range),
				fmt.Sprintf("%d/%d", s.CorrectAnswers, s.QuestionsTotal),
				s.Skipped, s.DurationSecs, status)
			correct += s.CorrectAnswers
			total += s.QuestionsTotal
		}

		fmt.Fprintf(out, "\n%d sessions, %d of %d correct\n", len(sessions), correct, total)
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 20, "Number of sessions to show (0 for all)")
}
