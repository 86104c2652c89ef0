package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/binomen/internal/app"
	"github.com/abhisek/binomen/internal/corpus"
	"github.com/abhisek/binomen/internal/settings"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz directly",
	Long: `Start a quiz directly, skipping the home screen.

--shuffle and --hints override the stored settings for this session only and
accept exactly "true" or "false"; any other value is ignored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rng, _ := cmd.Flags().GetString("range")
		shuffle, _ := cmd.Flags().GetString("shuffle")
		hints, _ := cmd.Flags().GetString("hints")

		return runApp(cmd, &app.StartParams{
			Range:     rng,
			Overrides: settings.ParseOverrides(shuffle, hints),
		})
	},
}

func init() {
	playCmd.Flags().String("range", corpus.RangeAll, `Question range: "all", "<start>-<end>" or a single id`)
	playCmd.Flags().String("shuffle", "", `Override shuffling for this session ("true" or "false")`)
	playCmd.Flags().String("hints", "", `Override automatic hints for this session ("true" or "false")`)
}
