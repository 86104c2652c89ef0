package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/binomen/internal/app"
	"github.com/abhisek/binomen/internal/corpus"
)

// runApp opens the store, builds dependencies, and launches the TUI. start
// jumps straight into a quiz when non-nil.
func runApp(cmd *cobra.Command, start *app.StartParams) error {
	ctx := cmd.Context()
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	provider, _ := loadSettings(ctx, st, logger)

	return app.Run(app.Options{
		Questions: corpus.All(),
		Settings:  provider,
		Sessions:  st.SessionRepo(),
		Logger:    logger,
		Start:     start,
	})
}
