package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/binomen/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the stored quiz settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		p, _ := loadSettings(cmd.Context(), st, logger)
		printSettings(cmd, p.Current())
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <field> <true|false>",
	Short: "Change one setting (" + strings.Join(settings.Fields(), ", ") + ")",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		field := args[0]
		if _, ok := settings.Defaults().Get(field); !ok {
			return fmt.Errorf("unknown setting %q (want one of %s)", field, strings.Join(settings.Fields(), ", "))
		}
		v, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("parse value %q: %w", args[1], err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		_, repo := loadSettings(ctx, st, logger)
		next, _ := repo.Load(ctx).With(field, v)
		if err := repo.Save(ctx, next); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
		printSettings(cmd, next)
		return nil
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		_, repo := loadSettings(cmd.Context(), st, logger)
		if err := repo.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset settings: %w", err)
		}
		printSettings(cmd, settings.Defaults())
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
}

func printSettings(cmd *cobra.Command, s settings.Settings) {
	out := cmd.OutOrStdout()
	for _, f := range settings.Fields() {
		v, _ := s.Get(f)
		fmt.Fprintf(out, "%-18s %t\n", f, v)
	}
}
