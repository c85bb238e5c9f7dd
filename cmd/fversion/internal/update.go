package internal

import (
	"github.com/fatih/color"
	"github.com/fuchsia-build/fversion/internal/versioning/apilevel"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update [API-LEVEL]",
	Short: "Advance the platform to a new API level",
	Long: `Append a ledger entry for the given API level and point the
platform version file at it. Both writes are skipped when the files
already reference the level, so a repeated run leaves no diff.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdateCmd,
}

func runUpdateCmd(cmd *cobra.Command, args []string) error {
	level, err := apilevel.From(args[0]).Parse()
	if err != nil {
		return err
	}
	updater, err := newUpdater()
	if err != nil {
		return err
	}
	changed, err := updater.Update(level)
	if err != nil {
		return err
	}
	if !changed {
		color.Yellow("already at API level %d, nothing to commit", level)
		return nil
	}
	color.Green("platform advanced to API level %d", level)
	return nil
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
