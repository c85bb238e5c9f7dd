package internal

import (
	"fmt"

	"github.com/fuchsia-build/fversion/internal/versioning"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List every recorded API level with its ABI revision",
	RunE:  runHistoryCmd,
}

func runHistoryCmd(_ *cobra.Command, _ []string) error {
	updater, err := newUpdater()
	if err != nil {
		return err
	}
	h, err := versioning.ReadVersionHistory(updater.HistoryPath)
	if err != nil {
		return err
	}
	for _, entry := range h.Data.Versions {
		fmt.Printf("%s\t%s\n", entry.APILevel, entry.ABIRevision)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
