package internal

import (
	"os"

	"github.com/fuchsia-build/fversion/internal/versioning"
	"github.com/fuchsia-build/fversion/internal/versioning/env"
	"github.com/spf13/cobra"
)

var (
	historyPath  string
	platformPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fversion",
	Short: "Maintain the platform version bookkeeping files",
	Long: `fversion rewrites the version history ledger and the current
platform version pointer when a new API level is introduced.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newUpdater resolves the two file paths, preferring flags over the
// environment.
func newUpdater() (*versioning.Updater, error) {
	history := historyPath
	if history == "" {
		var err error
		history, err = env.HistoryFile()
		if err != nil {
			return nil, err
		}
	}
	platform := platformPath
	if platform == "" {
		var err error
		platform, err = env.PlatformFile()
		if err != nil {
			return nil, err
		}
	}
	return &versioning.Updater{
		HistoryPath:  history,
		PlatformPath: platform,
	}, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&historyPath, "history", "", "path to the version history ledger")
	rootCmd.PersistentFlags().StringVar(&platformPath, "platform", "", "path to the platform version file")
}
