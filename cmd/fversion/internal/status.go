package internal

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/fuchsia-build/fversion/internal/versioning"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current and supported API levels",
	RunE:  runStatusCmd,
}

func runStatusCmd(_ *cobra.Command, _ []string) error {
	updater, err := newUpdater()
	if err != nil {
		return err
	}
	pv, err := versioning.ReadPlatformVersion(updater.PlatformPath)
	if err != nil {
		return err
	}

	color.Cyan("current API level: %d", pv.CurrentAPILevel)
	supported := make([]string, 0, len(pv.SupportedAPILevels))
	for _, level := range pv.SupportedAPILevels {
		supported = append(supported, fmt.Sprint(level))
	}
	fmt.Printf("supported API levels: %s\n", strings.Join(supported, ", "))
	return nil
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
