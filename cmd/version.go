package cmd

import (
	"fmt"

	"golang-iperf3d/internal/pkg/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build info",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.GetBuildInfo()
		fmt.Printf("Version: %s\nCommit: %s\nBuilt: %s\nDirty: %v\n", info.Version, info.Commit, info.Time, info.Dirty)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
