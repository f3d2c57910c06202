package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/apetag"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := apetag.GetVersionInfo()
		fmt.Fprintf(cmd.OutOrStdout(), "apetag %s (commit %s, built %s, %s)\n", info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
