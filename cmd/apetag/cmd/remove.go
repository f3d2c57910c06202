package cmd

import (
	"github.com/spf13/cobra"
)

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:     "remove <file>...",
	Aliases: []string{"rm"},
	Short:   "Remove the tag from each file",
	Long: `Truncate each file before its APE tag. The ID3v1.1 tag after it goes too.
Files without an APE tag are left unchanged.

Example:
  apetag remove song.mp3`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			if _, err := openTag(path).Remove(); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
