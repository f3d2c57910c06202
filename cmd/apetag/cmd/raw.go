package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/apetag"
)

// rawCmd represents the raw command
var rawCmd = &cobra.Command{
	Use:   "raw <file>",
	Short: "Write the raw tag bytes to stdout",
	Long: `Write the APE tag, and the ID3v1.1 tag when present, exactly as stored.

Example:
  apetag raw song.mp3 | xxd
  apetag raw --digest song.mp3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := openTag(args[0]).Raw()
		if err != nil {
			return err
		}

		if digest, _ := cmd.Flags().GetBool("digest"); digest {
			fmt.Fprintf(cmd.OutOrStdout(), "%016x  %d  %s\n", apetag.Digest(raw), len(raw), args[0])
			return nil
		}
		_, err = cmd.OutOrStdout().Write(raw)
		return err
	},
}

func init() {
	rawCmd.Flags().Bool("digest", false, "print the xxhash64 digest and size instead")
	rootCmd.AddCommand(rawCmd)
}
