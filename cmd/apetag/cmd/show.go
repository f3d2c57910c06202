package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/simonhull/apetag"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <file>...",
	Short: "Print the tag of each file",
	Long: `Print one "Key: value" line per item. Files are read concurrently.

Example:
  apetag show song.mp3
  apetag show --id3 *.mp3`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id3, _ := cmd.Flags().GetBool("id3")

		tags, err := apetag.ReadMany(cmd.Context(), args, cfg.TagOptions(logger)...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, t := range tags {
			if len(tags) > 1 {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "==> %s <==\n", t.Path())
			}
			if id3 {
				printShadow(cmd, t)
				continue
			}
			if pretty := t.Pretty(); pretty != "" {
				fmt.Fprintln(out, pretty)
			}
		}
		return nil
	},
}

func printShadow(cmd *cobra.Command, t *apetag.Tag) {
	out := cmd.OutOrStdout()
	fields, err := t.ShadowFields()
	if err != nil {
		fmt.Fprintln(out, t.Pretty())
		return
	}
	if fields == nil {
		fmt.Fprintln(out, "NO ID3 TAG")
		return
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "%s: %s\n", k, fields[k])
	}
}

func init() {
	showCmd.Flags().Bool("id3", false, "print the ID3v1.1 tag instead")
	rootCmd.AddCommand(showCmd)
}
