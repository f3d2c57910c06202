package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/apetag"
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set <file> [key=value]...",
	Short: "Set, add or delete items",
	Long: `Update the tag of a file, creating one when the file has none.

A key given more than once gets every value. Deletions run before
assignments. The tag is rewritten even when nothing changes.

Example:
  apetag set song.mp3 Title="Love Cheese" Artist="Test Artist"
  apetag set song.mp3 Album=First Album=Second
  apetag set --delete Comment song.mp3`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		deletes, _ := flags.GetStringArray("delete")
		clearAll, _ := flags.GetBool("clear")
		appendValues, _ := flags.GetBool("append")

		keys, values, err := parseAssignments(args[1:])
		if err != nil {
			return err
		}

		return openTag(args[0]).Update(func(f *apetag.Fields) error {
			if clearAll {
				f.Clear()
			}
			for _, key := range deletes {
				f.Delete(key)
			}
			for _, key := range keys {
				vals := values[key]
				if appendValues {
					vals = append(f.Values(key), vals...)
				}
				if err := f.Set(key, vals...); err != nil {
					return err
				}
			}
			return nil
		}, cfg.CommitOptions()...)
	},
}

// parseAssignments groups key=value arguments by key, keeping the order in
// which keys first appear.
func parseAssignments(args []string) ([]string, map[string][]string, error) {
	var keys []string
	values := make(map[string][]string)
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, nil, fmt.Errorf("invalid assignment %q: want key=value", arg)
		}
		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}
		values[key] = append(values[key], value)
	}
	return keys, values, nil
}

func init() {
	setCmd.Flags().StringArrayP("delete", "d", nil, "delete the item with this key")
	setCmd.Flags().Bool("clear", false, "delete every item first")
	setCmd.Flags().BoolP("append", "a", false, "append values to existing items")
	rootCmd.AddCommand(setCmd)
}
