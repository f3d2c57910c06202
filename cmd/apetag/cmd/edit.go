package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/simonhull/apetag"
)

const editHelp = `Commands:
  show                 Show the pending items
  set <key> [value]    Replace an item with a single value
  add <key> <value>    Append a value to an item
  delete <key>         Delete an item
  keys                 List the pending keys
  commit               Write the pending items to the file
  abort                Discard the pending changes
  help                 Show this help
  exit                 Leave, discarding uncommitted changes`

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Edit a tag interactively",
	Long: `Open an interactive editor on the tag of a file. Changes are kept in
memory until "commit".

Example:
  apetag edit song.mp3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed := &editor{
			tag:  openTag(args[0]),
			out:  cmd.OutOrStdout(),
			opts: cfg.CommitOptions(),
		}
		if err := ed.begin(); err != nil {
			return err
		}

		rl, err := readline.NewEx(&readline.Config{
			Prompt:          ed.prompt(),
			HistoryFile:     filepath.Join(os.TempDir(), ".apetag_history"),
			AutoComplete:    ed.completer(),
			InterruptPrompt: "^C",
			EOFPrompt:       "exit",
		})
		if err != nil {
			return fmt.Errorf("failed to initialize readline: %w", err)
		}
		defer rl.Close()

		fmt.Fprintf(ed.out, "Editing %s. Type \"help\" for commands.\n", args[0])
		return ed.run(rl)
	},
}

// lineReader is the part of *readline.Instance the editor uses.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type editor struct {
	tag   *apetag.Tag
	tx    *apetag.Tx
	out   io.Writer
	opts  []apetag.CommitOption
	dirty bool
}

func (e *editor) begin() error {
	tx, err := e.tag.BeginUpdate()
	if err != nil {
		return err
	}
	e.tx = tx
	e.dirty = false
	return nil
}

func (e *editor) prompt() string {
	name := filepath.Base(e.tag.Path())
	if e.dirty {
		return fmt.Sprintf("apetag:%s*> ", name)
	}
	return fmt.Sprintf("apetag:%s> ", name)
}

func (e *editor) completer() *readline.PrefixCompleter {
	keys := readline.PcItemDynamic(func(string) []string {
		return e.tx.Fields().Keys()
	})
	return readline.NewPrefixCompleter(
		readline.PcItem("show"),
		readline.PcItem("set", keys),
		readline.PcItem("add", keys),
		readline.PcItem("delete", keys),
		readline.PcItem("keys"),
		readline.PcItem("commit"),
		readline.PcItem("abort"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}

// run reads commands until exit or end of input.
func (e *editor) run(rl lineReader) error {
	for {
		rl.SetPrompt(e.prompt())

		line, readErr := rl.Readline()
		if errors.Is(readErr, readline.ErrInterrupt) {
			if len(line) == 0 {
				break
			}
			continue
		} else if errors.Is(readErr, io.EOF) {
			fmt.Fprintln(e.out, "Goodbye!")
			break
		} else if readErr != nil {
			return readErr
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		done, err := e.exec(line)
		if err != nil {
			fmt.Fprintf(e.out, "Error: %v\n", err)
		}
		if done {
			if err != nil {
				return err
			}
			break
		}
	}

	if e.dirty {
		fmt.Fprintln(e.out, "Uncommitted changes discarded")
	}
	return e.tx.Abort()
}

// update applies fn to a copy of the item under key, keeping its kind and
// read-only flag, and stores the copy under key. Without an item, a new
// read-write UTF-8 item holding value is stored instead.
func (e *editor) update(key, value string, fn func(*apetag.Item) error) error {
	fields := e.tx.Fields()
	existing := fields.Get(key)
	if existing == nil {
		if err := fields.Set(key, value); err != nil {
			return err
		}
		e.dirty = true
		return nil
	}

	it := existing.Clone()
	if err := fn(it); err != nil {
		return err
	}
	if err := fields.Put(key, it); err != nil {
		return err
	}
	e.dirty = true
	return nil
}

// restore puts the items of pending back into the open transaction.
func (e *editor) restore(pending *apetag.Fields) error {
	fields := e.tx.Fields()
	fields.Clear()
	for _, it := range pending.Items() {
		if err := fields.Add(it); err != nil {
			return err
		}
	}
	e.dirty = true
	return nil
}

// exec runs one command line and reports whether the editor should stop.
func (e *editor) exec(line string) (bool, error) {
	command, rest, _ := strings.Cut(line, " ")
	key, value, _ := strings.Cut(strings.TrimSpace(rest), " ")
	value = strings.TrimSpace(value)
	fields := e.tx.Fields()

	switch strings.ToLower(command) {
	case "show", "ls":
		if pretty := apetag.PrettyFields(fields); pretty != "" {
			fmt.Fprintln(e.out, pretty)
		}

	case "keys":
		for _, k := range fields.Keys() {
			fmt.Fprintln(e.out, k)
		}

	case "set":
		if key == "" {
			return false, errors.New("usage: set <key> [value]")
		}
		if err := e.update(key, value, func(it *apetag.Item) error { return it.SetValues(value) }); err != nil {
			return false, err
		}

	case "add":
		if key == "" {
			return false, errors.New("usage: add <key> <value>")
		}
		if err := e.update(key, value, func(it *apetag.Item) error { return it.Append(value) }); err != nil {
			return false, err
		}

	case "delete", "del", "rm":
		if key == "" {
			return false, errors.New("usage: delete <key>")
		}
		if !fields.Delete(key) {
			return false, fmt.Errorf("no item %q", key)
		}
		e.dirty = true

	case "commit":
		pending := fields.Clone()
		commitErr := e.tx.Commit(e.opts...)
		if err := e.begin(); err != nil {
			return true, err
		}
		if commitErr != nil {
			if err := e.restore(pending); err != nil {
				return false, fmt.Errorf("%w (uncommitted changes lost: %v)", commitErr, err)
			}
			return false, fmt.Errorf("%w (changes kept, not written)", commitErr)
		}
		fmt.Fprintln(e.out, "Committed")

	case "abort":
		if err := e.tx.Abort(); err != nil {
			return false, err
		}
		if err := e.begin(); err != nil {
			return true, err
		}
		fmt.Fprintln(e.out, "Changes discarded")

	case "help", ".help":
		fmt.Fprintln(e.out, editHelp)

	case "exit", "quit", ".exit":
		return true, nil

	default:
		return false, fmt.Errorf("unknown command %q, type \"help\" for commands", command)
	}
	return false, nil
}

func init() {
	rootCmd.AddCommand(editCmd)
}
