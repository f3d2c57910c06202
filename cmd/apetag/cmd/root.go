package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/simonhull/apetag"
	"github.com/simonhull/apetag/internal/config"
)

var (
	cfg    = config.DefaultConfig()
	logger = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "apetag",
	Short: "Read and write APEv2 tags",
	Long: `apetag reads, edits and removes APEv2 tags at the end of audio files.

For .mp3 files the ID3v1.1 tag that follows the APE tag is kept in sync
with it. Use --shadow or --shadow=false to override that choice.

Settings are read from $HOME/.apetag.yaml when it exists:

  check_shadow: true
  backup_suffix: .bak
  verify: true
  logging:
    level: warn`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default $HOME/.apetag.yaml)")
	rootCmd.PersistentFlags().Bool("shadow", false, "maintain an ID3v1.1 tag after the APE tag")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error or off")
	rootCmd.PersistentFlags().String("backup", "", "copy each file to FILE+SUFFIX before writing")
	rootCmd.PersistentFlags().Bool("verify", false, "re-read written tags and compare digests")
}

// setup loads the config file, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	var err error
	if path != "" {
		cfg, err = config.LoadConfig(path)
	} else if path, err = config.DefaultPath(); err == nil {
		cfg, err = config.LoadOrDefault(path)
	} else {
		cfg, err = config.DefaultConfig(), nil
	}
	if err != nil {
		return err
	}

	if flags.Changed("shadow") {
		check, _ := flags.GetBool("shadow")
		cfg.CheckShadow = &check
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("backup") {
		cfg.BackupSuffix, _ = flags.GetString("backup")
	}
	if flags.Changed("verify") {
		cfg.Verify, _ = flags.GetBool("verify")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err = cfg.Logging.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger.Debug("configured", zap.String("config", path), zap.Any("check_shadow", cfg.CheckShadow))
	return nil
}

func openTag(path string) *apetag.Tag {
	return apetag.New(path, cfg.TagOptions(logger)...)
}
