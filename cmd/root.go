package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/edubot/internal/config"
	"github.com/ziadkadry99/edubot/internal/logger"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "edubot",
	Short: "Educational chat relay that tutors instead of answering",
	Long: `Edubot relays student chat messages to a hosted language model under a
tutoring preamble, streams the reply back as server-sent events, and falls
back to a second model and then a canned Socratic prompt when upstream fails.
It also classifies questions and collects feedback and bug reports.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setupLogger installs the process logger on stderr. --verbose forces debug level.
func setupLogger(cfg *config.Config) *slog.Logger {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	return logger.Setup(os.Stderr, level, cfg.Log.NoColor)
}
