package cmd

import (
	"github.com/spf13/cobra"
	"github.com/ziadkadry99/edubot/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize edubot configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the relay and writes the config file (default .edubot.yml).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
