package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/edubot/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the question classifier and answer filter as tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintln(os.Stderr, "edubot MCP server started on stdio")

		return mcpserver.NewServer().Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
