package cmd

import (
	"github.com/covidboard/covidstore/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the covidstore MCP server",
	Long:  `Launch an MCP server that allows AI agents to query the COVID-19 dataset via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// The protocol owns stdio, so setup must not print anything there.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, feedClient, cacheManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
