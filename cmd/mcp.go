package cmd

import (
	"github.com/huangsam/moodtrack/internal/mcp"
	"github.com/huangsam/moodtrack/internal/store"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the moodtrack MCP server",
	Long:  `Launch an MCP server over stdio so AI agents can record check-ins and query trends via standard tools.`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, store.Manager)
	},
}
