package cmd

import (
	"github.com/restorepath/readiness/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the readiness MCP server",
	Long: `Launch an MCP server over stdio so AI agents can score check-ins,
evaluate the binder gate and analyze trends via standard tools.

Check-ins sent by agents are only stored when the tool call sets "record".`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, historyManager)
	},
}
