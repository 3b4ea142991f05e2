package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mcpadapter "github.com/codelens/codelens/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the CodeLens MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start CodeLens MCP server (stdio)",
		Long:  "Start the CodeLens MCP server using stdio transport. This lets AI coding assistants analyze, fix and report on code snippets.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newServices(cmd, zap.NewNop())
			if err != nil {
				return err
			}
			s := mcpadapter.NewCodeLensMCPServer(svc.analyze, svc.fix)
			return server.ServeStdio(s)
		},
	}
}
