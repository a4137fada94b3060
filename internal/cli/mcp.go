package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mvp-joe/context7-agent/internal/config"
	"github.com/mvp-joe/context7-agent/internal/mcp"
)

var mcpToolsTimeout time.Duration

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Manage the Context7 MCP server integration",
}

var mcpInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the MCP server descriptor if it is missing",
	Long: `Ensure the mcp.json descriptor exists at the configured path. An existing
file is left untouched.

Example:
  context7-agent mcp init`,
	RunE: runMCPInit,
}

var mcpToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Launch the Context7 MCP server and list its tools",
	Long: `Start the Context7 MCP server described by mcp.json over stdio, perform
the initialize handshake, and print the tools it advertises.

Example:
  context7-agent mcp tools`,
	RunE: runMCPTools,
}

func init() {
	mcpToolsCmd.Flags().DurationVar(&mcpToolsTimeout, "timeout", 30*time.Second, "Timeout for the MCP handshake and tool listing")
	mcpCmd.AddCommand(mcpInitCmd)
	mcpCmd.AddCommand(mcpToolsCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPInit(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	_, created, err := mcp.Ensure(settings.MCPConfigPath)
	if err != nil {
		return err
	}

	if created {
		fmt.Printf("Wrote MCP descriptor to %s\n", settings.MCPConfigPath)
	} else {
		fmt.Printf("MCP descriptor already present at %s\n", settings.MCPConfigPath)
	}

	return nil
}

func runMCPTools(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	desc, _, err := mcp.Ensure(settings.MCPConfigPath)
	if err != nil {
		return err
	}

	server, ok := desc.MCPServers[mcp.ServerName]
	if !ok {
		return fmt.Errorf("descriptor has no %q server entry", mcp.ServerName)
	}

	ctx, cancel := context.WithTimeout(context.Background(), mcpToolsTimeout)
	defer cancel()

	log.WithField("command", server.Command).Debug("launching MCP server")

	client, err := mcp.Connect(ctx, server)
	if err != nil {
		return err
	}
	defer client.Close()

	info := client.ServerInfo()
	fmt.Fprintf(os.Stderr, "Connected to %s %s\n\n", info.Name, info.Version)

	tools, err := client.ListTools(ctx)
	if err != nil {
		return err
	}

	for _, tool := range tools {
		fmt.Printf("%s\n    %s\n", tool.Name, tool.Description)
	}

	return nil
}
