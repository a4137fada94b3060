package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// Client wraps an MCP stdio session with a server launched from a descriptor
// entry.
type Client struct {
	mcp        *client.Client
	serverInfo mcp.Implementation
}

// Connect launches the server described by cfg and performs the MCP
// initialize handshake. The caller owns the returned client and must Close it
// to terminate the subprocess.
func Connect(ctx context.Context, cfg ServerConfig) (*Client, error) {
	env := make([]string, 0, len(cfg.Env))
	for k, v := range cfg.Env {
		env = append(env, k+"="+v)
	}

	c, err := client.NewStdioMCPClient(cfg.Command, env, cfg.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to start MCP server: %w", err)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{
		Name:    "context7-agent",
		Version: "1.0.0",
	}

	result, err := c.Initialize(ctx, initReq)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize MCP session: %w", err)
	}

	return &Client{
		mcp:        c,
		serverInfo: result.ServerInfo,
	}, nil
}

// ServerInfo returns the implementation info the server reported during the
// initialize handshake.
func (c *Client) ServerInfo() mcp.Implementation {
	return c.serverInfo
}

// ListTools returns the tools the server advertises.
func (c *Client) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	result, err := c.mcp.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	return result.Tools, nil
}

// Close terminates the stdio session and the server subprocess.
func (c *Client) Close() error {
	return c.mcp.Close()
}
