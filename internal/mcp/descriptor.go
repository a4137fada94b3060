// Package mcp manages the Context7 MCP server descriptor and the stdio
// client used to talk to the server it describes.
package mcp

import (
	"encoding/json"
	"fmt"
	"os"
)

// ServerName is the key of the Context7 entry in the descriptor.
const ServerName = "context7"

// Descriptor models the mcp.json document consumed by MCP-aware clients.
type Descriptor struct {
	MCPServers map[string]ServerConfig `json:"mcpServers"`
}

// ServerConfig describes how to launch one MCP server over stdio.
type ServerConfig struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
}

// DefaultDescriptor returns the compiled-in descriptor: a single Context7
// server launched via npx.
func DefaultDescriptor() *Descriptor {
	return &Descriptor{
		MCPServers: map[string]ServerConfig{
			ServerName: {
				Command: "npx",
				Args:    []string{"-y", "@upstash/context7-mcp@latest"},
				Env:     map[string]string{},
			},
		},
	}
}

// Ensure writes the default descriptor to path if no file exists there.
// Existing content is never read or validated. The returned descriptor is
// always the compiled-in default; created reports whether a write happened.
//
// The write is a single full-content write with no locking, so concurrent
// processes racing on the same path get last-writer-wins.
func Ensure(path string) (desc *Descriptor, created bool, err error) {
	desc = DefaultDescriptor()

	if _, err := os.Stat(path); err == nil {
		return desc, false, nil
	} else if !os.IsNotExist(err) {
		return nil, false, fmt.Errorf("failed to stat MCP descriptor: %w", err)
	}

	data, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal MCP descriptor: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, false, fmt.Errorf("failed to write MCP descriptor: %w", err)
	}

	return desc, true, nil
}
