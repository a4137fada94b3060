// Package config provides settings loading for the Context7 agent.
//
// Settings are resolved from layered sources, highest priority first:
//
//  1. Explicit overrides (WithOverride, supplied at construction)
//  2. Environment variables (CONTEXT7_* prefix)
//  3. A .env file in the loader's root directory (unprefixed keys)
//  4. Built-in defaults
//
// Environment Variable Convention:
//   - Prefix: CONTEXT7_
//   - Key names: field name uppercased (CONTEXT7_OPENAI_API_KEY)
//   - Unrecognized variables under the prefix are ignored
//
// The .env file uses unprefixed field names:
//
//	OPENAI_API_KEY=sk-...
//	OPENAI_MODEL=gpt-4o
//	MAX_HISTORY=500
//
// A Settings value is constructed once at process start and passed explicitly
// to consumers; there is no package-level instance. On successful construction
// the parent directories of MCPConfigPath and HistoryPath are guaranteed to
// exist.
//
// Example usage:
//
//	settings, err := config.LoadSettings()
//	if err != nil {
//	    return err
//	}
//	store := history.NewStore(settings)
package config

// Settings holds the resolved agent configuration. It is immutable after
// construction.
type Settings struct {
	APIKey        string // OpenAI API key (required)
	BaseURL       string // OpenAI-compatible API base URL
	Model         string // Chat model identifier
	MCPConfigPath string // Path to the MCP server descriptor (mcp.json)
	HistoryPath   string // Path to the conversation history file
	MaxHistory    int    // Maximum number of retained history entries
}

// Built-in defaults for optional fields. Path defaults are resolved at load
// time against the user home directory and the loader's root directory.
const (
	DefaultBaseURL    = "https://api.openai.com/v1"
	DefaultModel      = "gpt-4o-mini"
	DefaultMaxHistory = 1000
)
