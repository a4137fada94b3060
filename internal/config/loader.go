package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Loader provides settings loading capabilities.
type Loader interface {
	// Load resolves settings from overrides, environment variables, the .env
	// file, and defaults, then ensures required directories exist.
	Load() (*Settings, error)
}

// Option configures a Loader.
type Option func(*loader)

// WithOverride pins a field to an explicit value, taking precedence over all
// other sources. The field name matches the .env key, lowercased
// (e.g. "openai_api_key", "max_history").
func WithOverride(field string, value any) Option {
	return func(l *loader) {
		l.overrides[strings.ToLower(field)] = value
	}
}

type loader struct {
	rootDir   string
	overrides map[string]any
}

// NewLoader creates a settings loader rooted at the given directory. The .env
// file is read from rootDir, and the default history path resolves beneath it.
func NewLoader(rootDir string, opts ...Option) Loader {
	l := &loader{
		rootDir:   rootDir,
		overrides: make(map[string]any),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves settings with the following priority (highest to lowest):
// 1. Explicit overrides (WithOverride)
// 2. Environment variables (CONTEXT7_*)
// 3. .env file in the root directory
// 4. Default values
func (l *loader) Load() (*Settings, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	// Read .env from the root directory (dotenv format, unprefixed keys)
	v.SetConfigFile(filepath.Join(l.rootDir, ".env"))
	v.SetConfigType("env")

	// Enable environment variable overrides
	v.SetEnvPrefix("CONTEXT7")
	v.AutomaticEnv()

	bindEnvVars(v)
	setDefaults(v, home, l.rootDir)

	// Read .env (not an error if the file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read .env file: %w", err)
		}
	}

	// Explicit overrides win over every other source
	for field, value := range l.overrides {
		v.Set(field, value)
	}

	cfg, err := resolve(v)
	if err != nil {
		return nil, err
	}

	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// bindEnvVars binds the recognized environment variables. Anything else under
// the CONTEXT7_ prefix is ignored.
func bindEnvVars(v *viper.Viper) {
	v.BindEnv("openai_api_key")
	v.BindEnv("openai_base_url")
	v.BindEnv("openai_model")
	v.BindEnv("mcp_config_path")
	v.BindEnv("history_path")
	v.BindEnv("max_history")
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper, home, rootDir string) {
	v.SetDefault("openai_base_url", DefaultBaseURL)
	v.SetDefault("openai_model", DefaultModel)
	v.SetDefault("mcp_config_path", filepath.Join(home, ".context7", "mcp.json"))
	v.SetDefault("history_path", filepath.Join(rootDir, "data", "history.json"))
	v.SetDefault("max_history", DefaultMaxHistory)
}

// resolve reads each field out of viper with explicit coercion, so a bad value
// reports the field and the offending input rather than a generic cast error.
func resolve(v *viper.Viper) (*Settings, error) {
	cfg := &Settings{
		APIKey:        v.GetString("openai_api_key"),
		BaseURL:       v.GetString("openai_base_url"),
		Model:         v.GetString("openai_model"),
		MCPConfigPath: v.GetString("mcp_config_path"),
		HistoryPath:   v.GetString("history_path"),
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: openai_api_key is required", ErrMissingRequiredField)
	}

	maxHistory, err := cast.ToIntE(v.Get("max_history"))
	if err != nil {
		return nil, fmt.Errorf("%w: max_history=%q is not an integer", ErrInvalidFieldValue, v.GetString("max_history"))
	}
	cfg.MaxHistory = maxHistory

	return cfg, nil
}

// ensureDirectories creates the parent directories of the MCP descriptor and
// the history file. MkdirAll is idempotent, so racing processes are safe here.
func ensureDirectories(cfg *Settings) error {
	for _, dir := range []string{filepath.Dir(cfg.MCPConfigPath), filepath.Dir(cfg.HistoryPath)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// LoadSettings is a convenience function that creates a loader and loads
// settings. It uses the current working directory as the root.
func LoadSettings(opts ...Option) (*Settings, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd, opts...).Load()
}

// LoadSettingsFromDir loads settings rooted at a specific directory.
func LoadSettingsFromDir(rootDir string, opts ...Option) (*Settings, error) {
	return NewLoader(rootDir, opts...).Load()
}
