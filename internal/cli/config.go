package cli

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mvp-joe/context7-agent/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect agent configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Long: `Resolve configuration from environment variables, the .env file, and
defaults, then print the result. The API key is redacted.`,
	RunE: runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log.WithField("base_url", settings.BaseURL).Debug("configuration resolved")

	fmt.Printf("openai_api_key:  %s\n", redactKey(settings.APIKey))
	fmt.Printf("openai_base_url: %s\n", settings.BaseURL)
	fmt.Printf("openai_model:    %s\n", settings.Model)
	fmt.Printf("mcp_config_path: %s\n", settings.MCPConfigPath)
	fmt.Printf("history_path:    %s\n", settings.HistoryPath)
	fmt.Printf("max_history:     %d\n", settings.MaxHistory)

	return nil
}

// redactKey hides the middle of a secret, keeping just enough to identify it.
func redactKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", 4) + key[len(key)-4:]
}
