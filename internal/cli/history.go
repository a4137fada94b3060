package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/context7-agent/internal/config"
	"github.com/mvp-joe/context7-agent/internal/history"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the conversation history",
}

var historyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the retained conversation history",
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all conversation history",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func loadStore() (*history.Store, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	store := history.NewStore(settings)
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	if store.Len() == 0 {
		fmt.Println("No history.")
		return nil
	}

	for _, entry := range store.Entries() {
		fmt.Printf("[%s] %s: %s\n", entry.Timestamp.Format("2006-01-02 15:04:05"), entry.Role, entry.Content)
	}

	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	if err := store.Clear(); err != nil {
		return err
	}

	fmt.Println("History cleared.")
	return nil
}
