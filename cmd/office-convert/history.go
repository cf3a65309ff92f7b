package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/office-convert/internal/journal"
	"github.com/pdiddy/office-convert/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded conversion history",
	Long: `History lists recent conversions from the journal database, newest
first. Output defaults to a plain-text table; --json and --yaml select
machine-readable formats.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("journal", "", "SQLite journal file recording conversion history")
	historyCmd.Flags().Int("limit", 0, "maximum number of entries (default from config, 20)")
	historyCmd.Flags().Bool("json", false, "output entries as JSON")
	historyCmd.Flags().Bool("yaml", false, "output entries as YAML")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	path := setting(cmd, "journal", "journal.path")
	if path == "" {
		return fmt.Errorf("no journal configured: pass --journal or set journal.path")
	}

	store, err := journal.Open(types.JournalConfig{Path: path, MaxResults: viper.GetInt("journal.max_results")})
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")
	switch {
	case asJSON:
		return journal.WriteJSON(cmd.OutOrStdout(), entries)
	case asYAML:
		return journal.WriteYAML(cmd.OutOrStdout(), entries)
	default:
		journal.WriteTable(cmd.OutOrStdout(), entries)
		return nil
	}
}
