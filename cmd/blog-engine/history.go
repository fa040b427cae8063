// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/blog-engine/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded generation runs",
	Long: `History reads the local SQLite ledger of completed generation runs and
prints them newest first.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	ledger, err := history.NewStore(historyConfig(cmd))
	if err != nil {
		return err
	}
	defer ledger.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := ledger.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-19s  %-24s  %-30s  %8s  %8s\n", "Date", "Topic", "Model", "Tokens", "Words")
	for _, r := range runs {
		fmt.Printf("%-19s  %-24s  %-30s  %8d  %8d\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"), r.TopicID, r.Model,
			r.TokensInput+r.TokensOutput, r.WordCount)
	}
	fmt.Printf("\n%d runs\n", len(runs))
	return nil
}

func init() {
	historyCmd.Flags().String("history-db", "", "generation ledger database file")
	historyCmd.Flags().Int("limit", 20, "maximum runs to list")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")

	rootCmd.AddCommand(historyCmd)
}
