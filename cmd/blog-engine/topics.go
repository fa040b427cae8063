// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/blog-engine/internal/registry"
	"github.com/pdiddy/blog-engine/pkg/types"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the topic registry",
	Long: `Topics prints every registry record with its status. Use --status to
filter and --json for machine-readable output.`,
	RunE: runTopics,
}

func runTopics(cmd *cobra.Command, args []string) error {
	cfg := registryConfig(cmd)

	store := registry.NewStore(cfg.Path)
	reg, err := store.Load()
	if err != nil {
		return err
	}

	statusFilter, _ := cmd.Flags().GetString("status")
	var topics []types.Topic
	for _, t := range reg.Topics {
		if statusFilter != "" && string(t.Status) != statusFilter {
			continue
		}
		topics = append(topics, t)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(topics)
	}

	if len(topics) == 0 {
		fmt.Println("No topics found.")
		return nil
	}

	fmt.Printf("%-24s  %-40s  %-20s  %-12s  %s\n", "ID", "Title", "Category", "Difficulty", "Status")
	for _, t := range topics {
		title := t.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Printf("%-24s  %-40s  %-20s  %-12s  %s\n", t.ID, title, t.Category, t.Difficulty, t.Status)
	}

	fmt.Printf("\n%d topics (%d available, %d used)\n", len(reg.Topics),
		reg.CountByStatus(types.StatusAvailable), reg.CountByStatus(types.StatusUsed))
	return nil
}

func init() {
	topicsCmd.Flags().String("topics", "", "topic registry file (JSON or YAML)")
	topicsCmd.Flags().String("handoff", "", "selected-topic handoff file")
	topicsCmd.Flags().String("status", "", "filter by status: available or used")
	topicsCmd.Flags().Bool("json", false, "output topics as JSON")

	rootCmd.AddCommand(topicsCmd)
}
