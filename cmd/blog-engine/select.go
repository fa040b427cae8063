// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/blog-engine/internal/registry"
	"github.com/pdiddy/blog-engine/internal/selector"
	"github.com/pdiddy/blog-engine/pkg/types"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Pick the next topic with weighted randomness",
	Long: `Select filters the registry to available topics, weights them (advanced
topics up, recently used categories down), and draws one at random. The
chosen topic is written to the handoff file for the generate stage; the
registry itself is not modified, so select can be rerun safely until
generate commits a draft.`,
	RunE: runSelect,
}

func runSelect(cmd *cobra.Command, args []string) error {
	cfg := registryConfig(cmd)

	store := registry.NewStore(cfg.Path)
	reg, err := store.Load()
	if err != nil {
		return err
	}

	available := reg.CountByStatus(types.StatusAvailable)
	if available == 0 {
		return fmt.Errorf("%w in %s: add more or run reset", selector.ErrNoAvailableTopics, cfg.Path)
	}
	fmt.Printf("Found %d available topics\n", available)

	seed, _ := cmd.Flags().GetUint64("seed")
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	topic, err := selector.Select(reg, rng)
	if err != nil {
		return err
	}

	if show, _ := cmd.Flags().GetBool("show-weights"); show {
		fmt.Println("\nSelection weights:")
		for _, w := range selector.Weights(reg) {
			fmt.Printf("  %-24s %-20s %.2f\n", w.Topic.ID, w.Topic.Category, w.Weight)
		}
	}

	fmt.Printf("\nSelected: %s\n", topic.Title)
	fmt.Printf("  Category:   %s\n", topic.Category)
	fmt.Printf("  Difficulty: %s\n", topic.Difficulty)

	handoff := registry.NewHandoff(cfg.HandoffPath)
	if err := handoff.Save(topic); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "\nTopic saved to %s\n", cfg.HandoffPath)
	return nil
}

func init() {
	selectCmd.Flags().String("topics", "", "topic registry file (JSON or YAML)")
	selectCmd.Flags().String("handoff", "", "selected-topic handoff file")
	selectCmd.Flags().Uint64("seed", 0, "random seed (0 = time-based)")
	selectCmd.Flags().Bool("show-weights", false, "print the computed weight for each available topic")

	rootCmd.AddCommand(selectCmd)
}
