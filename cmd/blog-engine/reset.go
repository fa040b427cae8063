// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/blog-engine/internal/registry"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Return every topic to the available pool",
	Long: `Reset marks all topics available and strips their usage metadata (used
timestamp, draft path, transient stats). Drafts on disk are untouched.
Running reset on an already-reset registry is harmless.`,
	RunE: runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg := registryConfig(cmd)

	store := registry.NewStore(cfg.Path)
	n, err := store.ResetAll(time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Reset %d topics in %s\n", n, cfg.Path)
	return nil
}

func init() {
	resetCmd.Flags().String("topics", "", "topic registry file (JSON or YAML)")
	resetCmd.Flags().String("handoff", "", "selected-topic handoff file")

	rootCmd.AddCommand(resetCmd)
}
