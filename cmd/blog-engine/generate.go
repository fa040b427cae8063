// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/blog-engine/internal/generate"
	"github.com/pdiddy/blog-engine/internal/history"
	"github.com/pdiddy/blog-engine/internal/registry"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and save a draft for the selected topic",
	Long: `Generate reads the topic written by select, renders the prompt template,
calls the Anthropic API, and saves the draft with its metadata under the
drafts directory. On success the topic is marked used in the registry, the
run is recorded in the ledger, and the handoff file is removed.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	regCfg := registryConfig(cmd)
	genCfg := generationConfig(cmd)

	handoff := registry.NewHandoff(regCfg.HandoffPath)
	topic, err := handoff.Load()
	if err != nil {
		return err
	}

	apiKey, err := resolveAPIKey(cmd)
	if err != nil {
		return err
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	backend := &generate.AnthropicBackend{
		APIKey:      apiKey,
		Model:       genCfg.Model,
		MaxTokens:   genCfg.MaxTokens,
		Temperature: genCfg.Temperature,
		Client:      &http.Client{Timeout: timeout},
	}

	ctx := context.Background()
	now := time.Now()

	result, err := generate.Run(ctx, backend, topic, genCfg, now, os.Stdout)
	if err != nil {
		return err
	}

	store := registry.NewStore(regCfg.Path)
	if err := store.MarkUsed(topic.ID, result.DraftDir, now); err != nil {
		return err
	}
	fmt.Printf("Topic %s marked as used in %s\n", topic.ID, regCfg.Path)

	recordRun(cmd, topic.ID, result, now)

	if err := handoff.Clear(); err != nil {
		return err
	}

	fmt.Printf("\nNext steps:\n")
	fmt.Printf("  1. Review the draft at %s/draft.md\n", result.DraftDir)
	fmt.Printf("  2. Edit and personalize the content\n")
	fmt.Printf("  3. Publish when ready\n")
	return nil
}

// recordRun appends the run to the ledger. The ledger is advisory, so
// failures are warnings rather than errors.
func recordRun(cmd *cobra.Command, topicID string, result generate.Result, now time.Time) {
	ledger, err := history.NewStore(historyConfig(cmd))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: ledger unavailable: %v\n", err)
		return
	}
	defer ledger.Close()

	run := history.Run{
		TopicID:      topicID,
		Title:        result.Metadata.Title,
		Category:     result.Metadata.Category,
		Model:        result.Metadata.Model,
		TokensInput:  result.Metadata.TokensInput,
		TokensOutput: result.Metadata.TokensOutput,
		WordCount:    result.Metadata.WordCount,
		DraftPath:    result.DraftDir,
		CreatedAt:    now,
	}
	if err := ledger.Record(context.Background(), run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}
}

func init() {
	generateCmd.Flags().String("topics", "", "topic registry file (JSON or YAML)")
	generateCmd.Flags().String("handoff", "", "selected-topic handoff file")
	generateCmd.Flags().String("model", "", "AI model identifier for generation")
	generateCmd.Flags().String("api-key", "", "Anthropic API key (overrides environment and .secrets/)")
	generateCmd.Flags().String("template", "", "prompt template file")
	generateCmd.Flags().String("drafts-dir", "", "directory for generated drafts")
	generateCmd.Flags().String("history-db", "", "generation ledger database file")
	generateCmd.Flags().Duration("timeout", 2*time.Minute, "API request timeout")

	rootCmd.AddCommand(generateCmd)
}
