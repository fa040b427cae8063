// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/blog-engine/internal/generate"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify Anthropic API connectivity and credentials",
	Long: `Check sends a minimal test message to the Anthropic API to confirm the
configured credential works before running the pipeline.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	genCfg := generationConfig(cmd)

	apiKey, err := resolveAPIKey(cmd)
	if err != nil {
		return err
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	backend := &generate.AnthropicBackend{
		APIKey:    apiKey,
		Model:     genCfg.Model,
		MaxTokens: 100,
		Client:    &http.Client{Timeout: timeout},
	}

	fmt.Println("Sending test message...")
	resp, err := backend.Complete(context.Background(),
		"Reply with a single short sentence confirming you received this message.")
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	fmt.Println("Connection successful.")
	fmt.Printf("Response: %s\n", resp.Text)
	return nil
}

func init() {
	checkCmd.Flags().String("model", "", "AI model identifier")
	checkCmd.Flags().String("api-key", "", "Anthropic API key (overrides environment and .secrets/)")
	checkCmd.Flags().Duration("timeout", 30*time.Second, "API request timeout")

	rootCmd.AddCommand(checkCmd)
}
