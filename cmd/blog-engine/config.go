// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/blog-engine/internal/secrets"
	"github.com/pdiddy/blog-engine/pkg/types"
)

// stringSetting resolves a setting as flag > config file/env > default.
func stringSetting(cmd *cobra.Command, flag, viperKey string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return viper.GetString(viperKey)
}

// registryConfig assembles the registry settings for a command.
func registryConfig(cmd *cobra.Command) types.RegistryConfig {
	return types.RegistryConfig{
		Path:        stringSetting(cmd, "topics", "registry.path"),
		HandoffPath: stringSetting(cmd, "handoff", "registry.handoff_path"),
	}
}

// generationConfig assembles the generation settings for a command.
// The API key is resolved separately via resolveAPIKey.
func generationConfig(cmd *cobra.Command) types.GenerationConfig {
	return types.GenerationConfig{
		AIConfig: types.AIConfig{
			Model:       stringSetting(cmd, "model", "generation.model"),
			MaxTokens:   viper.GetInt("generation.max_tokens"),
			Temperature: viper.GetFloat64("generation.temperature"),
		},
		DraftsDir:    stringSetting(cmd, "drafts-dir", "generation.drafts_dir"),
		TemplatePath: stringSetting(cmd, "template", "generation.template_path"),
	}
}

// historyConfig assembles the ledger settings for a command.
func historyConfig(cmd *cobra.Command) types.HistoryConfig {
	return types.HistoryConfig{
		DBPath: stringSetting(cmd, "history-db", "history.db_path"),
	}
}

// resolveAPIKey returns the Anthropic API key, checking the flag, then the
// environment (after .env loading), then the .secrets/ directory. A missing
// credential is a fatal configuration error.
func resolveAPIKey(cmd *cobra.Command) (string, error) {
	if key, _ := cmd.Flags().GetString("api-key"); key != "" {
		return key, nil
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return key, nil
	}
	if key := loadedSecrets.Get(secrets.AnthropicAPIKey); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("ANTHROPIC_API_KEY not found: set it in the environment, .env, or .secrets/%s", secrets.AnthropicAPIKey)
}
