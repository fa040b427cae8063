// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the blog-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/blog-engine/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd is the base command for the blog-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "blog-engine",
	Short: "Content pipeline for AI-generated blog drafts",
	Long: `blog-engine drives a blog-draft pipeline over a persisted topic registry.
Topics are picked with weighted randomness (advanced topics preferred,
recently used categories avoided), drafts are generated through the Anthropic
API, and every run is tracked in the registry and a local ledger.

Each pipeline stage is a subcommand: select picks the next topic, generate
produces and saves the draft, and reset returns every topic to the pool.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; environment variables win over .secrets/ files.
		_ = godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./blog-engine.yaml or ~/.config/blog-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("blog-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "blog-engine"))
		}
	}

	viper.SetDefault("registry.path", "config/topics.json")
	viper.SetDefault("registry.handoff_path", ".selected_topic.json")
	viper.SetDefault("generation.model", "claude-sonnet-4-5-20250929")
	viper.SetDefault("generation.max_tokens", 8000)
	viper.SetDefault("generation.temperature", 0.7)
	viper.SetDefault("generation.drafts_dir", "drafts")
	viper.SetDefault("generation.template_path", "config/prompt_template.txt")
	viper.SetDefault("history.db_path", ".blog-engine/history.db")

	viper.SetEnvPrefix("BLOG_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
