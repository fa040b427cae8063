// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RegistryConfig holds the locations of the persisted topic state.
type RegistryConfig struct {
	// Path is the topic registry file (JSON or YAML by extension).
	Path string `json:"path" yaml:"path"`

	// HandoffPath is the single-slot selected-topic file passed from
	// select to generate.
	HandoffPath string `json:"handoff_path" yaml:"handoff_path"`
}

// AIConfig holds shared settings for calls to the Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "claude-sonnet-4-5-20250929").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxTokens caps the length of the generated draft.
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Temperature controls sampling creativity (0.0-1.0).
	Temperature float64 `json:"temperature" yaml:"temperature"`
}

// GenerationConfig holds settings for the draft generation stage.
type GenerationConfig struct {
	AIConfig `yaml:",inline"`

	// DraftsDir is the base directory for generated drafts
	// (one YYYY-MM-DD-<topic-id> subdirectory per draft).
	DraftsDir string `json:"drafts_dir" yaml:"drafts_dir"`

	// TemplatePath is the prompt template file.
	TemplatePath string `json:"template_path" yaml:"template_path"`
}

// HistoryConfig holds settings for the generation-run ledger.
type HistoryConfig struct {
	// DBPath is the SQLite database file for recorded runs.
	DBPath string `json:"db_path" yaml:"db_path"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Registry   RegistryConfig   `json:"registry" yaml:"registry"`
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	History    HistoryConfig    `json:"history" yaml:"history"`
}
