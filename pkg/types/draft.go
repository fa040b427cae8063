// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// TokenUsage is the token-count report returned by the generation API.
type TokenUsage struct {
	// InputTokens counts the prompt tokens billed for the request.
	InputTokens int `json:"input_tokens" yaml:"input_tokens"`

	// OutputTokens counts the completion tokens billed for the request.
	OutputTokens int `json:"output_tokens" yaml:"output_tokens"`
}

// Total returns the combined input and output token count.
func (u TokenUsage) Total() int {
	return u.InputTokens + u.OutputTokens
}

// DraftMetadata is the bookkeeping record written next to each generated
// draft (metadata.json in the draft directory).
type DraftMetadata struct {
	// TopicID links the draft back to its registry record.
	TopicID string `json:"topic_id" yaml:"topic_id"`

	// Title is the topic title the draft was generated for.
	Title string `json:"title" yaml:"title"`

	// Category and Difficulty are copied from the topic record.
	Category   string     `json:"category" yaml:"category"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`

	// Keywords are copied from the topic record.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// GeneratedAt is when the draft was produced.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// WordCount and CharCount describe the draft body.
	WordCount int `json:"word_count" yaml:"word_count"`
	CharCount int `json:"char_count" yaml:"char_count"`

	// Model is the model identifier used for generation.
	Model string `json:"model" yaml:"model"`

	// TokensInput and TokensOutput come from the API usage report.
	TokensInput  int `json:"tokens_input" yaml:"tokens_input"`
	TokensOutput int `json:"tokens_output" yaml:"tokens_output"`

	// Status is always "draft" for freshly generated content; editing
	// tooling downstream may advance it.
	Status string `json:"status" yaml:"status"`
}
