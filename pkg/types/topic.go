// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the blog-engine pipeline.
package types

import "time"

// TopicStatus tracks a topic's position in the pipeline lifecycle.
type TopicStatus string

const (
	// StatusAvailable marks a topic that has not been written about yet.
	StatusAvailable TopicStatus = "available"

	// StatusUsed marks a topic that already has a generated draft.
	StatusUsed TopicStatus = "used"
)

// Difficulty classifies how demanding a topic is to write about.
type Difficulty string

const (
	DifficultyBasic        Difficulty = "basic"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Topic is one selectable unit of writing work in the registry.
type Topic struct {
	// ID uniquely identifies the topic within the registry.
	ID string `json:"id" yaml:"id"`

	// Title is the working title handed to the draft generator.
	Title string `json:"title" yaml:"title"`

	// Category groups topics for the selection policy (open set,
	// e.g. "state-management", "performance").
	Category string `json:"category" yaml:"category"`

	// Difficulty is basic, intermediate, or advanced. Advanced topics
	// are weighted up during selection.
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`

	// Keywords seed the prompt template.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Status is available or used.
	Status TopicStatus `json:"status" yaml:"status"`

	// UsedAt records when the topic was marked used. Nil while available.
	UsedAt *time.Time `json:"used_at,omitempty" yaml:"used_at,omitempty"`

	// DraftPath is the directory of the generated draft, set by mark-used.
	DraftPath string `json:"draft_path,omitempty" yaml:"draft_path,omitempty"`

	// Stats holds transient bookkeeping attached by external tooling.
	// Cleared on reset along with the other usage fields.
	Stats map[string]any `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// Available reports whether the topic can still be selected.
func (t Topic) Available() bool {
	return t.Status == StatusAvailable
}

// Registry is the full persisted collection of topics.
type Registry struct {
	// Topics lists every topic record in file order.
	Topics []Topic `json:"topics" yaml:"topics"`

	// LastUpdated is bumped on every registry write.
	LastUpdated *time.Time `json:"last_updated,omitempty" yaml:"last_updated,omitempty"`
}

// CountByStatus returns how many topics currently carry the given status.
func (r *Registry) CountByStatus(status TopicStatus) int {
	n := 0
	for _, t := range r.Topics {
		if t.Status == status {
			n++
		}
	}
	return n
}
