// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/blog-engine/pkg/types"
)

const sampleJSON = `{
  "topics": [
    {
      "id": "isolates-deep-dive",
      "title": "Dart Isolates",
      "category": "performance",
      "difficulty": "advanced",
      "keywords": ["isolates", "concurrency"],
      "status": "available"
    },
    {
      "id": "widget-testing-intro",
      "title": "Widget Testing",
      "category": "testing",
      "difficulty": "basic",
      "keywords": ["widget tests"],
      "status": "used",
      "used_at": "2026-02-10T09:30:00Z",
      "draft_path": "drafts/2026-02-10-widget-testing-intro",
      "stats": {"views": 120}
    }
  ],
  "last_updated": "2026-02-10T09:30:00Z"
}
`

const sampleYAML = `topics:
  - id: isolates-deep-dive
    title: Dart Isolates
    category: performance
    difficulty: advanced
    keywords: [isolates, concurrency]
    status: available
  - id: widget-testing-intro
    title: Widget Testing
    category: testing
    difficulty: basic
    keywords: [widget tests]
    status: used
    used_at: 2026-02-10T09:30:00Z
`

func writeRegistry(t *testing.T, name, content string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return NewStore(path)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json registry", "topics.json", sampleJSON},
		{"yaml registry", "topics.yaml", sampleYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := writeRegistry(t, tt.file, tt.content)

			reg, err := store.Load()
			require.NoError(t, err)
			require.Len(t, reg.Topics, 2)

			first := reg.Topics[0]
			assert.Equal(t, "isolates-deep-dive", first.ID)
			assert.Equal(t, types.DifficultyAdvanced, first.Difficulty)
			assert.Equal(t, types.StatusAvailable, first.Status)
			assert.Nil(t, first.UsedAt)

			second := reg.Topics[1]
			assert.Equal(t, types.StatusUsed, second.Status)
			require.NotNil(t, second.UsedAt)
			assert.Equal(t, 2026, second.UsedAt.Year())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "topics.json"))
	_, err := store.Load()
	require.ErrorIs(t, err, ErrRegistryNotFound)
}

func TestLoadInvalidContent(t *testing.T) {
	store := writeRegistry(t, "topics.json", "{not json")
	_, err := store.Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRegistryNotFound)
}

func TestMarkUsed(t *testing.T) {
	store := writeRegistry(t, "topics.json", sampleJSON)
	now := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)

	require.NoError(t, store.MarkUsed("isolates-deep-dive", "drafts/2026-03-01-isolates-deep-dive", now))

	reg, err := store.Load()
	require.NoError(t, err)

	topic := reg.Topics[0]
	assert.Equal(t, types.StatusUsed, topic.Status)
	require.NotNil(t, topic.UsedAt)
	assert.True(t, topic.UsedAt.Equal(now))
	assert.Equal(t, "drafts/2026-03-01-isolates-deep-dive", topic.DraftPath)

	require.NotNil(t, reg.LastUpdated)
	assert.True(t, reg.LastUpdated.Equal(now))
}

func TestMarkUsedLeavesOtherTopicsAlone(t *testing.T) {
	store := writeRegistry(t, "topics.json", sampleJSON)
	before, err := store.Load()
	require.NoError(t, err)

	require.NoError(t, store.MarkUsed("isolates-deep-dive", "drafts/x", time.Now()))

	after, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, before.Topics[1], after.Topics[1])
}

func TestMarkUsedUnknownID(t *testing.T) {
	store := writeRegistry(t, "topics.json", sampleJSON)
	before, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	err = store.MarkUsed("no-such-topic", "drafts/x", time.Now())
	require.ErrorIs(t, err, ErrTopicNotFound)

	after, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after, "registry file must be unchanged after a failed mark-used")
}

func TestMarkUsedYAML(t *testing.T) {
	store := writeRegistry(t, "topics.yaml", sampleYAML)
	now := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)

	require.NoError(t, store.MarkUsed("isolates-deep-dive", "drafts/x", now))

	reg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, types.StatusUsed, reg.Topics[0].Status)
}

func TestResetAll(t *testing.T) {
	store := writeRegistry(t, "topics.json", sampleJSON)
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	n, err := store.ResetAll(now)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	reg, err := store.Load()
	require.NoError(t, err)
	for _, topic := range reg.Topics {
		assert.Equal(t, types.StatusAvailable, topic.Status)
		assert.Nil(t, topic.UsedAt, "topic %s kept a used timestamp", topic.ID)
		assert.Empty(t, topic.DraftPath)
		assert.Nil(t, topic.Stats)
	}
	require.NotNil(t, reg.LastUpdated)
	assert.True(t, reg.LastUpdated.Equal(now))
}

func TestResetAllIdempotent(t *testing.T) {
	store := writeRegistry(t, "topics.json", sampleJSON)

	_, err := store.ResetAll(time.Now())
	require.NoError(t, err)
	first, err := store.Load()
	require.NoError(t, err)

	_, err = store.ResetAll(time.Now())
	require.NoError(t, err)
	second, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, first.Topics, second.Topics)
}

func TestResetAllMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "topics.json"))
	_, err := store.ResetAll(time.Now())
	require.ErrorIs(t, err, ErrRegistryNotFound)
}
