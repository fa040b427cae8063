// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/blog-engine/internal/fsutil"
	"github.com/pdiddy/blog-engine/pkg/types"
)

const (
	draftFile    = "draft.md"
	metadataFile = "metadata.json"
)

// SaveDraft writes the generated content and its metadata record to
// draftsDir/YYYY-MM-DD-<topic-id>/. Returns the draft directory and the
// metadata that was written.
func SaveDraft(draftsDir string, topic types.Topic, resp Response, model string, now time.Time) (string, types.DraftMetadata, error) {
	draftDir := filepath.Join(draftsDir, fmt.Sprintf("%s-%s", now.Format("2006-01-02"), topic.ID))
	if err := os.MkdirAll(draftDir, 0o755); err != nil {
		return "", types.DraftMetadata{}, fmt.Errorf("creating draft directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(draftDir, draftFile), []byte(resp.Text), 0o644); err != nil {
		return "", types.DraftMetadata{}, fmt.Errorf("writing draft: %w", err)
	}

	meta := types.DraftMetadata{
		TopicID:      topic.ID,
		Title:        topic.Title,
		Category:     topic.Category,
		Difficulty:   topic.Difficulty,
		Keywords:     topic.Keywords,
		GeneratedAt:  now,
		WordCount:    len(strings.Fields(resp.Text)),
		CharCount:    len(resp.Text),
		Model:        model,
		TokensInput:  resp.Usage.InputTokens,
		TokensOutput: resp.Usage.OutputTokens,
		Status:       "draft",
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", types.DraftMetadata{}, fmt.Errorf("encoding metadata: %w", err)
	}
	data = append(data, '\n')
	if err := fsutil.WriteFileAtomic(filepath.Join(draftDir, metadataFile), data, 0o644); err != nil {
		return "", types.DraftMetadata{}, fmt.Errorf("writing metadata: %w", err)
	}

	return draftDir, meta, nil
}
