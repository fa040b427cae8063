// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate produces blog drafts for selected topics through a
// Generative AI API and persists them with bookkeeping metadata.
package generate

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/blog-engine/pkg/types"
)

// Backend abstracts the Generative AI API so tests can supply a mock.
type Backend interface {
	Complete(ctx context.Context, prompt string) (Response, error)
}

// Response is the generated text plus the API's token-usage report.
type Response struct {
	Text  string
	Usage types.TokenUsage
}

// Result describes a completed generation run.
type Result struct {
	// DraftDir is the directory holding draft.md and metadata.json.
	DraftDir string

	// Metadata is the bookkeeping record written to the draft directory.
	Metadata types.DraftMetadata
}

// Run generates a draft for topic and saves it under cfg.DraftsDir. The
// prompt is rendered from cfg.TemplatePath. Any backend failure is terminal;
// nothing is written unless generation succeeds. Progress goes to w.
func Run(ctx context.Context, backend Backend, topic types.Topic, cfg types.GenerationConfig, now time.Time, w io.Writer) (Result, error) {
	tmpl, err := LoadTemplate(cfg.TemplatePath)
	if err != nil {
		return Result{}, err
	}

	prompt, err := RenderPrompt(tmpl, topic)
	if err != nil {
		return Result{}, err
	}

	fmt.Fprintf(w, "Generating draft for: %s\n", topic.Title)

	resp, err := backend.Complete(ctx, prompt)
	if err != nil {
		return Result{}, fmt.Errorf("generating draft: %w", err)
	}

	draftDir, meta, err := SaveDraft(cfg.DraftsDir, topic, resp, cfg.Model, now)
	if err != nil {
		return Result{}, err
	}

	fmt.Fprintf(w, "Draft saved to %s (%d words, %d tokens)\n",
		draftDir, meta.WordCount, resp.Usage.Total())

	return Result{DraftDir: draftDir, Metadata: meta}, nil
}
