// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/pdiddy/blog-engine/internal/fsutil"
	"github.com/pdiddy/blog-engine/pkg/types"
)

// ErrHandoffNotFound reports a missing selected-topic file.
var ErrHandoffNotFound = errors.New("no selected topic found")

// Handoff is the single-slot file that passes the selected topic from the
// select stage to the generate stage. A new selection silently replaces any
// previous slot contents; the generate stage clears the slot once the topic
// has been committed to the registry.
type Handoff struct {
	path string
}

// NewHandoff returns a Handoff bound to the slot file at path.
func NewHandoff(path string) *Handoff {
	return &Handoff{path: path}
}

// Path returns the slot file location.
func (h *Handoff) Path() string {
	return h.path
}

// Save writes the selected topic, overwriting any prior slot contents.
func (h *Handoff) Save(topic types.Topic) error {
	data, err := json.MarshalIndent(topic, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding selected topic: %w", err)
	}
	data = append(data, '\n')
	if err := fsutil.WriteFileAtomic(h.path, data, 0o644); err != nil {
		return fmt.Errorf("writing selected topic %s: %w", h.path, err)
	}
	return nil
}

// Load reads the selected topic. A missing file is ErrHandoffNotFound.
func (h *Handoff) Load() (types.Topic, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.Topic{}, fmt.Errorf("%w (run select first)", ErrHandoffNotFound)
		}
		return types.Topic{}, fmt.Errorf("reading selected topic %s: %w", h.path, err)
	}

	var topic types.Topic
	if err := json.Unmarshal(data, &topic); err != nil {
		return types.Topic{}, fmt.Errorf("parsing selected topic %s: %w", h.path, err)
	}
	return topic, nil
}

// Clear removes the slot file. Clearing an empty slot is not an error.
func (h *Handoff) Clear() error {
	if err := os.Remove(h.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing selected topic %s: %w", h.path, err)
	}
	return nil
}
