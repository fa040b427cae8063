// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry persists the topic registry and the selection handoff
// record. All operations are whole-file read-modify-write; writes go through
// an atomic temp-then-rename replace so a failed update never corrupts the
// stored state. Mutual exclusion across concurrent invokers is the caller's
// responsibility.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/blog-engine/internal/fsutil"
	"github.com/pdiddy/blog-engine/pkg/types"
)

// ErrRegistryNotFound reports a missing registry file.
var ErrRegistryNotFound = errors.New("registry file not found")

// ErrTopicNotFound reports a topic ID absent from the registry.
var ErrTopicNotFound = errors.New("topic not found")

// Store reads and writes one topic registry file. The file format is chosen
// by extension: .yaml/.yml is YAML, anything else is JSON.
type Store struct {
	path string
}

// NewStore returns a Store bound to the registry file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the registry file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full registry. A missing file is ErrRegistryNotFound.
func (s *Store) Load() (*types.Registry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRegistryNotFound, s.path)
		}
		return nil, fmt.Errorf("reading registry %s: %w", s.path, err)
	}

	var reg types.Registry
	if s.isYAML() {
		err = yaml.Unmarshal(data, &reg)
	} else {
		err = json.Unmarshal(data, &reg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing registry %s: %w", s.path, err)
	}
	return &reg, nil
}

// save writes the full registry back atomically.
func (s *Store) save(reg *types.Registry) error {
	var (
		data []byte
		err  error
	)
	if s.isYAML() {
		data, err = yaml.Marshal(reg)
	} else {
		data, err = json.MarshalIndent(reg, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	}
	if err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}
	if err := fsutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing registry %s: %w", s.path, err)
	}
	return nil
}

// MarkUsed sets the topic's status to used, records the usage timestamp and
// draft location, bumps the registry's last-updated timestamp, and rewrites
// the whole file. The file is left untouched when the ID is unknown.
func (s *Store) MarkUsed(topicID, draftPath string, now time.Time) error {
	reg, err := s.Load()
	if err != nil {
		return err
	}

	found := false
	for i := range reg.Topics {
		if reg.Topics[i].ID == topicID {
			used := now
			reg.Topics[i].Status = types.StatusUsed
			reg.Topics[i].UsedAt = &used
			reg.Topics[i].DraftPath = draftPath
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrTopicNotFound, topicID)
	}

	updated := now
	reg.LastUpdated = &updated
	return s.save(reg)
}

// ResetAll returns every topic to available and strips usage metadata
// (timestamp, draft path, transient stats). Already-available topics are
// unaffected beyond the stripped fields, so the operation is idempotent.
// Returns the number of topics in the registry.
func (s *Store) ResetAll(now time.Time) (int, error) {
	reg, err := s.Load()
	if err != nil {
		return 0, err
	}

	for i := range reg.Topics {
		reg.Topics[i].Status = types.StatusAvailable
		reg.Topics[i].UsedAt = nil
		reg.Topics[i].DraftPath = ""
		reg.Topics[i].Stats = nil
	}

	updated := now
	reg.LastUpdated = &updated
	if err := s.save(reg); err != nil {
		return 0, err
	}
	return len(reg.Topics), nil
}

func (s *Store) isYAML() bool {
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
