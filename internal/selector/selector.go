// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package selector implements the weighted-random topic selection policy.
// Selection reads the registry but never mutates it: marking a topic used is
// a separate registry operation performed after the draft is committed, so a
// rerun before that commit neither loses nor duplicates topics.
package selector

import (
	"errors"
	"math/rand/v2"
	"sort"

	"github.com/pdiddy/blog-engine/pkg/types"
)

// ErrNoAvailableTopics reports a registry with nothing left to select.
var ErrNoAvailableTopics = errors.New("no available topics")

const (
	// advancedBoost favors advanced topics.
	advancedBoost = 1.5

	// recentCategoryPenalty deprioritizes categories used in the last
	// few drafts to avoid repetition.
	recentCategoryPenalty = 0.5

	// recentWindow is how many of the most recently used topics define
	// the recently-used category set.
	recentWindow = 3
)

// Weighted pairs a selectable topic with its computed draw weight.
type Weighted struct {
	Topic  types.Topic
	Weight float64
}

// Weights returns every available topic with its selection weight. The base
// weight is 1.0, multiplied by advancedBoost for advanced topics and by
// recentCategoryPenalty for topics whose category appears among the
// recentWindow most recently used topics. The two adjustments are
// independent and compound.
func Weights(reg *types.Registry) []Weighted {
	recent := recentCategories(reg)

	var weighted []Weighted
	for _, t := range reg.Topics {
		if !t.Available() {
			continue
		}
		w := 1.0
		if t.Difficulty == types.DifficultyAdvanced {
			w *= advancedBoost
		}
		if recent[t.Category] {
			w *= recentCategoryPenalty
		}
		weighted = append(weighted, Weighted{Topic: t, Weight: w})
	}
	return weighted
}

// Select draws one available topic at random with probability proportional
// to its weight. The caller supplies the random source so tests can seed it.
// Returns ErrNoAvailableTopics when nothing is selectable.
func Select(reg *types.Registry, rng *rand.Rand) (types.Topic, error) {
	weighted := Weights(reg)
	if len(weighted) == 0 {
		return types.Topic{}, ErrNoAvailableTopics
	}

	total := 0.0
	for _, w := range weighted {
		total += w.Weight
	}

	r := rng.Float64() * total
	for _, w := range weighted {
		r -= w.Weight
		if r < 0 {
			return w.Topic, nil
		}
	}
	// Float rounding can leave r at exactly 0 after the loop.
	return weighted[len(weighted)-1].Topic, nil
}

// recentCategories returns the set of categories of the recentWindow most
// recently used topics. Used topics without a timestamp sort as earliest.
func recentCategories(reg *types.Registry) map[string]bool {
	var used []types.Topic
	for _, t := range reg.Topics {
		if t.Status == types.StatusUsed {
			used = append(used, t)
		}
	}

	sort.SliceStable(used, func(i, j int) bool {
		ti, tj := used[i].UsedAt, used[j].UsedAt
		switch {
		case ti == nil:
			return false
		case tj == nil:
			return true
		default:
			return ti.After(*tj)
		}
	})

	if len(used) > recentWindow {
		used = used[:recentWindow]
	}

	recent := make(map[string]bool, len(used))
	for _, t := range used {
		recent[t.Category] = true
	}
	return recent
}
