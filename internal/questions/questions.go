// Package questions selects technical screening questions for a candidate's
// declared tech stack from a static per-technology bank.
package questions

import (
	"math/rand"
	"strings"
)

// DefaultCount is the number of questions generated per screening.
const DefaultCount = 5

// Normalize lowercases and trims a technology name and folds known aliases
// into their canonical bank key. Unrecognized names pass through unchanged.
func Normalize(tech string) string {
	lower := strings.ToLower(strings.TrimSpace(tech))
	if canonical, ok := aliases[lower]; ok {
		return canonical
	}
	return lower
}

// Selector draws questions using an injectable random source so selection can
// be made deterministic in tests.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a Selector backed by the given source.
func NewSelector(src rand.Source) *Selector {
	return &Selector{rng: rand.New(src)}
}

// Generate returns up to n distinct questions for the given tech stack: one
// randomly chosen question per recognized technology in stack order, then
// random generic questions until n are collected. Selection stops early when
// no unchosen candidate remains anywhere in the pool.
func (s *Selector) Generate(techStack []string, n int) []string {
	if n <= 0 {
		return nil
	}

	selected := make([]string, 0, n)
	chosen := make(map[string]bool, n)

	pick := func(pool []string) (string, bool) {
		remaining := make([]string, 0, len(pool))
		for _, q := range pool {
			if !chosen[q] {
				remaining = append(remaining, q)
			}
		}
		if len(remaining) == 0 {
			return "", false
		}
		return remaining[s.rng.Intn(len(remaining))], true
	}

	for _, tech := range techStack {
		if len(selected) == n {
			break
		}
		pool, ok := bank[Normalize(tech)]
		if !ok {
			continue
		}
		if q, ok := pick(pool); ok {
			selected = append(selected, q)
			chosen[q] = true
		}
	}

	for len(selected) < n {
		q, ok := pick(generic)
		if !ok {
			break
		}
		selected = append(selected, q)
		chosen[q] = true
	}

	return selected
}

// Known reports whether a technology (after normalization) has a bank entry.
func Known(tech string) bool {
	_, ok := bank[Normalize(tech)]
	return ok
}
