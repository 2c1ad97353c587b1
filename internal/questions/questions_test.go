package questions

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		expect string
	}{
		{"Node.js", "express"},
		{"nodejs", "express"},
		{"node", "express"},
		{"JS", "javascript"},
		{"ReactJS", "react"},
		{"react.js", "react"},
		{"Postgres", "postgresql"},
		{"mongo", "mongodb"},
		{"K8s", "kubernetes"},
		{"py", "python"},
		{"  Docker  ", "docker"},
		{"Rust", "rust"}, // unrecognized names pass through
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expect, Normalize(tt.input), "Normalize(%q)", tt.input)
	}
}

func contains(pool []string, q string) bool {
	for _, item := range pool {
		if item == q {
			return true
		}
	}
	return false
}

func TestGenerateTechOrderAndGenericFill(t *testing.T) {
	t.Parallel()

	s := NewSelector(rand.NewSource(1))
	got := s.Generate([]string{"python", "react"}, 5)

	require.Len(t, got, 5)

	seen := make(map[string]bool)
	for _, q := range got {
		require.False(t, seen[q], "duplicate question: %q", q)
		seen[q] = true
	}

	assert.True(t, contains(bank["python"], got[0]), "first question must come from the python bank")
	assert.True(t, contains(bank["react"], got[1]), "second question must come from the react bank")
	for _, q := range got[2:] {
		assert.True(t, contains(generic, q), "fill-in %q must be generic", q)
	}
}

func TestGenerateDeterministicWithSameSeed(t *testing.T) {
	t.Parallel()

	first := NewSelector(rand.NewSource(42)).Generate([]string{"docker", "aws", "git"}, 5)
	second := NewSelector(rand.NewSource(42)).Generate([]string{"docker", "aws", "git"}, 5)

	assert.Equal(t, first, second)
}

func TestGenerateSkipsUnknownTechnologies(t *testing.T) {
	t.Parallel()

	s := NewSelector(rand.NewSource(7))
	got := s.Generate([]string{"cobol", "fortran"}, 5)

	require.Len(t, got, 5)
	for _, q := range got {
		assert.True(t, contains(generic, q))
	}
}

func TestGenerateStopsWhenPoolExhausted(t *testing.T) {
	t.Parallel()

	// One tech contributes a single question, generics add five more. A
	// request beyond that must stop instead of looping forever.
	s := NewSelector(rand.NewSource(3))
	got := s.Generate([]string{"python"}, 20)

	require.Len(t, got, 6)

	seen := make(map[string]bool)
	for _, q := range got {
		require.False(t, seen[q], "duplicate question: %q", q)
		seen[q] = true
	}
}

func TestGenerateCapsAtRequestedCount(t *testing.T) {
	t.Parallel()

	stack := []string{"python", "javascript", "java", "react", "docker", "aws", "git"}
	got := NewSelector(rand.NewSource(9)).Generate(stack, 5)

	require.Len(t, got, 5)
	assert.True(t, contains(bank["python"], got[0]))
	assert.True(t, contains(bank["docker"], got[4]))
}

func TestGenerateNonPositiveCount(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewSelector(rand.NewSource(1)).Generate([]string{"python"}, 0))
}

func TestKnown(t *testing.T) {
	t.Parallel()

	assert.True(t, Known("Postgres"))
	assert.False(t, Known("cobol"))
}
