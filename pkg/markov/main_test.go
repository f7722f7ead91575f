package markov

import (
	"math/rand/v2"
	"strings"
	"testing"
)

// newSeededModel creates a model with a deterministic random source so
// generation tests are reproducible.
func newSeededModel(t *testing.T, order, capacity int) *Model {
	t.Helper()
	m, err := NewModel(order, capacity, WithRand(rand.New(rand.NewPCG(8, 0))))
	if err != nil {
		t.Fatalf("NewModel(%d, %d) error = %v", order, capacity, err)
	}
	return m
}

// buildFromText is a convenience helper that tokenizes a string and trains
// the model on it.
func buildFromText(t *testing.T, m *Model, text string) {
	t.Helper()
	tokens, err := ReadTokens(strings.NewReader(text), NewWordTokenizer())
	if err != nil {
		t.Fatalf("ReadTokens() error = %v", err)
	}
	if err := m.Build(tokens); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
}
