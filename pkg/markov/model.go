package markov

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
)

// DefaultBoundary is the token used to mark the start and end of the source
// sequence unless overridden with WithBoundary. It must never occur as a
// real word in the training input; that guarantee is the caller's.
const DefaultBoundary = "@"

// Model is a Markov chain of a fixed order built over a fixed-capacity
// Table. Build must be called exactly once before Generate; after that the
// table is read-only and independent Generate calls are safe as long as
// each Model has its own random source (which it does by default).
type Model struct {
	table    *Table
	order    int
	boundary string
	rng      *rand.Rand
	logger   *slog.Logger
}

// ModelOption configures a Model at construction time.
type ModelOption func(*Model)

// WithBoundary overrides the boundary token. The caller is responsible for
// choosing a value that cannot appear in its corpus.
func WithBoundary(tok string) ModelOption {
	return func(m *Model) { m.boundary = tok }
}

// WithRand sets the random source used for successor selection. Useful for
// reproducible generation in tests and CLI --seed runs.
func WithRand(r *rand.Rand) ModelOption {
	return func(m *Model) {
		if r != nil {
			m.rng = r
		}
	}
}

// NewModel creates a model of the given order (prefix width in tokens) over
// a table of the given capacity. Both must be positive; the capacity should
// exceed the expected number of distinct prefixes in the training input.
func NewModel(order, capacity int, opts ...ModelOption) (*Model, error) {
	if order <= 0 {
		return nil, fmt.Errorf("markov: model order must be positive, got %d", order)
	}
	table, err := NewTable(capacity)
	if err != nil {
		return nil, err
	}
	m := &Model{
		table:    table,
		order:    order,
		boundary: DefaultBoundary,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// SetLogger sets the logger for the Model. By default, all logs are discarded.
func (m *Model) SetLogger(logger *slog.Logger) {
	if logger != nil {
		m.logger = logger
	}
}

// Order returns the prefix width the model was created with.
func (m *Model) Order() int {
	return m.order
}

// prefixKey flattens a window of tokens into the single string key stored in
// the table, reusing buf's backing array across calls.
func prefixKey(buf []byte, window []string) []byte {
	buf = buf[:0]
	for j, tok := range window {
		if j > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, tok...)
	}
	return buf
}
