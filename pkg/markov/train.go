package markov

import (
	"fmt"
	"log/slog"
)

// Build populates the model's table from an ordered token stream. The stream
// is padded with order copies of the boundary token in front and one behind,
// then a window of order tokens slides across it, recording each window's
// immediate successor. Every occurrence is recorded, so a successor seen
// twice after the same prefix is stored twice.
//
// Build is meant to be called once per model. The only error it can return
// is a wrapped ErrTableFull, when the input has more distinct prefixes than
// the table has slots.
func (m *Model) Build(tokens []string) error {
	padded := make([]string, 0, len(tokens)+m.order+1)
	for i := 0; i < m.order; i++ {
		padded = append(padded, m.boundary)
	}
	padded = append(padded, tokens...)
	padded = append(padded, m.boundary)

	var keyBuf []byte
	for i := 0; i+m.order < len(padded); i++ {
		keyBuf = prefixKey(keyBuf, padded[i:i+m.order])
		suffix := padded[i+m.order]
		if err := m.table.Put(string(keyBuf), suffix); err != nil {
			return fmt.Errorf("markov: build at token %d: %w", i, err)
		}
	}

	m.logger.Info("Model built",
		slog.Int("order", m.order),
		slog.Int("input_tokens", len(tokens)),
		slog.Int("prefixes", m.table.Len()),
		slog.Int("transitions", m.table.Values()),
	)
	return nil
}
