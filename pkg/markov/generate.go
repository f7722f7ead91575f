package markov

import (
	"log/slog"
)

// Generate walks the chain from the start state (order boundary tokens) and
// returns up to count generated words. It stops early when the current
// prefix has no recorded successors or when the boundary token is drawn,
// meaning the source text ended at this point; the boundary token itself is
// never emitted. Fewer than count words is normal for short or cyclic
// sources, not an error.
//
// Each draw picks a uniform random index into the successor list, so
// duplicate entries weight the choice by observed frequency.
func (m *Model) Generate(count int) []string {
	if count <= 0 {
		return nil
	}

	result := make([]string, 0, count)
	prefix := make([]string, m.order)
	for i := range prefix {
		prefix[i] = m.boundary
	}

	var keyBuf []byte
	for len(result) < count {
		keyBuf = prefixKey(keyBuf, prefix)
		values, ok := m.table.Get(string(keyBuf))
		if !ok { // Dead end in chain
			m.logger.Debug("Generation terminated at dead-end prefix",
				slog.String("last_prefix", string(keyBuf)),
				slog.Int("generated_length", len(result)),
			)
			break
		}

		next := values[0]
		if len(values) > 1 {
			next = values[m.rng.IntN(len(values))]
		}

		if next == m.boundary {
			m.logger.Debug("Generation terminated by boundary token",
				slog.Int("generated_length", len(result)),
			)
			break
		}

		result = append(result, next)
		// Slide the prefix window forward over the new word.
		prefix = append(prefix[1:], next)
	}

	return result
}
