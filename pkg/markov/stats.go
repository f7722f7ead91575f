package markov

// ModelStats holds aggregated statistics for a trained model.
type ModelStats struct {
	Order       int     // The prefix width of the chain.
	Capacity    int     // The fixed slot count of the backing table.
	Prefixes    int     // The number of distinct prefixes (occupied slots).
	Transitions int     // The total number of observed transitions, counting repeats.
	LoadFactor  float64 // Prefixes / Capacity; governs expected probe length.
}

// Stats returns a snapshot of the model's table occupancy. Useful for
// judging whether the table was sized sensibly for the corpus.
func (m *Model) Stats() ModelStats {
	return ModelStats{
		Order:       m.order,
		Capacity:    m.table.Capacity(),
		Prefixes:    m.table.Len(),
		Transitions: m.table.Values(),
		LoadFactor:  float64(m.table.Len()) / float64(m.table.Capacity()),
	}
}
