package markov

import (
	"errors"
	"fmt"
)

// ErrTableFull is returned by Put when a full-circle probe finds neither the
// key nor an empty slot. The table never resizes, so this means the caller
// sized it below the distinct-key cardinality of its input.
var ErrTableFull = errors.New("markov: table full")

// slot is one occupied cell of the backing array. A nil *slot is an empty cell.
type slot struct {
	key    string
	values []string
}

// Table is a fixed-capacity map from a string key to the ordered list of
// values inserted under it. Duplicate values are kept; their multiplicity is
// how the chain encodes transition frequency. Collisions are resolved by
// linear probing toward decreasing indices, wrapping at zero. The probe
// direction is part of the contract: Put, Get and Contains must walk the
// same sequence or lookups silently miss.
type Table struct {
	slots    []*slot
	occupied int
	stored   int
}

// NewTable allocates a table with the given number of slots. The capacity is
// fixed for the life of the table.
func NewTable(capacity int) (*Table, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("markov: table capacity must be positive, got %d", capacity)
	}
	return &Table{slots: make([]*slot, capacity)}, nil
}

// hash computes the polynomial rolling hash p = 31*p + c over the key's
// characters, reduced modulo capacity. Integer wraparound can leave the
// accumulator negative, which the final adjustment folds back into range.
func (t *Table) hash(key string) int {
	p := 0
	for _, c := range key {
		p = 31*p + int(c)
	}
	p %= len(t.slots)
	if p < 0 {
		p += len(t.slots)
	}
	return p
}

// Put appends value under key, claiming the first empty slot on the probe
// path if the key is new. It returns ErrTableFull once every slot has been
// probed without finding the key or a free cell.
func (t *Table) Put(key, value string) error {
	index := t.hash(key)
	for range t.slots {
		s := t.slots[index]
		if s == nil {
			t.slots[index] = &slot{key: key, values: []string{value}}
			t.occupied++
			t.stored++
			return nil
		}
		if s.key == key {
			s.values = append(s.values, value)
			t.stored++
			return nil
		}
		index--
		if index < 0 {
			index = len(t.slots) - 1
		}
	}
	return ErrTableFull
}

// Get returns the value list stored under key. The second return is false if
// the probe reaches an empty slot or cycles through the whole table without
// a match. The returned slice is the table's own storage; callers must not
// modify it.
func (t *Table) Get(key string) ([]string, bool) {
	index := t.hash(key)
	for range t.slots {
		s := t.slots[index]
		if s == nil {
			return nil, false
		}
		if s.key == key {
			return s.values, true
		}
		index--
		if index < 0 {
			index = len(t.slots) - 1
		}
	}
	return nil, false
}

// Contains reports whether key is present in the table.
func (t *Table) Contains(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Len returns the number of occupied slots (distinct keys).
func (t *Table) Len() int {
	return t.occupied
}

// Values returns the total number of stored values across all keys,
// counting duplicates.
func (t *Table) Values() int {
	return t.stored
}

// Capacity returns the fixed slot count the table was created with.
func (t *Table) Capacity() int {
	return len(t.slots)
}
