package markov

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestNewTableValidation(t *testing.T) {
	for _, capacity := range []int{0, -1, -100} {
		if _, err := NewTable(capacity); err == nil {
			t.Errorf("NewTable(%d): expected an error, got nil", capacity)
		}
	}

	table, err := NewTable(1)
	if err != nil {
		t.Fatalf("NewTable(1) error = %v", err)
	}
	if table.Capacity() != 1 {
		t.Errorf("Capacity() = %d, want 1", table.Capacity())
	}
}

func TestPutThenGet(t *testing.T) {
	table, err := NewTable(31)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	if err := table.Put("the cat", "sat"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if !table.Contains("the cat") {
		t.Error("Contains() = false immediately after Put")
	}
	values, ok := table.Get("the cat")
	if !ok {
		t.Fatal("Get() reported key absent immediately after Put")
	}
	if values[len(values)-1] != "sat" {
		t.Errorf("last value = %q, want %q", values[len(values)-1], "sat")
	}

	// A second value for the same key appends rather than replacing.
	if err := table.Put("the cat", "slept"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	values, _ = table.Get("the cat")
	want := []string{"sat", "slept"}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("Get() = %v, want %v", values, want)
	}

	if _, ok := table.Get("the dog"); ok {
		t.Error("Get() found a key that was never inserted")
	}
	if table.Contains("the dog") {
		t.Error("Contains() = true for a key that was never inserted")
	}
}

func TestPutPreservesMultiplicity(t *testing.T) {
	table, _ := NewTable(17)

	const m = 5
	for i := 0; i < m; i++ {
		if err := table.Put("a", "b"); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
	}

	values, ok := table.Get("a")
	if !ok {
		t.Fatal("Get() reported key absent")
	}
	if len(values) != m {
		t.Fatalf("len(values) = %d, want %d", len(values), m)
	}
	for i, v := range values {
		if v != "b" {
			t.Errorf("values[%d] = %q, want %q", i, v, "b")
		}
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
	if table.Values() != m {
		t.Errorf("Values() = %d, want %d", table.Values(), m)
	}
}

func TestHashDeterministic(t *testing.T) {
	table, _ := NewTable(53)
	for _, key := range []string{"", "a", "the quick brown fox", "@ @ @"} {
		first := table.hash(key)
		second := table.hash(key)
		if first != second {
			t.Errorf("hash(%q) not deterministic: %d then %d", key, first, second)
		}
		if first < 0 || first >= table.Capacity() {
			t.Errorf("hash(%q) = %d, outside [0, %d)", key, first, table.Capacity())
		}
	}
}

func TestProbingKeepsAllKeysRetrievable(t *testing.T) {
	// A small table with near-full load forces collisions and wrapping;
	// every key must still resolve to its own value list.
	const capacity = 11
	table, _ := NewTable(capacity)

	keys := make([]string, capacity-1)
	for i := range keys {
		keys[i] = fmt.Sprintf("word%d", i)
		if err := table.Put(keys[i], fmt.Sprintf("next%d", i)); err != nil {
			t.Fatalf("Put(%q) error = %v", keys[i], err)
		}
	}

	for i, key := range keys {
		values, ok := table.Get(key)
		if !ok {
			t.Fatalf("Get(%q): key lost after collisions", key)
		}
		want := fmt.Sprintf("next%d", i)
		if len(values) != 1 || values[0] != want {
			t.Errorf("Get(%q) = %v, want [%q]", key, values, want)
		}
	}
}

func TestTableFull(t *testing.T) {
	table, _ := NewTable(2)

	if err := table.Put("one", "a"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := table.Put("two", "b"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	err := table.Put("three", "c")
	if !errors.Is(err, ErrTableFull) {
		t.Errorf("Put() on full table error = %v, want ErrTableFull", err)
	}

	// Appending to an existing key must still work on a full table.
	if err := table.Put("one", "d"); err != nil {
		t.Errorf("Put() to existing key on full table error = %v", err)
	}
	values, _ := table.Get("one")
	if !reflect.DeepEqual(values, []string{"a", "d"}) {
		t.Errorf("Get(one) = %v, want [a d]", values)
	}

	// A lookup for an absent key on a full table terminates after one cycle.
	if _, ok := table.Get("four"); ok {
		t.Error("Get() found an absent key in a full table")
	}
}

func BenchmarkTablePut(b *testing.B) {
	keys := make([]string, 1024)
	for i := range keys {
		keys[i] = fmt.Sprintf("prefix %d", i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		table, _ := NewTable(4093)
		for _, key := range keys {
			_ = table.Put(key, "next")
		}
	}
}
