package main

import "testing"

func TestWrapWords(t *testing.T) {
	testCases := []struct {
		name    string
		words   []string
		perLine int
		want    string
	}{
		{
			name:    "Empty input",
			words:   nil,
			perLine: 10,
			want:    "",
		},
		{
			name:    "Single short line",
			words:   []string{"the", "cat", "sat"},
			perLine: 10,
			want:    "the cat sat",
		},
		{
			name:    "Exact multiple of line width",
			words:   []string{"a", "b", "c", "d"},
			perLine: 2,
			want:    "a b\nc d",
		},
		{
			name:    "Partial last line",
			words:   []string{"a", "b", "c", "d", "e"},
			perLine: 2,
			want:    "a b\nc d\ne",
		},
		{
			name:    "Nonsense width falls back to one per line",
			words:   []string{"a", "b"},
			perLine: 0,
			want:    "a\nb",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := wrapWords(tc.words, tc.perLine); got != tc.want {
				t.Errorf("wrapWords() = %q, want %q", got, tc.want)
			}
		})
	}
}
