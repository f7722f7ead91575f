package markov

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Tokenizer is an interface that defines the contract for splitting input
// text into word tokens. This keeps the model independent of the specific
// splitting strategy.
type Tokenizer interface {
	// NewStream returns a stateful StreamTokenizer for processing an io.Reader.
	NewStream(io.Reader) StreamTokenizer
}

// StreamTokenizer is an interface for a stateful tokenizer that processes a
// stream of data, returning one token at a time.
type StreamTokenizer interface {
	// Next returns the next token from the stream. It returns io.EOF as the
	// error when the stream is fully consumed.
	Next() (string, error)
}

// WordTokenizer splits input on runs of whitespace, the same rule the
// boundary-token guarantee relies on: a token produced here can never
// contain the space that joins prefix keys.
type WordTokenizer struct{}

// NewWordTokenizer returns a whitespace word tokenizer.
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{}
}

// NewStream returns the stream processor.
func (t *WordTokenizer) NewStream(r io.Reader) StreamTokenizer {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &wordStream{scanner: sc}
}

type wordStream struct {
	scanner *bufio.Scanner
}

// Next returns the next word from the stream, or io.EOF once it is drained.
// Any other error indicates a problem reading from the underlying stream.
func (s *wordStream) Next() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// ReadTokens drains a reader through the given tokenizer and returns the
// full token sequence, in the shape Build expects.
func ReadTokens(r io.Reader, tok Tokenizer) ([]string, error) {
	stream := tok.NewStream(r)
	var tokens []string
	for {
		word, err := stream.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return tokens, nil
			}
			return nil, fmt.Errorf("markov: tokenizer error: %w", err)
		}
		tokens = append(tokens, word)
	}
}
