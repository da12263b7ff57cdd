// Package loader opens a script file and wraps it in a buffered
// reader implementing lexer.ByteSource. This is the external
// collaborator spec.md §1 scopes out of the core design: only the
// interface it hands to the lexer is specified.
package loader

import (
	"bufio"
	"os"
)

// Source wraps a *bufio.Reader so it satisfies lexer.ByteSource.
type Source struct {
	r *bufio.Reader
	f *os.File
}

// Open opens path and returns a Source ready for the lexer. Close
// must be called once the lexer has finished with it.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Source{r: bufio.NewReader(f), f: f}, nil
}

// ReadByte implements lexer.ByteSource.
func (s *Source) ReadByte() (byte, error) { return s.r.ReadByte() }

// Close releases the underlying file handle.
func (s *Source) Close() error { return s.f.Close() }
