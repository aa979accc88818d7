// Package textreader yields the lines of a text stream one at a time,
// optionally skipping empty and comment lines and trimming whitespace. The
// cursor follows the same lazy single-pass contract as the avl sequences:
// finite, not restartable, cancel by simply ceasing to pull.
package textreader

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Opt selects the line filters applied by Next.
type Opt uint8

const (
	// SkipEmpty drops lines that are empty before any trimming.
	SkipEmpty Opt = 1 << iota
	// SkipComment drops lines whose first non-space text is the comment
	// prefix.
	SkipComment
	// TrimSpace trims leading and trailing whitespace off returned lines.
	TrimSpace
)

// Default is what configuration-file readers usually want.
const Default = SkipEmpty | SkipComment | TrimSpace

// Reader is a filtered line cursor over a text stream.
type Reader struct {
	scanner *bufio.Scanner
	opts    Opt
	comment string
	closer  io.Closer
}

// New wraps an io.Reader. The comment prefix starts out as "#".
func New(r io.Reader, opts Opt) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(r),
		opts:    opts,
		comment: "#",
	}
}

// Open opens path for line reading; Close releases the file.
func Open(path string, opts Opt) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := New(f, opts)
	r.closer = f
	return r, nil
}

// SetCommentPrefix overrides the "#" comment marker.
func (r *Reader) SetCommentPrefix(prefix string) { r.comment = prefix }

// Next returns the next accepted line. ok is false at the end of the stream
// or on a read error; check Err to tell the two apart.
func (r *Reader) Next() (string, bool) {
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if r.opts&SkipEmpty != 0 && line == "" {
			continue
		}
		if r.opts&SkipComment != 0 && strings.HasPrefix(strings.TrimSpace(line), r.comment) {
			continue
		}
		if r.opts&TrimSpace != 0 {
			line = strings.TrimSpace(line)
		}
		return line, true
	}
	return "", false
}

// Err reports the first error hit by the underlying scanner, nil at a clean
// end of stream.
func (r *Reader) Err() error { return r.scanner.Err() }

// Close closes the underlying file when the Reader owns one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
