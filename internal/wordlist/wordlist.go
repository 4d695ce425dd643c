// Package wordlist loads the newline-delimited word files used for
// passphrase generation.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// ErrUnavailable is returned when the word source cannot be read.
var ErrUnavailable = errors.New("wordlist unavailable")

// Source yields an ordered list of candidate words.
type Source interface {
	Read() ([]string, error)
}

// FileSource reads words from a file on disk.
type FileSource struct {
	Path string
}

// Read opens the file and parses it with Parse.
func (s FileSource) Read() ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer f.Close()

	words, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return words, nil
}

// Parse returns one word per non-blank line, trimmed of surrounding space.
func Parse(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			words = append(words, w)
		}
	}
	return words, sc.Err()
}

// Cached wraps a Source and keeps the first successful result. Failed reads
// are retried on the next call.
type Cached struct {
	src   Source
	mu    sync.Mutex
	words []string
}

// NewCached creates a Cached around src.
func NewCached(src Source) *Cached {
	return &Cached{src: src}
}

func (c *Cached) Read() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.words != nil {
		return c.words, nil
	}
	words, err := c.src.Read()
	if err != nil {
		return nil, err
	}
	c.words = words
	return words, nil
}
