// Package dictionary loads a newline-delimited word list from disk,
// in file order, for the trie package to build from.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/projectdiscovery/gologger"
)

// ErrUnavailable wraps the underlying error when the dictionary file
// cannot be opened or read.
type ErrUnavailable struct {
	Path string
	Err  error
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("dictionary: unable to open %q: %v", e.Path, e.Err)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// Load reads path line by line, skipping empty lines and lines that are
// not valid UTF-8 and performing no other normalization: casing and whitespace
// are the caller's concern. The returned slice is in file order, not
// sorted; trie.Build sorts on its own.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ErrUnavailable{Path: path, Err: err}
	}
	defer file.Close()

	gologger.Info().Msgf("loading dictionary %s", path)
	start := time.Now()

	var words []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			continue
		}
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ErrUnavailable{Path: path, Err: err}
	}

	gologger.Info().Msgf("loaded %d words from %s in %s", len(words), path, time.Since(start))
	return words, nil
}
