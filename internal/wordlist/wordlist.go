// Package wordlist reads base-string lists for candidate generation.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Read returns the non-blank lines of r with surrounding whitespace trimmed,
// in input order. Blank lines are skipped.
func Read(r io.Reader) ([]string, error) {
	var bases []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		bases = append(bases, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read word list: %w", err)
	}

	return bases, nil
}

// Load reads the base-string list from the file at path. A missing file is
// not an error and yields an empty list.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("could not open word list %q: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Read(f)
}
