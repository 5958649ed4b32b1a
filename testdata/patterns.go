// Package testdata loads pattern fixtures used by the benchmarks, one
// pattern per line.
package testdata

import (
	"bufio"
	"os"
	"strings"
)

// Patterns loads every non-blank pattern from a text file, in order.
func Patterns(fileName string) []string {
	var patterns []string

	for line := range Lines(fileName) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		patterns = append(patterns, line)
	}

	return patterns
}

// Lines is a utility function to easily read every line in a text file.
func Lines(fileName string) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)
		file, err := os.Open(fileName)

		if err != nil {
			return
		}

		defer file.Close()
		scanner := bufio.NewScanner(file)

		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	return lines
}
