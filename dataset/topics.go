/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// defaultTopics is the built-in haiku topic list.
var defaultTopics = []string{
	"autumn leaves",
	"city rain",
	"distant mountains",
	"first snow",
	"fireflies",
	"harvest moon",
	"morning fog",
	"ocean tides",
	"old libraries",
	"quiet gardens",
	"spring thaw",
	"summer storms",
	"tea ceremonies",
	"train stations",
	"wildflowers",
}

// Topics returns the built-in haiku topic list.
func Topics() []string {
	return slices.Clone(defaultTopics)
}

// ReadTopics parses a topic list from r: one topic per line, blank
// lines and # comments ignored.
func ReadTopics(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)

	var topics []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		topics = append(topics, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading topics: %w", err)
	}
	if len(topics) == 0 {
		return nil, fmt.Errorf("topic list is empty")
	}
	return topics, nil
}

// LoadTopics reads a topic list from a file. An empty path returns the
// built-in list.
func LoadTopics(path string) ([]string, error) {
	if path == "" {
		return Topics(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening topics: %w", err)
	}
	defer f.Close()
	return ReadTopics(f)
}
