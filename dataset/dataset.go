/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package dataset loads evaluation inputs: JSONL examples with gold
// entity labels for extraction, and topic lists for haiku generation.
package dataset

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Santhosh-Hanabi/tensorzero/scoring"
	"github.com/chainguard-dev/clog"
)

// NERExample pairs an input text with its gold entity labels.
type NERExample struct {
	Text string           `json:"text"`
	Gold scoring.Entities `json:"gold"`
}

// ReadNER parses JSONL examples from r. Malformed lines are logged and
// skipped rather than failing the whole dataset; blank lines are
// ignored. Limit caps the number of examples returned, 0 means all.
func ReadNER(ctx context.Context, r io.Reader, limit int) ([]NERExample, error) {
	log := clog.FromContext(ctx)

	scanner := bufio.NewScanner(r)
	// Individual examples can be long documents.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var examples []NERExample
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var ex NERExample
		if err := json.Unmarshal([]byte(line), &ex); err != nil {
			log.With("line", lineNo).With("error", err.Error()).
				Warn("Skipping malformed dataset line")
			continue
		}
		if ex.Text == "" {
			log.With("line", lineNo).Warn("Skipping dataset line with empty text")
			continue
		}

		examples = append(examples, ex)
		if limit > 0 && len(examples) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	return examples, nil
}

// LoadNER reads JSONL examples from a file.
func LoadNER(ctx context.Context, path string, limit int) ([]NERExample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()
	return ReadNER(ctx, f, limit)
}
