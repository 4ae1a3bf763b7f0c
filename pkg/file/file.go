// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package file

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"
)

// Options for configuring the Parser.
type Option func(*Parser)

// Parser parses line-oriented text files with customizable settings.
type Parser struct {
	maxSize        int
	skipComments   bool
	skipEmptyLines bool
}

// Pair is a single key-value entry, in file order.
type Pair struct {
	Key   string
	Value string
}

// Line is a single trimmed line with its 1-based position in the file.
type Line struct {
	Number int
	Text   string
}

const (
	lineDelimiter = "\n"
	kvDelimiter   = "="
)

// WithMaxSize sets the maximum size (in bytes) of the file to be parsed.
// Default is 1MB.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithSkipComments sets whether to skip lines starting with "#".
// Default is true.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// WithSkipEmptyLines sets whether blank lines are dropped.
// Default is true. When false, blank lines are kept (as empty text) except
// for the empty remainder after a trailing newline.
func WithSkipEmptyLines(skip bool) Option {
	return func(p *Parser) {
		p.skipEmptyLines = skip
	}
}

// NewParser creates a new file parser with the provided options.
// Default settings: 1MB max file size, comments and blank lines skipped.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		maxSize:        1 << 20, // 1MB default
		skipComments:   true,
		skipEmptyLines: true,
	}

	// Apply options
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetPairs reads the file at the given path and splits each line into a
// key-value pair on the first "=". Key and value are trimmed.
// A line without "=" gives the whole line as key and an empty value.
// Pairs are returned in file order, repeated keys included.
func (p *Parser) GetPairs(path string) ([]Pair, error) {
	lines, err := p.GetLines(path)
	if err != nil {
		return nil, err
	}

	result := make([]Pair, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, kvDelimiter)
		if !found {
			slog.Debug("line without value, using empty value", "line", line)
		}
		result = append(result, Pair{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)})
	}

	return result, nil
}

// GetLines reads the file at the given path and splits its content into
// trimmed lines.
// An error is returned if the file cannot be read, exceeds the maximum size,
// or contains invalid UTF-8 content. Read errors wrap the underlying
// *os.PathError so callers can test for fs.ErrNotExist.
func (p *Parser) GetLines(path string) ([]string, error) {
	numbered, err := p.GetNumberedLines(path)
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(numbered))
	for _, l := range numbered {
		result = append(result, l.Text)
	}
	return result, nil
}

// GetNumberedLines is GetLines with each line's 1-based position in the file.
func (p *Parser) GetNumberedLines(path string) ([]Line, error) {
	if path == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}

	b, err := p.read(path)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(string(b), lineDelimiter)

	// A trailing newline does not open a new line.
	if n := len(parts); n > 0 && parts[n-1] == "" {
		parts = parts[:n-1]
	}

	result := make([]Line, 0, len(parts))
	for i, part := range parts {
		cleanPart := strings.TrimSpace(part)
		if cleanPart == "" && p.skipEmptyLines {
			slog.Debug("skipping empty line from file", slog.String("path", path))
			continue
		}

		if p.skipComments && strings.HasPrefix(cleanPart, "#") {
			continue
		}

		result = append(result, Line{Number: i + 1, Text: cleanPart})
	}

	return result, nil
}

func (p *Parser) read(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("failed to read file %q: is a directory", path)
	}
	if info.Size() > int64(p.maxSize) {
		return nil, fmt.Errorf("file %q exceeds maximum size of %d bytes", path, p.maxSize)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	if !utf8.Valid(b) {
		return nil, fmt.Errorf("content of file %q is not valid UTF-8", path)
	}

	return b, nil
}
