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

package series

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"strconv"

	"github.com/xpansion-tools/xpcheck/pkg/defaults"
	"github.com/xpansion-tools/xpcheck/pkg/errors"
	"github.com/xpansion-tools/xpcheck/pkg/file"
)

// Profile summarizes a validated profile file.
type Profile struct {
	Path string
	Rows int

	// NonNull is false when every value is zero.
	NonNull bool
}

// Weights summarizes a validated yearly weights file.
type Weights struct {
	Path string
	Rows int
	Sum  float64
}

func newParser() *file.Parser {
	return file.NewParser(
		file.WithSkipComments(false),
		file.WithSkipEmptyLines(false),
		file.WithMaxSize(defaults.SeriesMaxFileSize),
	)
}

// readColumn reads a one-value-per-line file of non-negative numbers.
func readColumn(path, kind string) ([]float64, error) {
	lines, err := newParser().GetNumberedLines(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapWithContext(errors.ErrCodeFileAccess,
				fmt.Sprintf("%s is not an existent %s file", path, kind), err,
				map[string]any{"path": path})
		}
		return nil, errors.WrapWithContext(errors.ErrCodeFileAccess,
			fmt.Sprintf("cannot read %s file %s", kind, path), err,
			map[string]any{"path": path})
	}

	values := make([]float64, 0, len(lines))
	for _, line := range lines {
		v, err := strconv.ParseFloat(line.Text, 64)
		if err != nil || math.IsNaN(v) {
			return nil, errors.NewWithContext(errors.ErrCodeValue,
				fmt.Sprintf("line %d in file %s is not a single non-negative value", line.Number, path),
				map[string]any{"path": path, "line": line.Number})
		}
		if v < 0 {
			return nil, errors.NewWithContext(errors.ErrCodeValue,
				fmt.Sprintf("line %d in file %s indicates a negative value", line.Number, path),
				map[string]any{"path": path, "line": line.Number})
		}
		values = append(values, v)
	}
	return values, nil
}

// ValidateProfile checks that path holds exactly defaults.ProfileRows
// non-negative values and reports whether any of them is non-zero.
func ValidateProfile(path string) (Profile, error) {
	values, err := readColumn(path, "profile")
	if err != nil {
		return Profile{}, err
	}

	if len(values) != defaults.ProfileRows {
		return Profile{}, errors.NewWithContext(errors.ErrCodeValue,
			fmt.Sprintf("file %s does not have %d lines", path, defaults.ProfileRows),
			map[string]any{"path": path, "rows": len(values)})
	}

	p := Profile{Path: path, Rows: len(values)}
	for _, v := range values {
		if v != 0 {
			p.NonNull = true
			break
		}
	}

	slog.Debug("profile validated",
		"path", path,
		"rows", p.Rows,
		"nonNull", p.NonNull)

	return p, nil
}

// ValidateWeights checks that path holds a column of non-negative values
// with a strictly positive sum.
func ValidateWeights(path string) (Weights, error) {
	values, err := readColumn(path, "yearly-weights")
	if err != nil {
		return Weights{}, err
	}

	w := Weights{Path: path, Rows: len(values)}
	for _, v := range values {
		w.Sum += v
	}

	if !(w.Sum > 0) {
		return Weights{}, errors.NewWithContext(errors.ErrCodeValue,
			fmt.Sprintf("file %s: all values are null", path),
			map[string]any{"path": path})
	}

	slog.Debug("weights validated",
		"path", path,
		"rows", w.Rows,
		"sum", w.Sum)

	return w, nil
}
