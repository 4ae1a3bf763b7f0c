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

// Package file reads line-oriented text files: flat key=value settings files
// and one-value-per-line numeric series.
//
// # Usage
//
// Read ordered key=value pairs (value is everything after the first "="):
//
//	p := file.NewParser()
//	pairs, err := p.GetPairs("settings.ini")
//
// Read every line of a numeric series, keeping blank lines so they can be
// reported with their position:
//
//	p := file.NewParser(
//	    file.WithSkipComments(false),
//	    file.WithSkipEmptyLines(false),
//	    file.WithMaxSize(defaults.SeriesMaxFileSize),
//	)
//	lines, err := p.GetNumberedLines("capa/profile.txt")
//
// # Error Handling
//
// Read failures wrap the underlying *os.PathError:
//
//	_, err := p.GetLines("/nonexistent")
//	errors.Is(err, fs.ErrNotExist) // true
//
// Files larger than the configured maximum and files with invalid UTF-8 are
// rejected before parsing.
package file
