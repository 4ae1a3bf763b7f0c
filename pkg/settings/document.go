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

package settings

import (
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/xpansion-tools/xpcheck/pkg/defaults"
	"github.com/xpansion-tools/xpcheck/pkg/errors"
	"github.com/xpansion-tools/xpcheck/pkg/file"
	"github.com/xpansion-tools/xpcheck/pkg/schema"
)

// Option is one key=value line of the settings file.
type Option struct {
	Key   string
	Value string
}

// Document holds the options of a settings file in file order.
type Document struct {
	source  string
	options []Option
	values  map[string]string
	schema  *schema.Schema
}

// NewDocument builds a document whose missing options read from the
// settings schema defaults. When a key repeats, Get returns the last value.
func NewDocument(options ...Option) *Document {
	d := &Document{
		options: make([]Option, len(options)),
		values:  make(map[string]string, len(options)),
		schema:  schema.Settings(),
	}
	copy(d.options, options)
	for _, o := range options {
		d.values[o.Key] = o.Value
	}
	return d
}

// Load reads the settings file at path. Keys and values are trimmed, the
// value is everything after the first '=', and blank lines and '#'
// comments are skipped.
func Load(path string) (*Document, error) {
	p := file.NewParser(file.WithMaxSize(defaults.InputMaxFileSize))
	pairs, err := p.GetPairs(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapWithContext(errors.ErrCodeFileAccess,
				fmt.Sprintf("%s is not an existent settings file", path), err,
				map[string]any{"path": path})
		}
		return nil, errors.WrapWithContext(errors.ErrCodeFileAccess,
			fmt.Sprintf("cannot read settings file %s", path), err,
			map[string]any{"path": path})
	}

	options := make([]Option, 0, len(pairs))
	for _, kv := range pairs {
		options = append(options, Option{Key: kv.Key, Value: kv.Value})
	}

	d := NewDocument(options...)
	d.source = path
	return d, nil
}

// Source returns the path the document was loaded from, if any.
func (d *Document) Source() string {
	return d.source
}

// Options returns the explicit options in file order.
func (d *Document) Options() []Option {
	out := make([]Option, len(d.options))
	copy(out, d.options)
	return out
}

// Explicit returns the value written in the file for key.
func (d *Document) Explicit(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Get returns the explicit value of key, or its default.
func (d *Document) Get(key string) (string, bool) {
	if v, ok := d.values[key]; ok {
		return v, true
	}
	return d.schema.DefaultOf(key)
}

// Value is Get without the presence flag.
func (d *Document) Value(key string) string {
	v, _ := d.Get(key)
	return v
}
