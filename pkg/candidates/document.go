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

package candidates

import (
	"github.com/xpansion-tools/xpcheck/pkg/schema"
)

// Option is a single key/value entry of a section.
type Option struct {
	Key   string
	Value string
}

// table is an ordered option list with lookup by key.
type table struct {
	options []Option
	index   map[string]int
}

func newTable(options []Option) *table {
	t := &table{
		options: make([]Option, 0, len(options)),
		index:   make(map[string]int, len(options)),
	}
	for _, o := range options {
		t.set(o)
	}
	return t
}

// set appends the option, or replaces the value of an existing key in place.
func (t *table) set(o Option) {
	if i, ok := t.index[o.Key]; ok {
		t.options[i].Value = o.Value
		return
	}
	t.index[o.Key] = len(t.options)
	t.options = append(t.options, o)
}

func (t *table) get(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	i, ok := t.index[key]
	if !ok {
		return "", false
	}
	return t.options[i].Value, true
}

func (t *table) list() []Option {
	if t == nil {
		return nil
	}
	out := make([]Option, len(t.options))
	copy(out, t.options)
	return out
}

// Section is one candidate. Sections are immutable once built.
type Section struct {
	name     string
	explicit *table
	defaults *table
}

// NewSection builds a section from its explicit options, in order.
// A repeated key keeps its first position and its last value.
func NewSection(name string, options ...Option) *Section {
	return &Section{
		name:     name,
		explicit: newTable(options),
	}
}

// Name returns the section name.
func (s *Section) Name() string {
	return s.name
}

// Get returns the explicit value of key, or its default.
func (s *Section) Get(key string) (string, bool) {
	if v, ok := s.explicit.get(key); ok {
		return v, true
	}
	return s.defaults.get(key)
}

// Value is Get without the presence flag.
func (s *Section) Value(key string) string {
	v, _ := s.Get(key)
	return v
}

// Explicit returns the options written in the section, in file order.
func (s *Section) Explicit() []Option {
	return s.explicit.list()
}

// Items returns the effective options: explicit ones in file order, then
// defaults the section does not override.
func (s *Section) Items() []Option {
	items := s.explicit.list()
	if s.defaults == nil {
		return items
	}
	for _, d := range s.defaults.options {
		if _, ok := s.explicit.get(d.Key); !ok {
			items = append(items, d)
		}
	}
	return items
}

// bind returns a copy of s reading defaults from d.
func (s *Section) bind(d *table) *Section {
	return &Section{
		name:     s.name,
		explicit: s.explicit,
		defaults: d,
	}
}

// Document is an ordered collection of candidate sections.
type Document struct {
	source       string
	sections     []*Section
	fileDefaults *table
	defaults     *table
}

// NewDocument builds a document. Effective defaults are the schema defaults
// overlaid by fileDefaults, the options of the file's own [DEFAULT] block.
func NewDocument(s *schema.Schema, fileDefaults []Option, sections ...*Section) *Document {
	effective := make([]Option, 0, len(fileDefaults))
	if s != nil {
		for _, d := range s.Defaults() {
			effective = append(effective, Option{Key: d.Name, Value: d.Value})
		}
	}
	effective = append(effective, fileDefaults...)

	doc := &Document{
		fileDefaults: newTable(fileDefaults),
		defaults:     newTable(effective),
		sections:     make([]*Section, 0, len(sections)),
	}
	for _, sec := range sections {
		doc.sections = append(doc.sections, sec.bind(doc.defaults))
	}
	return doc
}

// Source returns the path the document was loaded from, if any.
func (d *Document) Source() string {
	return d.source
}

// Sections returns the sections in document order.
func (d *Document) Sections() []*Section {
	out := make([]*Section, len(d.sections))
	copy(out, d.sections)
	return out
}

// Len returns the number of sections.
func (d *Document) Len() int {
	return len(d.sections)
}

// Section returns the section with the given name.
func (d *Document) Section(name string) (*Section, bool) {
	for _, s := range d.sections {
		if s.name == name {
			return s, true
		}
	}
	return nil, false
}

// Names returns the section names in document order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.sections))
	for _, s := range d.sections {
		names = append(names, s.name)
	}
	return names
}

// FileDefaults returns the options of the file's [DEFAULT] block.
func (d *Document) FileDefaults() []Option {
	return d.fileDefaults.list()
}

// Without returns a new document lacking the named sections.
// The receiver is left untouched; remaining sections are shared.
func (d *Document) Without(names ...string) *Document {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}

	out := &Document{
		source:       d.source,
		fileDefaults: d.fileDefaults,
		defaults:     d.defaults,
		sections:     make([]*Section, 0, len(d.sections)),
	}
	for _, s := range d.sections {
		if !drop[s.name] {
			out.sections = append(out.sections, s)
		}
	}
	return out
}
