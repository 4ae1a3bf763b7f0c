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
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/ini.v1"

	"github.com/xpansion-tools/xpcheck/pkg/defaults"
	"github.com/xpansion-tools/xpcheck/pkg/errors"
	"github.com/xpansion-tools/xpcheck/pkg/schema"
)

// Values keep everything after the delimiter, including '#' and ';', and
// surrounding quotes are part of the value.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	PreserveSurroundedQuote: true,
}

// writeMu guards the ini package's formatting globals during WriteTo.
var writeMu sync.Mutex

// Load reads and parses the candidates file at path.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeFileAccess,
			fmt.Sprintf("%s is not an existent candidates file", path), err,
			map[string]any{"path": path})
	}
	if info.IsDir() {
		return nil, errors.NewWithContext(errors.ErrCodeFileAccess,
			fmt.Sprintf("%s is a directory, not a candidates file", path),
			map[string]any{"path": path})
	}
	if info.Size() > defaults.InputMaxFileSize {
		return nil, errors.NewWithContext(errors.ErrCodeFileAccess,
			fmt.Sprintf("candidates file %s exceeds maximum size of %d bytes", path, defaults.InputMaxFileSize),
			map[string]any{"path": path})
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeFileAccess,
			fmt.Sprintf("cannot read candidates file %s", path), err,
			map[string]any{"path": path})
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	doc.source = path
	return doc, nil
}

// Parse decodes INI content into a document using the candidates schema
// for defaults. A section header or an option repeated within one section
// is rejected.
func Parse(data []byte) (*Document, error) {
	if err := checkRepeats(data); err != nil {
		return nil, err
	}

	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileAccess, "cannot parse candidates file", err)
	}

	var (
		fileDefaults []Option
		sections     []*Section
	)
	for _, sec := range f.Sections() {
		options := make([]Option, 0, len(sec.Keys()))
		for _, k := range sec.Keys() {
			options = append(options, Option{Key: k.Name(), Value: k.Value()})
		}
		if sec.Name() == ini.DefaultSection {
			fileDefaults = options
			continue
		}
		sections = append(sections, NewSection(sec.Name(), options...))
	}

	return NewDocument(schema.Candidates(), fileDefaults, sections...), nil
}

// Marshal encodes the document in INI format. Only the file's [DEFAULT]
// block and explicit section options are written, in their original order.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	f, err := ini.LoadSources(loadOptions, []byte{})
	if err != nil {
		return 0, fmt.Errorf("failed to create ini file: %w", err)
	}

	def := f.Section(ini.DefaultSection)
	for _, o := range d.fileDefaults.list() {
		if _, err := def.NewKey(o.Key, o.Value); err != nil {
			return 0, fmt.Errorf("failed to write default option %q: %w", o.Key, err)
		}
	}

	for _, s := range d.sections {
		sec, err := f.NewSection(s.name)
		if err != nil {
			return 0, fmt.Errorf("failed to write section %q: %w", s.name, err)
		}
		for _, o := range s.Explicit() {
			if _, err := sec.NewKey(o.Key, o.Value); err != nil {
				return 0, fmt.Errorf("failed to write option %q in section %q: %w", o.Key, s.name, err)
			}
		}
	}

	// The ini writer reads its layout from package globals. They are set
	// for this write only and restored so other ini users are unaffected.
	writeMu.Lock()
	defer writeMu.Unlock()
	prettyFormat, prettyEqual := ini.PrettyFormat, ini.PrettyEqual
	ini.PrettyFormat, ini.PrettyEqual = false, true
	defer func() {
		ini.PrettyFormat, ini.PrettyEqual = prettyFormat, prettyEqual
	}()

	// The ini writer omits the [DEFAULT] header unless asked globally,
	// so it is written here when the block is not empty.
	var n int64
	if len(d.fileDefaults.options) > 0 {
		m, err := io.WriteString(w, "["+ini.DefaultSection+"]\n")
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	m, err := f.WriteTo(w)
	return n + m, err
}

// checkRepeats scans the raw lines for a section header seen twice or an
// option set twice in one section. The ini parser merges both silently, and
// a merged section would lose a candidate on rewrite.
func checkRepeats(data []byte) error {
	section := ini.DefaultSection
	seen := map[string]bool{}
	keys := map[string]map[string]int{section: {}}
	var continued, multiline bool

	for i, raw := range strings.Split(string(data), "\n") {
		number := i + 1
		line := strings.TrimSpace(raw)

		switch {
		case multiline:
			multiline = !strings.Contains(line, `"""`)
			continue
		case continued:
			continued = strings.HasSuffix(line, `\`)
			continue
		}
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}

		if line[0] == '[' {
			end := strings.IndexByte(line, ']')
			if end < 0 {
				continue
			}
			section = strings.TrimSpace(line[1:end])
			if seen[section] {
				return errors.NewWithContext(errors.ErrCodeFileAccess,
					fmt.Sprintf("cannot parse candidates file: section %s is repeated at line %d", section, number),
					map[string]any{"section": section, "line": number})
			}
			seen[section] = true
			if keys[section] == nil {
				keys[section] = map[string]int{}
			}
			continue
		}

		at := strings.IndexAny(line, "=:")
		if at < 0 {
			continue
		}
		key := strings.TrimSpace(line[:at])
		if first, ok := keys[section][key]; ok {
			return errors.NewWithContext(errors.ErrCodeFileAccess,
				fmt.Sprintf("cannot parse candidates file: option %s in section %s is repeated at line %d (first set at line %d)", key, section, number, first),
				map[string]any{"section": section, "option": key, "line": number})
		}
		keys[section][key] = number

		value := strings.TrimSpace(line[at+1:])
		if strings.HasPrefix(value, `"""`) {
			multiline = !strings.Contains(value[3:], `"""`)
		} else {
			continued = strings.HasSuffix(value, `\`)
		}
	}
	return nil
}
