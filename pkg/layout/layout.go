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

package layout

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/xpansion-tools/xpcheck/pkg/defaults"
	"github.com/xpansion-tools/xpcheck/pkg/errors"
)

var validate = validator.New()

// Layout locates the input files of one study.
type Layout struct {
	// Root is the study directory. When set, fields left empty take their
	// default location inside it.
	Root string `yaml:"root,omitempty" toml:"root" json:"root,omitempty"`

	// Candidates is the candidates file.
	Candidates string `yaml:"candidates" toml:"candidates" json:"candidates" validate:"required"`

	// Settings is the settings file.
	Settings string `yaml:"settings" toml:"settings" json:"settings" validate:"required"`

	// CapacityDir holds the profile files named by candidates.
	CapacityDir string `yaml:"capacityDir" toml:"capacityDir" json:"capacityDir" validate:"required"`

	// WeightsDir holds the yearly weights file named by settings.
	// Defaults to CapacityDir.
	WeightsDir string `yaml:"weightsDir,omitempty" toml:"weightsDir" json:"weightsDir,omitempty" validate:"required"`
}

// FromStudy returns the default layout of the study at root.
func FromStudy(root string) *Layout {
	l := &Layout{Root: root}
	applyDefaults(l)
	return l
}

// Load reads a layout file. Files ending in .toml are read as TOML, anything
// else as YAML. Relative paths are resolved against the layout file directory.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("reading layout %s", path), err,
			map[string]any{"path": path})
	}

	var l Layout
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &l); err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("parsing layout %s", path), err,
				map[string]any{"path": path})
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&l); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("parsing layout %s", path), err,
				map[string]any{"path": path})
		}
	}

	l.resolve(filepath.Dir(path))
	applyDefaults(&l)

	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// resolve makes relative paths relative to base.
func (l *Layout) resolve(base string) {
	for _, p := range []*string{&l.Root, &l.Candidates, &l.Settings, &l.CapacityDir, &l.WeightsDir} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
}

func applyDefaults(l *Layout) {
	if l.Root != "" {
		expansion := filepath.Join(l.Root, filepath.FromSlash(defaults.ExpansionDir))
		if l.Candidates == "" {
			l.Candidates = filepath.Join(expansion, defaults.CandidatesFileName)
		}
		if l.Settings == "" {
			l.Settings = filepath.Join(expansion, defaults.SettingsFileName)
		}
		if l.CapacityDir == "" {
			l.CapacityDir = filepath.Join(expansion, defaults.CapacityDirName)
		}
		if l.WeightsDir == "" {
			l.WeightsDir = filepath.Join(expansion, defaults.WeightsDirName)
		}
	}
	if l.WeightsDir == "" {
		l.WeightsDir = l.CapacityDir
	}
}

// Validate checks that every location is set.
func (l *Layout) Validate() error {
	err := validate.Struct(l)
	if err == nil {
		return nil
	}

	var missing []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) == 0 {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid layout", err)
	}
	return errors.WrapWithContext(errors.ErrCodeInvalidRequest,
		fmt.Sprintf("invalid layout: missing %s", strings.Join(missing, ", ")), err,
		map[string]any{"fields": missing})
}

// CapacityFile resolves a profile name against the capacity directory.
// Absolute names are returned unchanged.
func (l *Layout) CapacityFile(name string) string {
	return join(l.CapacityDir, name)
}

// WeightsFile resolves a yearly weights name against the weights directory.
// Absolute names are returned unchanged.
func (l *Layout) WeightsFile(name string) string {
	return join(l.WeightsDir, name)
}

func join(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// Files returns the input files a change to which calls for a new check.
func (l *Layout) Files() []string {
	return []string{l.Candidates, l.Settings}
}
