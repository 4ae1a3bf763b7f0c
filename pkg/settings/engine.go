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
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xpansion-tools/xpcheck/pkg/errors"
	"github.com/xpansion-tools/xpcheck/pkg/schema"
	"github.com/xpansion-tools/xpcheck/pkg/series"
)

// Resolver maps a logical weights file name to a path.
type Resolver func(name string) string

// WeightsValidator checks a yearly weights file.
type WeightsValidator func(path string) (series.Weights, error)

// Engine runs the settings consistency checks.
type Engine struct {
	schema   *schema.Schema
	resolve  Resolver
	validate WeightsValidator

	// Version is the engine version (typically the CLI version).
	Version string
}

// EngineOption is a functional option for configuring Engine instances.
type EngineOption func(*Engine)

// WithResolver sets how the yearly_weights name is turned into a path.
// Default leaves the name unchanged.
func WithResolver(r Resolver) EngineOption {
	return func(e *Engine) {
		e.resolve = r
	}
}

// WithWeightsValidator overrides the weights file validator.
func WithWeightsValidator(v WeightsValidator) EngineOption {
	return func(e *Engine) {
		e.validate = v
	}
}

// WithVersion returns an EngineOption that sets the Engine version string.
func WithVersion(version string) EngineOption {
	return func(e *Engine) {
		e.Version = version
	}
}

// New creates a new Engine with the provided options.
func New(opts ...EngineOption) *Engine {
	e := &Engine{
		schema:   schema.Settings(),
		resolve:  func(name string) string { return name },
		validate: series.ValidateWeights,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ValidateFile loads and validates the settings file at path.
func (e *Engine) ValidateFile(path string) (*Document, error) {
	doc, err := Load(path)
	if err != nil {
		validationFailures.WithLabelValues(string(errors.CodeOf(err))).Inc()
		return nil, err
	}
	if err := e.Validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Validate checks every option written in doc, then the yearly weights
// rule. The first failure is returned.
func (e *Engine) Validate(doc *Document) error {
	start := time.Now()
	defer func() {
		validationDuration.Observe(time.Since(start).Seconds())
	}()

	if doc == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "settings document cannot be nil")
	}

	if err := e.run(doc); err != nil {
		validationFailures.WithLabelValues(string(errors.CodeOf(err))).Inc()
		return err
	}
	return nil
}

func (e *Engine) run(doc *Document) error {
	for _, o := range doc.options {
		if err := e.schema.Check(o.Key, o.Value); err != nil {
			return err
		}
	}
	slog.Debug("settings options checked", "options", len(doc.options))

	weights := strings.TrimSpace(doc.Value(schema.OptYearlyWeights))
	if weights == "" {
		return nil
	}

	cutType := strings.TrimSpace(doc.Value(schema.OptCutType))
	if cutType == schema.CutTypeAverage {
		return errors.NewWithContext(errors.ErrCodeCutTypeConflict,
			fmt.Sprintf("%s option can not be used when %s option is %s",
				schema.OptYearlyWeights, schema.OptCutType, schema.CutTypeAverage),
			map[string]any{"option": schema.OptYearlyWeights, "value": weights})
	}

	path := e.resolve(weights)
	if _, err := e.validate(path); err != nil {
		if se, ok := errors.As(err); ok {
			if se.Context == nil {
				se.Context = map[string]any{}
			}
			se.Context["option"] = schema.OptYearlyWeights
		}
		return err
	}
	slog.Debug("yearly weights checked", "path", path)

	return nil
}
