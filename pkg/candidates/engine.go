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
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xpansion-tools/xpcheck/pkg/errors"
	"github.com/xpansion-tools/xpcheck/pkg/schema"
	"github.com/xpansion-tools/xpcheck/pkg/series"
)

// Resolver maps a logical profile name to a file path.
type Resolver func(name string) string

// ProfileValidator checks a profile file.
type ProfileValidator func(path string) (series.Profile, error)

// Pruned identifies a section removed for lacking a profile.
type Pruned struct {
	// Section is the section name.
	Section string `json:"section" yaml:"section"`

	// Name is the candidate's name attribute.
	Name string `json:"name" yaml:"name"`
}

// Result is the outcome of a successful validation.
type Result struct {
	// Document is the validated document, without pruned sections.
	Document *Document

	// Pruned lists removed sections in document order.
	Pruned []Pruned

	// Backup is the path of the pre-rewrite copy, set when the file was rewritten.
	Backup string
}

// Changed reports whether any section was pruned.
func (r *Result) Changed() bool {
	return len(r.Pruned) > 0
}

// Engine runs the candidates consistency checks.
type Engine struct {
	schema   *schema.Schema
	resolve  Resolver
	validate ProfileValidator

	// Version is the engine version (typically the CLI version).
	Version string
}

// EngineOption is a functional option for configuring Engine instances.
type EngineOption func(*Engine)

// WithResolver sets how profile names are turned into paths.
// Default leaves names unchanged.
func WithResolver(r Resolver) EngineOption {
	return func(e *Engine) {
		e.resolve = r
	}
}

// WithProfileValidator overrides the profile file validator.
func WithProfileValidator(v ProfileValidator) EngineOption {
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
		schema:   schema.Candidates(),
		resolve:  func(name string) string { return name },
		validate: series.ValidateProfile,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate runs every check over doc and returns the document without
// pruned sections. The first failing check aborts the run. Nothing is written.
func (e *Engine) Validate(doc *Document) (*Result, error) {
	start := time.Now()
	defer func() {
		validationDuration.Observe(time.Since(start).Seconds())
	}()

	if doc == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "candidates document cannot be nil")
	}

	res, err := e.run(doc)
	if err != nil {
		validationFailures.WithLabelValues(string(errors.CodeOf(err))).Inc()
		return nil, err
	}
	return res, nil
}

func (e *Engine) run(doc *Document) (*Result, error) {
	sections := doc.Sections()

	if err := e.checkAdmissible(sections); err != nil {
		return nil, err
	}
	slog.Debug("option types and values checked", "sections", len(sections))

	if err := checkIdentity(sections); err != nil {
		return nil, err
	}
	if err := checkUnique(sections); err != nil {
		return nil, err
	}
	slog.Debug("candidate identities checked")

	if err := checkSizing(sections); err != nil {
		return nil, err
	}

	pruned, err := e.prune(sections)
	if err != nil {
		return nil, err
	}

	res := &Result{Document: doc}
	if len(pruned) > 0 {
		names := make([]string, 0, len(pruned))
		for _, p := range pruned {
			names = append(names, p.Section)
		}
		res.Document = doc.Without(names...)
		res.Pruned = pruned
	}

	if err := e.checkCoherence(res.Document.Sections()); err != nil {
		return nil, err
	}
	slog.Debug("profile flags checked", "sections", res.Document.Len())

	return res, nil
}

// inSection records the section on a structured error.
func inSection(err error, section string) error {
	if se, ok := errors.As(err); ok {
		if se.Context == nil {
			se.Context = map[string]any{}
		}
		se.Context["section"] = section
	}
	return err
}

func (e *Engine) checkAdmissible(sections []*Section) error {
	for _, s := range sections {
		for _, o := range s.Items() {
			if err := e.schema.Check(o.Key, o.Value); err != nil {
				return inSection(err, s.name)
			}
		}
	}
	return nil
}

func checkIdentity(sections []*Section) error {
	for _, s := range sections {
		name := strings.TrimSpace(s.Value(schema.OptName))
		if name == "" || name == schema.Unset {
			return errors.NewWithContext(errors.ErrCodeIdentity,
				fmt.Sprintf("candidates name cannot be empty: found in section %s", s.name),
				map[string]any{"section": s.name, "attribute": schema.OptName})
		}
		if strings.Contains(name, " ") {
			return errors.NewWithContext(errors.ErrCodeIdentity,
				fmt.Sprintf("candidates name should not contain space, found in section %s in %q", s.name, name),
				map[string]any{"section": s.name, "attribute": schema.OptName, "value": name})
		}

		link := strings.TrimSpace(s.Value(schema.OptLink))
		if link == "" || link == schema.Unset {
			return errors.NewWithContext(errors.ErrCodeIdentity,
				fmt.Sprintf("candidates link cannot be empty: found in section %s", s.name),
				map[string]any{"section": s.name, "attribute": schema.OptLink})
		}
	}
	return nil
}

func checkUnique(sections []*Section) error {
	for _, attr := range []string{schema.OptName, schema.OptLink} {
		seen := make(map[string]bool, len(sections))
		for _, s := range sections {
			v := strings.TrimSpace(s.Value(attr))
			if seen[v] {
				return errors.NewWithContext(errors.ErrCodeDuplicate,
					fmt.Sprintf("candidates %ss have to be unique, duplicate %s %s in section %s", attr, attr, v, s.name),
					map[string]any{"section": s.name, "attribute": attr, "value": v})
			}
			seen[v] = true
		}
	}
	return nil
}

func number(s *Section, key string) (float64, error) {
	raw := strings.TrimSpace(s.Value(key))
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.WrapWithContext(errors.ErrCodeType,
			fmt.Sprintf("value %s for option %s is not a number", raw, key), err,
			map[string]any{"section": s.name, "option": key, "value": raw})
	}
	return f, nil
}

// checkSizing enforces the exclusion between max-investment and the
// (unit-size, max-units) pair. A budget excludes both sizing fields, while
// sizing without a budget needs both fields.
func checkSizing(sections []*Section) error {
	for _, s := range sections {
		maxInvest, err := number(s, schema.OptMaxInvestment)
		if err != nil {
			return err
		}
		unitSize, err := number(s, schema.OptUnitSize)
		if err != nil {
			return err
		}
		maxUnits, err := number(s, schema.OptMaxUnits)
		if err != nil {
			return err
		}

		ctx := map[string]any{
			"section":               s.name,
			schema.OptMaxInvestment: maxInvest,
			schema.OptUnitSize:      unitSize,
			schema.OptMaxUnits:      maxUnits,
		}
		if maxInvest != 0 {
			if maxUnits != 0 || unitSize != 0 {
				return errors.NewWithContext(errors.ErrCodeSizingConflict,
					fmt.Sprintf("illegal values in section %s: cannot assign non-null values simultaneously to max-investment and (unit-size or max-units)", s.name),
					ctx)
			}
			continue
		}
		if maxUnits == 0 || unitSize == 0 {
			return errors.NewWithContext(errors.ErrCodeSizingConflict,
				fmt.Sprintf("illegal values in section %s: need non-null max-investment or (unit-size and max-units)", s.name),
				ctx)
		}
	}
	return nil
}

// prune returns the sections with no meaningful profile. Profile files are
// checked in attribute order until one attribute gives the section a profile;
// files named after that point are not read.
func (e *Engine) prune(sections []*Section) ([]Pruned, error) {
	var pruned []Pruned
	for _, s := range sections {
		hasProfile := false
		for _, attr := range ProfileAttributes {
			ref := ParseProfileRef(s.Value(attr))
			switch ref.Kind {
			case NoProfile:
			case FlatProfile:
				hasProfile = true
			case FileProfile:
				if hasProfile {
					continue
				}
				p, err := e.validate(e.resolve(ref.Name))
				if err != nil {
					return nil, inSection(err, s.name)
				}
				hasProfile = p.NonNull
			}
		}
		if hasProfile {
			continue
		}

		name := strings.TrimSpace(s.Value(schema.OptName))
		slog.Warn("candidate will be removed",
			"section", s.name,
			"name", name)
		prunedCandidates.Inc()
		pruned = append(pruned, Pruned{Section: s.name, Name: name})
	}
	return pruned, nil
}

// profileExists reports whether ref names an existing regular file.
func (e *Engine) profileExists(ref ProfileRef) bool {
	if ref.Kind != FileProfile {
		return false
	}
	info, err := os.Stat(e.resolve(ref.Name))
	return err == nil && info.Mode().IsRegular()
}

func (e *Engine) checkCoherence(sections []*Section) error {
	for _, s := range sections {
		for _, pair := range flagPairs {
			hasFlag := strings.EqualFold(strings.TrimSpace(s.Value(pair.flag)), "true")
			ref := ParseProfileRef(s.Value(pair.profile))
			exists := e.profileExists(ref)

			ctx := map[string]any{
				"section":   s.name,
				"attribute": pair.flag,
				"value":     ref.String(),
			}
			name := strings.TrimSpace(s.Value(schema.OptName))
			switch {
			case hasFlag && !exists:
				return errors.NewWithContext(errors.ErrCodeCoherence,
					fmt.Sprintf("incoherence in candidate %s: %s set to true while no %s file was specified", name, pair.flag, pair.profile),
					ctx)
			case !hasFlag && exists:
				return errors.NewWithContext(errors.ErrCodeCoherence,
					fmt.Sprintf("incoherence in candidate %s: %s set to false while a valid %s file was specified", name, pair.flag, pair.profile),
					ctx)
			}
		}
	}
	return nil
}
