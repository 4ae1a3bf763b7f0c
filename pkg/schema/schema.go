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

package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/xpansion-tools/xpcheck/pkg/errors"
)

// Type is the primitive type of an option value.
type Type int

const (
	// TypeText accepts any string.
	TypeText Type = iota
	// TypeNonNegative accepts a number >= 0.
	TypeNonNegative
	// TypeDouble accepts any floating point number, including infinities.
	TypeDouble
	// TypeInteger accepts an integer or one of the infinity tokens.
	TypeInteger
)

// InfinityTokens are the spellings accepted by TypeInteger in place of a number.
var InfinityTokens = []string{"+Inf", "-Inf", "+infini", "-infini"}

// String returns the type name used in diagnostics.
func (t Type) String() string {
	switch t {
	case TypeText:
		return "string"
	case TypeNonNegative:
		return "non-negative"
	case TypeDouble:
		return "double"
	case TypeInteger:
		return "integer"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Admits reports whether value is of this type.
func (t Type) Admits(value string) bool {
	v := strings.TrimSpace(value)
	switch t {
	case TypeText:
		return true
	case TypeNonNegative:
		f, err := strconv.ParseFloat(v, 64)
		return err == nil && !math.IsNaN(f) && f >= 0
	case TypeDouble:
		_, err := strconv.ParseFloat(v, 64)
		return err == nil
	case TypeInteger:
		if isInfinityToken(v) {
			return true
		}
		_, err := strconv.Atoi(v)
		return err == nil
	default:
		return false
	}
}

func isInfinityToken(v string) bool {
	for _, tok := range InfinityTokens {
		if v == tok {
			return true
		}
	}
	return false
}

// RuleKind selects how a Rule judges a value.
type RuleKind int

const (
	// RuleAny accepts every value admitted by the type.
	RuleAny RuleKind = iota
	// RuleEnum accepts values from a fixed set.
	RuleEnum
	// RulePredicate delegates to a function.
	RulePredicate
)

// Rule is the value-level check applied after the type check.
type Rule struct {
	Kind RuleKind

	// Values is the legal set for RuleEnum.
	Values []string

	// FoldCase makes RuleEnum comparisons case-insensitive.
	FoldCase bool

	// Predicate returns a non-nil error describing why a value is illegal.
	Predicate func(value string) error
}

// Any returns a rule accepting every value.
func Any() Rule {
	return Rule{Kind: RuleAny}
}

// OneOf returns a rule accepting exactly the given values.
func OneOf(values ...string) Rule {
	return Rule{Kind: RuleEnum, Values: values}
}

// OneOfFold returns a rule accepting the given values regardless of case.
func OneOfFold(values ...string) Rule {
	return Rule{Kind: RuleEnum, Values: values, FoldCase: true}
}

// Predicate returns a rule delegating to fn.
func Predicate(fn func(value string) error) Rule {
	return Rule{Kind: RulePredicate, Predicate: fn}
}

// check returns a description of why value is illegal, or nil.
func (r Rule) check(value string) error {
	switch r.Kind {
	case RuleAny:
		return nil
	case RuleEnum:
		if r.contains(value) {
			return nil
		}
		return fmt.Errorf("allowed values are: %s", strings.Join(r.Values, ", "))
	case RulePredicate:
		if r.Predicate == nil {
			return nil
		}
		return r.Predicate(value)
	default:
		return fmt.Errorf("unhandled rule kind %d", int(r.Kind))
	}
}

func (r Rule) contains(value string) bool {
	if !r.FoldCase {
		for _, v := range r.Values {
			if v == value {
				return true
			}
		}
		return false
	}

	fold := cases.Fold()
	folded := fold.String(value)
	for _, v := range r.Values {
		if fold.String(v) == folded {
			return true
		}
	}
	return false
}

// Option describes a single named option.
type Option struct {
	Name       string
	Type       Type
	Rule       Rule
	Default    string
	HasDefault bool
}

// Default is an option name with its default value.
type Default struct {
	Name  string
	Value string
}

// Schema is an immutable table of options, in declaration order.
type Schema struct {
	name    string
	options []Option
	index   map[string]int
}

// New builds a schema from the given options. Option names must be unique.
func New(name string, options ...Option) *Schema {
	s := &Schema{
		name:    name,
		options: make([]Option, 0, len(options)),
		index:   make(map[string]int, len(options)),
	}
	for _, o := range options {
		if _, dup := s.index[o.Name]; dup {
			panic(fmt.Sprintf("schema %s: duplicate option %q", name, o.Name))
		}
		s.index[o.Name] = len(s.options)
		s.options = append(s.options, o)
	}
	return s
}

// Name returns the schema name, used in diagnostics.
func (s *Schema) Name() string {
	return s.name
}

// Lookup returns the option with the given (case-sensitive) name.
func (s *Schema) Lookup(name string) (Option, bool) {
	i, ok := s.index[name]
	if !ok {
		return Option{}, false
	}
	return s.options[i], true
}

// Options returns a copy of the options in declaration order.
func (s *Schema) Options() []Option {
	out := make([]Option, len(s.options))
	copy(out, s.options)
	return out
}

// Defaults returns the default values in declaration order.
// Options without a default are omitted.
func (s *Schema) Defaults() []Default {
	out := make([]Default, 0, len(s.options))
	for _, o := range s.options {
		if o.HasDefault {
			out = append(out, Default{Name: o.Name, Value: o.Default})
		}
	}
	return out
}

// DefaultOf returns the default value of an option.
func (s *Schema) DefaultOf(name string) (string, bool) {
	o, ok := s.Lookup(name)
	if !ok || !o.HasDefault {
		return "", false
	}
	return o.Default, true
}

// CheckType verifies the option exists and value has its primitive type.
func (s *Schema) CheckType(name, value string) error {
	o, ok := s.Lookup(name)
	if !ok {
		return errors.NewWithContext(errors.ErrCodeSchema,
			fmt.Sprintf("%s option not recognized in %s file", name, s.name),
			map[string]any{"option": name})
	}
	if !o.Type.Admits(value) {
		return errors.NewWithContext(errors.ErrCodeType,
			fmt.Sprintf("value %s for option %s has the wrong type, expected %s", value, name, o.Type),
			map[string]any{"option": name, "value": value, "type": o.Type.String()})
	}
	return nil
}

// CheckValue verifies value satisfies the option's rule. The option must exist.
func (s *Schema) CheckValue(name, value string) error {
	o, ok := s.Lookup(name)
	if !ok {
		return errors.NewWithContext(errors.ErrCodeSchema,
			fmt.Sprintf("%s option not recognized in %s file", name, s.name),
			map[string]any{"option": name})
	}
	if reason := o.Rule.check(value); reason != nil {
		return errors.NewWithContext(errors.ErrCodeValue,
			fmt.Sprintf("illegal value %s for option %s: %v", value, name, reason),
			map[string]any{"option": name, "value": value})
	}
	return nil
}

// Check runs CheckType then CheckValue.
func (s *Schema) Check(name, value string) error {
	if err := s.CheckType(name, value); err != nil {
		return err
	}
	return s.CheckValue(name, value)
}
