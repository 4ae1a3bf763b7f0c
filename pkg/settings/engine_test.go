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
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xpansion-tools/xpcheck/pkg/errors"
	"github.com/xpansion-tools/xpcheck/pkg/schema"
	"github.com/xpansion-tools/xpcheck/pkg/series"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func engineFor(dir string) *Engine {
	return New(WithResolver(func(name string) string {
		return filepath.Join(dir, name)
	}))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "settings.ini", "# run options\nsolver = Cbc\n\n uc_type=expansion_accurate \nyearly_weights = w=1.txt\n")

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Source())
	assert.Equal(t, []Option{
		{Key: "solver", Value: "Cbc"},
		{Key: "uc_type", Value: "expansion_accurate"},
		{Key: "yearly_weights", Value: "w=1.txt"},
	}, doc.Options())

	assert.Equal(t, "yearly", doc.Value(schema.OptCutType))
	_, explicit := doc.Explicit(schema.OptCutType)
	assert.False(t, explicit)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "settings.ini"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeFileAccess, errors.CodeOf(err))
}

func TestDocument_LastValueWins(t *testing.T) {
	doc := NewDocument(Option{Key: "solver", Value: "Cbc"}, Option{Key: "solver", Value: "Xpress"})
	assert.Equal(t, "Xpress", doc.Value("solver"))
	assert.Len(t, doc.Options(), 2)
}

func TestValidate_Options(t *testing.T) {
	tests := []struct {
		name     string
		options  []Option
		wantCode errors.ErrorCode
	}{
		{name: "empty file", options: nil},
		{name: "all defaults spelled out", options: []Option{
			{"method", "benders_decomposition"},
			{"uc_type", "expansion_fast"},
			{"master", "integer"},
			{"optimality_gap", "0"},
			{"cut_type", "yearly"},
			{"week_selection", "false"},
			{"max_iteration", "+infini"},
			{"relaxed_optimality_gap", "0.01%"},
			{"solver", "Cbc"},
			{"timelimit", "+infini"},
		}},
		{name: "unknown option", options: []Option{{"threads", "4"}}, wantCode: errors.ErrCodeSchema},
		{name: "solver is case sensitive", options: []Option{{"solver", "cbc"}}, wantCode: errors.ErrCodeValue},
		{name: "bad master", options: []Option{{"master", "mixed"}}, wantCode: errors.ErrCodeValue},
		{name: "gap minus infinity", options: []Option{{"optimality_gap", "-Inf"}}},
		{name: "gap positive", options: []Option{{"optimality_gap", "1e-4"}}},
		{name: "gap negative", options: []Option{{"optimality_gap", "-1"}}, wantCode: errors.ErrCodeValue},
		{name: "gap not a number", options: []Option{{"optimality_gap", "small"}}, wantCode: errors.ErrCodeType},
		{name: "iterations minus one", options: []Option{{"max_iteration", "-1"}}},
		{name: "iterations plus inf", options: []Option{{"max_iteration", "+Inf"}}},
		{name: "iterations positive", options: []Option{{"max_iteration", "20"}}},
		{name: "iterations zero", options: []Option{{"max_iteration", "0"}}, wantCode: errors.ErrCodeValue},
		{name: "iterations minus two", options: []Option{{"max_iteration", "-2"}}, wantCode: errors.ErrCodeValue},
		{name: "iterations fractional", options: []Option{{"max_iteration", "2.5"}}, wantCode: errors.ErrCodeType},
		{name: "relaxed gap percent", options: []Option{{"relaxed_optimality_gap", "1e-3%"}}},
		{name: "relaxed gap hundred", options: []Option{{"relaxed_optimality_gap", "100%"}}},
		{name: "relaxed gap over", options: []Option{{"relaxed_optimality_gap", "101%"}}, wantCode: errors.ErrCodeValue},
		{name: "relaxed gap no percent", options: []Option{{"relaxed_optimality_gap", "0.01"}}, wantCode: errors.ErrCodeValue},
		{name: "timelimit positive", options: []Option{{"timelimit", "3600"}}},
		{name: "timelimit minus one", options: []Option{{"timelimit", "-1"}}, wantCode: errors.ErrCodeValue},
		{name: "timelimit minus infinity", options: []Option{{"timelimit", "-Inf"}}, wantCode: errors.ErrCodeValue},
		{name: "first failure wins", options: []Option{{"solver", "Foo"}, {"threads", "4"}}, wantCode: errors.ErrCodeValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().Validate(NewDocument(tt.options...))
			if tt.wantCode == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.CodeOf(err), err.Error())
		})
	}
}

func TestValidate_YearlyWeights(t *testing.T) {
	tests := []struct {
		name     string
		weights  string
		cutType  string
		wantCode errors.ErrorCode
	}{
		{name: "valid weights", weights: "1\n2\n", cutType: "yearly"},
		{name: "valid weights default cut type", weights: "1\n"},
		{name: "weekly cut type", weights: "0\n3\n", cutType: "weekly"},
		{name: "average conflicts with good file", weights: "1\n", cutType: "average", wantCode: errors.ErrCodeCutTypeConflict},
		{name: "average conflicts with bad file", weights: "-1\n", cutType: "average", wantCode: errors.ErrCodeCutTypeConflict},
		{name: "all zero", weights: "0\n0\n", wantCode: errors.ErrCodeValue},
		{name: "negative", weights: "1\n-2\n", wantCode: errors.ErrCodeValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "w.txt", tt.weights)
			options := []Option{{Key: "yearly_weights", Value: "w.txt"}}
			if tt.cutType != "" {
				options = append(options, Option{Key: "cut_type", Value: tt.cutType})
			}

			err := engineFor(dir).Validate(NewDocument(options...))
			if tt.wantCode == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.CodeOf(err), err.Error())
			se, _ := errors.As(err)
			assert.Equal(t, "yearly_weights", se.Context["option"])
		})
	}
}

func TestValidate_YearlyWeightsMissingFile(t *testing.T) {
	err := engineFor(t.TempDir()).Validate(NewDocument(Option{Key: "yearly_weights", Value: "absent.txt"}))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeFileAccess, errors.CodeOf(err))
}

func TestValidate_ConflictCheckedBeforeFile(t *testing.T) {
	called := false
	e := New(WithWeightsValidator(func(path string) (series.Weights, error) {
		called = true
		return series.Weights{}, nil
	}))
	err := e.Validate(NewDocument(
		Option{Key: "yearly_weights", Value: "w.txt"},
		Option{Key: "cut_type", Value: "average"},
	))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeCutTypeConflict, errors.CodeOf(err))
	assert.False(t, called)
}

func TestValidate_EmptyWeightsIgnored(t *testing.T) {
	err := New().Validate(NewDocument(
		Option{Key: "yearly_weights", Value: ""},
		Option{Key: "cut_type", Value: "average"},
	))
	require.NoError(t, err)
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "weights.txt", "1\n1\n")
	path := writeFile(t, dir, "settings.ini", "solver = Xpress\nyearly_weights = weights.txt\n")

	doc, err := engineFor(dir).ValidateFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Xpress", doc.Value(schema.OptSolver))
}

func TestValidate_CountsFailures(t *testing.T) {
	before := testutil.ToFloat64(validationFailures.WithLabelValues(string(errors.ErrCodeSchema)))
	err := New().Validate(NewDocument(Option{Key: "nope", Value: "1"}))
	require.Error(t, err)
	after := testutil.ToFloat64(validationFailures.WithLabelValues(string(errors.ErrCodeSchema)))
	assert.InDelta(t, 1, after-before, 0)
}

func TestValidate_NilDocument(t *testing.T) {
	err := New().Validate(nil)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
}

func TestNew_Options(t *testing.T) {
	opts := []EngineOption{
		WithVersion("v1.2.3"),
		WithResolver(func(name string) string { return "/weights/" + name }),
	}
	e := New(opts...)
	assert.Equal(t, "v1.2.3", e.Version)
	assert.Equal(t, "/weights/w.txt", e.resolve("w.txt"))
	assert.Same(t, schema.Settings(), e.schema)
}
