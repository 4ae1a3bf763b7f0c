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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xpansion-tools/xpcheck/pkg/errors"
)

func TestType_Admits(t *testing.T) {
	tests := []struct {
		typ   Type
		value string
		want  bool
	}{
		{TypeText, "", true},
		{TypeText, "anything at all", true},
		{TypeNonNegative, "0", true},
		{TypeNonNegative, "12.5", true},
		{TypeNonNegative, " 3 ", true},
		{TypeNonNegative, "1e3", true},
		{TypeNonNegative, "-1", false},
		{TypeNonNegative, "NaN", false},
		{TypeNonNegative, "abc", false},
		{TypeNonNegative, "", false},
		{TypeDouble, "-0.5", true},
		{TypeDouble, "-Inf", true},
		{TypeDouble, "x", false},
		{TypeInteger, "42", true},
		{TypeInteger, "-1", true},
		{TypeInteger, "+infini", true},
		{TypeInteger, "-Inf", true},
		{TypeInteger, "1.5", false},
		{TypeInteger, "inf", false},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String()+"/"+tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.Admits(tt.value))
		})
	}
}

func TestNew_DuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		New("dup", Option{Name: "a"}, Option{Name: "a"})
	})
}

func TestSchema_Lookup(t *testing.T) {
	s := Candidates()

	o, ok := s.Lookup(OptMaxUnits)
	require.True(t, ok)
	assert.Equal(t, TypeNonNegative, o.Type)

	_, ok = s.Lookup("Max-Units")
	assert.False(t, ok, "lookup is case-sensitive")
}

func TestSchema_Defaults(t *testing.T) {
	defs := Candidates().Defaults()
	require.Len(t, defs, 17)
	assert.Equal(t, Default{Name: OptName, Value: Unset}, defs[0])

	v, ok := Candidates().DefaultOf(OptLinkProfile)
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = Settings().DefaultOf(OptYearlyWeights)
	assert.False(t, ok, "yearly_weights has no default")
}

func TestSchema_DefaultsAreAdmissible(t *testing.T) {
	for _, s := range []*Schema{Candidates(), Settings()} {
		for _, d := range s.Defaults() {
			assert.NoError(t, s.Check(d.Name, d.Value), "%s default of %s", s.Name(), d.Name)
		}
	}
}

func TestCandidates_Check(t *testing.T) {
	tests := []struct {
		name     string
		option   string
		value    string
		wantCode errors.ErrorCode
	}{
		{"free text", OptName, "grid-reinforcement", ""},
		{"enum lower", OptEnable, "true", ""},
		{"enum folded", OptEnable, "TRUE", ""},
		{"enum mixed case", OptCandidateType, "Decommissioning", ""},
		{"enum illegal", OptRelaxed, "maybe", errors.ErrCodeValue},
		{"non-negative ok", OptUnitSize, "200", ""},
		{"negative", OptMaxUnits, "-2", errors.ErrCodeType},
		{"not a number", OptMaxInvestment, "lots", errors.ErrCodeType},
		{"unknown option", "colour", "blue", errors.ErrCodeSchema},
		{"case-sensitive name", "Relaxed", "false", errors.ErrCodeSchema},
		{"profile path accepted as-is", OptLinkProfile, "capa/link.txt", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Candidates().Check(tt.option, tt.value)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.CodeOf(err))
		})
	}
}

func TestCheck_MessagesCarryValueAndOption(t *testing.T) {
	err := Candidates().Check(OptUnitSize, "-3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-3")
	assert.Contains(t, err.Error(), OptUnitSize)

	err = Candidates().Check(OptEnable, "yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allowed values are: true, false")

	se, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, OptEnable, se.Context["option"])
	assert.Equal(t, "yes", se.Context["value"])
}

func TestSettings_Check(t *testing.T) {
	tests := []struct {
		option   string
		value    string
		wantCode errors.ErrorCode
	}{
		{OptMethod, "benders_decomposition", ""},
		{OptMethod, "other", errors.ErrCodeValue},
		{OptUCType, "expansion_accurate", ""},
		{OptMaster, "full_integer", ""},
		{OptMaster, "Integer", errors.ErrCodeValue},
		{OptSolver, "Cplex", ""},
		{OptSolver, "cplex", errors.ErrCodeValue},
		{OptCutType, "weekly", ""},
		{OptWeekSelection, "true", ""},

		{OptOptimalityGap, "0", ""},
		{OptOptimalityGap, "0.5", ""},
		{OptOptimalityGap, "-Inf", ""},
		{OptOptimalityGap, "+Inf", ""},
		{OptOptimalityGap, "-0.1", errors.ErrCodeValue},
		{OptOptimalityGap, "NaN", errors.ErrCodeValue},
		{OptOptimalityGap, "gap", errors.ErrCodeType},

		{OptMaxIteration, "+Inf", ""},
		{OptMaxIteration, "+infini", ""},
		{OptMaxIteration, "-1", ""},
		{OptMaxIteration, "10", ""},
		{OptMaxIteration, "0", errors.ErrCodeValue},
		{OptMaxIteration, "-2", errors.ErrCodeValue},
		{OptMaxIteration, "-Inf", errors.ErrCodeValue},
		{OptMaxIteration, "2.5", errors.ErrCodeType},

		{OptRelaxedOptimalityGap, "0%", ""},
		{OptRelaxedOptimalityGap, "12.5%", ""},
		{OptRelaxedOptimalityGap, "100%", ""},
		{OptRelaxedOptimalityGap, "101%", errors.ErrCodeValue},
		{OptRelaxedOptimalityGap, "0.01", errors.ErrCodeValue},
		{OptRelaxedOptimalityGap, "x%", errors.ErrCodeValue},

		{OptTimeLimit, "+Inf", ""},
		{OptTimeLimit, "3600", ""},
		{OptTimeLimit, "0", errors.ErrCodeValue},
		{OptTimeLimit, "-infini", errors.ErrCodeValue},

		{OptYearlyWeights, "weights.txt", ""},
		{OptYearlyWeights, "", ""},
		{"additional_constraints", "x", errors.ErrCodeSchema},
	}

	for _, tt := range tests {
		t.Run(tt.option+"="+tt.value, func(t *testing.T) {
			err := Settings().Check(tt.option, tt.value)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.CodeOf(err))
		})
	}
}
