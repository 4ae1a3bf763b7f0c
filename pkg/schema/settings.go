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
	"strconv"
	"strings"
)

// Settings option names referenced by the cross-option rule.
const (
	OptMethod               = "method"
	OptUCType               = "uc_type"
	OptMaster               = "master"
	OptOptimalityGap        = "optimality_gap"
	OptCutType              = "cut_type"
	OptWeekSelection        = "week_selection"
	OptMaxIteration         = "max_iteration"
	OptRelaxedOptimalityGap = "relaxed_optimality_gap"
	OptSolver               = "solver"
	OptTimeLimit            = "timelimit"
	OptYearlyWeights        = "yearly_weights"
)

// CutTypeAverage is the cut_type that cannot be combined with yearly weights.
const CutTypeAverage = "average"

var settings = New("settings",
	Option{Name: OptMethod, Type: TypeText, Rule: OneOf("benders_decomposition"), Default: "benders_decomposition", HasDefault: true},
	Option{Name: OptUCType, Type: TypeText, Rule: OneOf("expansion_accurate", "expansion_fast"), Default: "expansion_fast", HasDefault: true},
	Option{Name: OptMaster, Type: TypeText, Rule: OneOf("relaxed", "integer", "full_integer"), Default: "integer", HasDefault: true},
	Option{Name: OptOptimalityGap, Type: TypeDouble, Rule: Predicate(optimalityGap), Default: "0", HasDefault: true},
	Option{Name: OptCutType, Type: TypeText, Rule: OneOf(CutTypeAverage, "yearly", "weekly"), Default: "yearly", HasDefault: true},
	Option{Name: OptWeekSelection, Type: TypeText, Rule: OneOf("true", "false"), Default: "false", HasDefault: true},
	Option{Name: OptMaxIteration, Type: TypeInteger, Rule: Predicate(maxIteration), Default: "+infini", HasDefault: true},
	Option{Name: OptRelaxedOptimalityGap, Type: TypeText, Rule: Predicate(relaxedOptimalityGap), Default: "0.01%", HasDefault: true},
	Option{Name: OptSolver, Type: TypeText, Rule: OneOf("Cplex", "Xpress", "Cbc", "Sirius", "Gurobi", "GLPK"), Default: "Cbc", HasDefault: true},
	Option{Name: OptTimeLimit, Type: TypeInteger, Rule: Predicate(timeLimit), Default: "+infini", HasDefault: true},
	Option{Name: OptYearlyWeights, Type: TypeText, Rule: Any()},
)

// Settings returns the schema of the settings file.
func Settings() *Schema {
	return settings
}

func isPositiveInfinity(v string) bool {
	return v == "+Inf" || v == "+infini"
}

func optimalityGap(value string) error {
	v := strings.TrimSpace(value)
	if v == "-Inf" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || !(f >= 0) {
		return fmt.Errorf("only -Inf or non-negative values are allowed")
	}
	return nil
}

func maxIteration(value string) error {
	v := strings.TrimSpace(value)
	if isPositiveInfinity(v) {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || (n != -1 && n <= 0) {
		return fmt.Errorf("only +Inf, -1 or positive values are allowed")
	}
	return nil
}

func relaxedOptimalityGap(value string) error {
	v := strings.TrimSpace(value)
	if !strings.HasSuffix(v, "%") {
		return fmt.Errorf(`legal format "X%%" with X between 0 and 100`)
	}
	gap, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(v, "%")), 64)
	if err != nil || !(gap >= 0 && gap <= 100) {
		return fmt.Errorf(`legal format "X%%" with X between 0 and 100`)
	}
	return nil
}

func timeLimit(value string) error {
	v := strings.TrimSpace(value)
	if isPositiveInfinity(v) {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fmt.Errorf("only +Inf or positive values are allowed")
	}
	return nil
}
