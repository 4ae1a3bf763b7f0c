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

// Package schema defines the option tables of the candidates and settings
// files and checks single option values against them.
//
// # Overview
//
// Each option has a primitive Type, a value Rule and an optional default.
// Checking is two-stage: the type check runs first, and the rule only sees
// values the type admitted.
//
// Types:
//   - TypeText: any string
//   - TypeNonNegative: a number >= 0
//   - TypeDouble: any number, infinities included
//   - TypeInteger: an integer or +Inf, -Inf, +infini, -infini
//
// Rules:
//   - RuleAny: no further restriction
//   - RuleEnum: a fixed legal set, optionally compared case-insensitively
//   - RulePredicate: an option-specific function (ranges, "X%" formats)
//
// # Usage
//
//	s := schema.Candidates()
//	if err := s.Check("enable", "TRUE"); err != nil {
//	    // SCHEMA, TYPE or VALUE structured error
//	}
//
// Option names are case-sensitive. Checks are independent of other options;
// cross-field rules live in the candidates and settings engines.
package schema
