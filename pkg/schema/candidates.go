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

// Candidate option names referenced by the consistency checks.
const (
	OptName                                = "name"
	OptEnable                              = "enable"
	OptCandidateType                       = "candidate-type"
	OptInvestmentType                      = "investment-type"
	OptLink                                = "link"
	OptAnnualCostPerMW                     = "annual-cost-per-mw"
	OptUnitSize                            = "unit-size"
	OptMaxUnits                            = "max-units"
	OptMaxInvestment                       = "max-investment"
	OptRelaxed                             = "relaxed"
	OptHasLinkProfile                      = "has-link-profile"
	OptHasLinkProfileIndirect              = "has-link-profile-indirect"
	OptLinkProfile                         = "link-profile"
	OptLinkProfileIndirect                 = "link-profile-indirect"
	OptAlreadyInstalledCapacity            = "already-installed-capacity"
	OptAlreadyInstalledLinkProfile         = "already-installed-link-profile"
	OptAlreadyInstalledLinkProfileIndirect = "already-installed-link-profile-indirect"
)

// Unset is the default of identity options; a candidate still carrying it
// was never given a name or link.
const Unset = "NA"

var candidates = New("candidates",
	Option{Name: OptName, Type: TypeText, Rule: Any(), Default: Unset, HasDefault: true},
	Option{Name: OptEnable, Type: TypeText, Rule: OneOfFold("true", "false"), Default: "true", HasDefault: true},
	Option{Name: OptCandidateType, Type: TypeText, Rule: OneOfFold("investment", "decommissioning"), Default: "investment", HasDefault: true},
	Option{Name: OptInvestmentType, Type: TypeText, Rule: Any(), Default: "generation", HasDefault: true},
	Option{Name: OptLink, Type: TypeText, Rule: Any(), Default: Unset, HasDefault: true},
	Option{Name: OptAnnualCostPerMW, Type: TypeNonNegative, Rule: Any(), Default: "0", HasDefault: true},
	Option{Name: OptUnitSize, Type: TypeNonNegative, Rule: Any(), Default: "0", HasDefault: true},
	Option{Name: OptMaxUnits, Type: TypeNonNegative, Rule: Any(), Default: "0", HasDefault: true},
	Option{Name: OptMaxInvestment, Type: TypeNonNegative, Rule: Any(), Default: "0", HasDefault: true},
	Option{Name: OptRelaxed, Type: TypeText, Rule: OneOfFold("true", "false"), Default: "false", HasDefault: true},
	Option{Name: OptHasLinkProfile, Type: TypeText, Rule: OneOfFold("true", "false"), Default: "false", HasDefault: true},
	Option{Name: OptHasLinkProfileIndirect, Type: TypeText, Rule: OneOfFold("true", "false"), Default: "false", HasDefault: true},
	Option{Name: OptLinkProfile, Type: TypeText, Rule: Any(), Default: "1", HasDefault: true},
	Option{Name: OptLinkProfileIndirect, Type: TypeText, Rule: Any(), Default: "1", HasDefault: true},
	Option{Name: OptAlreadyInstalledCapacity, Type: TypeNonNegative, Rule: Any(), Default: "0", HasDefault: true},
	Option{Name: OptAlreadyInstalledLinkProfile, Type: TypeText, Rule: Any(), Default: "1", HasDefault: true},
	Option{Name: OptAlreadyInstalledLinkProfileIndirect, Type: TypeText, Rule: Any(), Default: "1", HasDefault: true},
)

// Candidates returns the schema of the candidates file.
func Candidates() *Schema {
	return candidates
}
