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
	"strings"

	"github.com/xpansion-tools/xpcheck/pkg/schema"
)

// ProfileKind tags a ProfileRef.
type ProfileKind int

const (
	// NoProfile is the "0" sentinel: the attribute contributes nothing.
	NoProfile ProfileKind = iota
	// FlatProfile is the "1" sentinel: a uniform profile.
	FlatProfile
	// FileProfile names a time series file.
	FileProfile
)

// String returns the kind name.
func (k ProfileKind) String() string {
	switch k {
	case NoProfile:
		return "none"
	case FlatProfile:
		return "flat"
	case FileProfile:
		return "file"
	default:
		return fmt.Sprintf("ProfileKind(%d)", int(k))
	}
}

// Sentinel values of profile attributes.
const (
	NoProfileValue   = "0"
	FlatProfileValue = "1"
)

// ProfileAttributes are the options holding a profile reference.
var ProfileAttributes = []string{
	schema.OptLinkProfile,
	schema.OptLinkProfileIndirect,
	schema.OptAlreadyInstalledLinkProfile,
	schema.OptAlreadyInstalledLinkProfileIndirect,
}

// flagPair links a boolean flag to the profile attribute it gates.
type flagPair struct {
	flag    string
	profile string
}

var flagPairs = []flagPair{
	{flag: schema.OptHasLinkProfile, profile: schema.OptLinkProfile},
	{flag: schema.OptHasLinkProfileIndirect, profile: schema.OptLinkProfileIndirect},
}

// ProfileRef is the parsed value of a profile attribute.
type ProfileRef struct {
	Kind ProfileKind

	// Name is the logical file name, set for FileProfile only.
	Name string
}

// ParseProfileRef classifies a raw attribute value. Surrounding spaces are ignored.
func ParseProfileRef(value string) ProfileRef {
	v := strings.TrimSpace(value)
	switch v {
	case NoProfileValue:
		return ProfileRef{Kind: NoProfile}
	case FlatProfileValue:
		return ProfileRef{Kind: FlatProfile}
	default:
		return ProfileRef{Kind: FileProfile, Name: v}
	}
}

// String returns the attribute value the reference was parsed from.
func (r ProfileRef) String() string {
	switch r.Kind {
	case NoProfile:
		return NoProfileValue
	case FlatProfile:
		return FlatProfileValue
	default:
		return r.Name
	}
}
