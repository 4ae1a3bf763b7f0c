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

// Package defaults provides centralized constants for xpcheck.
//
// Values are grouped by concern:
//
//   - Time series shape: profile row count, size cap for series files
//   - Input file handling: size cap, backup suffix, file mode
//   - Study layout: where candidates, settings and capacity files live
//   - Watch mode: debounce period
//
// # Usage
//
//	import "github.com/xpansion-tools/xpcheck/pkg/defaults"
//
//	if rows != defaults.ProfileRows {
//	    // ...
//	}
package defaults
