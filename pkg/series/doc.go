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

// Package series validates the numeric time-series files referenced by the
// candidates and settings files.
//
// A profile file holds exactly 8760 hourly values, one per line, each a
// non-negative number. A profile whose values are all zero is a null profile:
// valid, but equivalent to having no profile at all.
//
// A yearly weights file holds one non-negative value per line and must sum to
// a strictly positive number.
//
// Failures are structured errors: FILE_ACCESS when the file is missing or
// unreadable, VALUE when its content is malformed (with the 1-based line).
package series
