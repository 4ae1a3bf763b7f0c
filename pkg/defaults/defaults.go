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

package defaults

import "time"

// Time series shape.
const (
	// ProfileRows is the number of hourly values in a yearly profile.
	ProfileRows = 8760

	// SeriesMaxFileSize caps the size of profile and weights files read into memory.
	SeriesMaxFileSize = 4 << 20
)

// Input file handling.
const (
	// InputMaxFileSize caps the size of candidates and settings files.
	InputMaxFileSize = 1 << 20

	// BackupSuffix is appended to the candidates file name for the pre-rewrite copy.
	BackupSuffix = ".bak"

	// FileMode is the permission used when creating backup files.
	FileMode = 0o644
)

// Study layout, relative to the study root.
const (
	// ExpansionDir holds the expansion inputs inside a study.
	ExpansionDir = "user/expansion"

	// CandidatesFileName is the default candidates file name.
	CandidatesFileName = "candidates.ini"

	// SettingsFileName is the default settings file name.
	SettingsFileName = "settings.ini"

	// CapacityDirName is the directory holding profile files.
	CapacityDirName = "capa"

	// WeightsDirName is the directory holding yearly weights files.
	WeightsDirName = "capa"
)

// Watch mode.
const (
	// WatchDebounce is the quiet period after the last file event before a re-check.
	WatchDebounce = 500 * time.Millisecond
)
