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

// Package serializer writes xpcheck reports in JSON, YAML, or table form.
//
//   - JSON: indented, for machines
//   - YAML: the default, for people and CI logs
//   - Table: one FIELD/VALUE row per leaf, keys flattened with dots
//
// Usage:
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, outputPath)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, rep); err != nil {
//	    return err
//	}
//
// FormatFromPath picks a format from an output file extension when none was
// given explicitly. Table keys follow the json field tags, so a report's
// failure code appears as checks.[0].error.code.
package serializer
