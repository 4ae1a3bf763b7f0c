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

// Package checksum computes SHA256 digests of files.
//
// It is used to prove that a backup copy is byte-identical to the file it
// protects before that file is overwritten:
//
//	digest := checksum.Sum(original)
//	// ... write backup ...
//	if err := checksum.Verify(backupPath, digest); err != nil {
//	    return err
//	}
//
// Digests are lowercase hex, compatible with sha256sum output.
package checksum
