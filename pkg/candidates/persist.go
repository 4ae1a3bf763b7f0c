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
	"log/slog"
	"os"

	"github.com/moby/sys/atomicwriter"

	"github.com/xpansion-tools/xpcheck/pkg/checksum"
	"github.com/xpansion-tools/xpcheck/pkg/defaults"
	"github.com/xpansion-tools/xpcheck/pkg/errors"
)

// ValidateFile loads and validates the candidates file at path. When
// sections were pruned, the file is backed up to path+".bak" and then
// replaced by the reduced document.
func (e *Engine) ValidateFile(path string) (*Result, error) {
	doc, err := Load(path)
	if err != nil {
		validationFailures.WithLabelValues(string(errors.CodeOf(err))).Inc()
		return nil, err
	}

	res, err := e.Validate(doc)
	if err != nil {
		return nil, err
	}
	if !res.Changed() {
		return res, nil
	}

	backup, err := Rewrite(path, res.Document)
	if err != nil {
		validationFailures.WithLabelValues(string(errors.CodeOf(err))).Inc()
		return nil, err
	}
	res.Backup = backup
	return res, nil
}

// Rewrite backs up the file at path byte for byte, verifies the copy, then
// atomically replaces the file with doc. The original is left untouched if
// the backup cannot be made. Returns the backup path.
func Rewrite(path string, doc *Document) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeFileAccess,
			fmt.Sprintf("cannot stat candidates file %s", path), err,
			map[string]any{"path": path})
	}
	original, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeFileAccess,
			fmt.Sprintf("cannot read candidates file %s", path), err,
			map[string]any{"path": path})
	}

	backup := path + defaults.BackupSuffix
	if err := atomicwriter.WriteFile(backup, original, defaults.FileMode); err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeFileAccess,
			fmt.Sprintf("cannot create backup file %s", backup), err,
			map[string]any{"path": backup})
	}
	if err := checksum.Verify(backup, checksum.Sum(original)); err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeFileAccess,
			fmt.Sprintf("backup file %s does not match %s", backup, path), err,
			map[string]any{"path": backup})
	}

	data, err := doc.Marshal()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, "failed to encode candidates document", err)
	}
	if err := atomicwriter.WriteFile(path, data, info.Mode().Perm()); err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeFileAccess,
			fmt.Sprintf("cannot overwrite candidates file %s", path), err,
			map[string]any{"path": path})
	}
	fileRewrites.Inc()

	slog.Info("candidates file was overwritten",
		"path", path,
		"backup", backup,
		"sections", doc.Len())

	return backup, nil
}
