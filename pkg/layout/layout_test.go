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

package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xpansion-tools/xpcheck/pkg/errors"
)

func writeLayout(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFromStudy(t *testing.T) {
	root := filepath.Join("/data", "study")
	exp := filepath.Join(root, "user", "expansion")

	want := &Layout{
		Root:        root,
		Candidates:  filepath.Join(exp, "candidates.ini"),
		Settings:    filepath.Join(exp, "settings.ini"),
		CapacityDir: filepath.Join(exp, "capa"),
		WeightsDir:  filepath.Join(exp, "capa"),
	}
	got := FromStudy(root)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromStudy() mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, got.Validate())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		check    func(t *testing.T, dir string, l *Layout)
		wantCode errors.ErrorCode
	}{
		{
			name:    "yaml with relative paths",
			file:    "layout.yaml",
			content: "candidates: in/candidates.ini\nsettings: in/settings.ini\ncapacityDir: in/capa\n",
			check: func(t *testing.T, dir string, l *Layout) {
				assert.Equal(t, filepath.Join(dir, "in", "candidates.ini"), l.Candidates)
				assert.Equal(t, filepath.Join(dir, "in", "settings.ini"), l.Settings)
				assert.Equal(t, filepath.Join(dir, "in", "capa"), l.CapacityDir)
				assert.Equal(t, l.CapacityDir, l.WeightsDir)
			},
		},
		{
			name:    "toml with weights dir",
			file:    "layout.toml",
			content: "candidates = \"/abs/candidates.ini\"\nsettings = \"settings.ini\"\ncapacityDir = \"capa\"\nweightsDir = \"weights\"\n",
			check: func(t *testing.T, dir string, l *Layout) {
				assert.Equal(t, "/abs/candidates.ini", l.Candidates)
				assert.Equal(t, filepath.Join(dir, "weights"), l.WeightsDir)
			},
		},
		{
			name:    "root fills the rest",
			file:    "layout.yml",
			content: "root: study\nsettings: custom.ini\n",
			check: func(t *testing.T, dir string, l *Layout) {
				exp := filepath.Join(dir, "study", "user", "expansion")
				assert.Equal(t, filepath.Join(exp, "candidates.ini"), l.Candidates)
				assert.Equal(t, filepath.Join(dir, "custom.ini"), l.Settings)
				assert.Equal(t, filepath.Join(exp, "capa"), l.CapacityDir)
			},
		},
		{
			name:     "missing field",
			file:     "layout.yaml",
			content:  "candidates: c.ini\ncapacityDir: capa\n",
			wantCode: errors.ErrCodeInvalidRequest,
		},
		{
			name:     "empty file",
			file:     "layout.yaml",
			content:  "",
			wantCode: errors.ErrCodeInvalidRequest,
		},
		{
			name:     "unknown yaml field",
			file:     "layout.yaml",
			content:  "candidates: c.ini\nsettings: s.ini\ncapacityDir: capa\nsolver: cbc\n",
			wantCode: errors.ErrCodeInvalidRequest,
		},
		{
			name:     "malformed toml",
			file:     "layout.toml",
			content:  "candidates = \n",
			wantCode: errors.ErrCodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeLayout(t, tt.file, tt.content)
			l, err := Load(path)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.CodeOf(err))
				assert.False(t, errors.IsValidation(err))
				return
			}
			require.NoError(t, err)
			tt.check(t, filepath.Dir(path), l)
		})
	}
}

func TestLoad_MissingFieldsNamed(t *testing.T) {
	path := writeLayout(t, "layout.yaml", "candidates: c.ini\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Settings")
	assert.Contains(t, err.Error(), "CapacityDir")
}

func TestLoad_NoFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "layout.yaml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
}

func TestResolvers(t *testing.T) {
	l := &Layout{CapacityDir: "/s/capa", WeightsDir: "/s/weights"}

	assert.Equal(t, filepath.Join("/s/capa", "peak.txt"), l.CapacityFile("peak.txt"))
	assert.Equal(t, "/other/peak.txt", l.CapacityFile("/other/peak.txt"))
	assert.Equal(t, filepath.Join("/s/weights", "w.txt"), l.WeightsFile("w.txt"))
}

func TestFiles(t *testing.T) {
	l := FromStudy("/s")
	assert.Equal(t, []string{l.Candidates, l.Settings}, l.Files())
}
