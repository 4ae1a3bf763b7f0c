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

package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/xpansion-tools/xpcheck/pkg/errors"
)

// APIVersion is the API version of reports.
const APIVersion = "xpcheck.io/v1alpha1"

// Kind is the type of report.
type Kind string

// Report kinds, one per command.
const (
	KindCandidatesReport Kind = "CandidatesReport"
	KindSettingsReport   Kind = "SettingsReport"
	KindStudyReport      Kind = "StudyReport"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindCandidatesReport, KindSettingsReport, KindStudyReport:
		return true
	default:
		return false
	}
}

// Header identifies a report.
type Header struct {
	// Kind is the type of the report.
	Kind Kind `json:"kind" yaml:"kind"`

	// APIVersion is the schema version of the report.
	APIVersion string `json:"apiVersion" yaml:"apiVersion"`

	// Metadata holds the creation timestamp and tool version.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init sets kind and API version and stamps the metadata.
func (h *Header) Init(kind Kind, version string) {
	h.Kind = kind
	h.APIVersion = APIVersion
	h.Metadata = map[string]string{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if version != "" {
		h.Metadata["version"] = version
	}
}

// Status is the outcome of a check or of a whole run.
type Status string

const (
	// StatusPass indicates the input was accepted, possibly after pruning.
	StatusPass Status = "pass"

	// StatusFail indicates the input was rejected.
	StatusFail Status = "fail"
)

// Pruned identifies a candidate removed from the candidates file.
type Pruned struct {
	Section string `json:"section" yaml:"section"`
	Name    string `json:"name" yaml:"name"`
}

// Diagnostic describes why an input was rejected.
type Diagnostic struct {
	Code    string         `json:"code" yaml:"code"`
	Message string         `json:"message" yaml:"message"`
	Context map[string]any `json:"context,omitempty" yaml:"context,omitempty"`
}

// Check is the outcome of validating one input file.
type Check struct {
	// Name is the checked input, "candidates" or "settings".
	Name string `json:"name" yaml:"name"`

	// Source is the checked file.
	Source string `json:"source" yaml:"source"`

	Status Status `json:"status" yaml:"status"`

	// Pruned lists candidates removed from the file.
	Pruned []Pruned `json:"pruned,omitempty" yaml:"pruned,omitempty"`

	// Backup is the copy of the file made before it was rewritten.
	Backup string `json:"backup,omitempty" yaml:"backup,omitempty"`

	Error *Diagnostic `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the outcome of one command run.
type Report struct {
	Header `json:",inline" yaml:",inline"`

	// RunID uniquely identifies the run.
	RunID string `json:"runId" yaml:"runId"`

	Status Status `json:"status" yaml:"status"`

	Checks []Check `json:"checks" yaml:"checks"`

	Duration time.Duration `json:"duration" yaml:"duration"`

	start time.Time
}

// New starts a report of the given kind.
func New(kind Kind, version string) *Report {
	r := &Report{
		RunID:  uuid.NewString(),
		Status: StatusPass,
		Checks: make([]Check, 0, 2),
		start:  time.Now(),
	}
	r.Init(kind, version)
	return r
}

// Pass records an accepted input.
func (r *Report) Pass(name, source string, pruned []Pruned, backup string) {
	r.Checks = append(r.Checks, Check{
		Name:   name,
		Source: source,
		Status: StatusPass,
		Pruned: pruned,
		Backup: backup,
	})
}

// Fail records a rejected input and marks the run failed.
func (r *Report) Fail(name, source string, err error) {
	r.Checks = append(r.Checks, Check{
		Name:   name,
		Source: source,
		Status: StatusFail,
		Error:  Diagnose(err),
	})
	r.Status = StatusFail
}

// Finish records the run duration.
func (r *Report) Finish() *Report {
	r.Duration = time.Since(r.start)
	return r
}

// Passed reports whether every check passed.
func (r *Report) Passed() bool {
	return r.Status == StatusPass
}

// Diagnose converts an error into a Diagnostic.
func Diagnose(err error) *Diagnostic {
	if err == nil {
		return nil
	}
	se, ok := errors.As(err)
	if !ok {
		return &Diagnostic{Code: string(errors.ErrCodeInternal), Message: err.Error()}
	}
	d := &Diagnostic{Code: string(se.Code), Message: se.Message}
	if se.Cause != nil {
		d.Message = se.Message + ": " + se.Cause.Error()
	}
	if len(se.Context) > 0 {
		d.Context = make(map[string]any, len(se.Context))
		for k, v := range se.Context {
			d.Context[k] = v
		}
	}
	return d
}
