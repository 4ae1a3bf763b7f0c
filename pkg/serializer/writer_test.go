package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type TestHeader struct {
	Kind string `json:"kind"`
}

type testReport struct {
	TestHeader `json:",inline"`
	Status     string        `json:"status"`
	Checks     []testConfig  `json:"checks"`
	Duration   time.Duration `json:"duration"`
	Internal   string        `json:"-"`
	hidden     string
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{{Name: "a", Value: 1}, {Name: "b", Value: 2}}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if len(result) != 2 || result[1].Name != "b" {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	if err := writer.Serialize(context.Background(), testConfig{Name: "a", Value: 7}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testConfig
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if result.Value != 7 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := testReport{
		TestHeader: TestHeader{Kind: "StudyReport"},
		Status:     "fail",
		Checks:     []testConfig{{Name: "candidates", Value: 1}},
		Duration:   1500 * time.Millisecond,
		Internal:   "secret",
		hidden:     "hidden",
	}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{"FIELD", "VALUE", "kind", "StudyReport", "checks.[0].name", "candidates", "1.5s"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in table output:\n%s", want, output)
		}
	}
	for _, unwanted := range []string{"TestHeader", "secret", "hidden"} {
		if strings.Contains(output, unwanted) {
			t.Errorf("unexpected %q in table output:\n%s", unwanted, output)
		}
	}
}

func TestWriter_SerializeTable_EmptyData(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), []testConfig{}); err != nil {
		t.Fatalf("Serialize empty slice failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<empty>") {
		t.Errorf("Expected '<empty>' in output, got: %s", buf.String())
	}
}

func TestWriter_SerializeTable_NilValues(t *testing.T) {
	type withNil struct {
		Name  string
		Error *testConfig
	}
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), withNil{Name: "x"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Error") {
		t.Error("Expected nil field in output")
	}
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)
	if err := writer.Serialize(context.Background(), testConfig{Name: "a"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	var result testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("expected JSON fallback: %v", err)
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format("xml"), true},
		{Format(""), true},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := tt.format.IsUnknown(); got != tt.want {
				t.Errorf("Format(%q).IsUnknown() = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"report.json", FormatJSON},
		{"REPORT.YML", FormatYAML},
		{"report.yaml", FormatYAML},
		{"report.txt", FormatTable},
		{"report.table", FormatTable},
		{"report", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	for _, path := range []string{"", "  ", "\t"} {
		w, err := NewFileWriterOrStdout(FormatJSON, path)
		if err != nil {
			t.Fatalf("unexpected error for blank path %q: %v", path, err)
		}
		if err := w.Close(); err != nil {
			t.Errorf("Close failed for stdout writer: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "report.json")
	w, err := NewFileWriterOrStdout(FormatJSON, path)
	if err != nil {
		t.Fatalf("NewFileWriterOrStdout failed: %v", err)
	}
	if err := w.Serialize(context.Background(), testConfig{Name: "a", Value: 3}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close should not error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	var result testConfig
	if err := json.Unmarshal(content, &result); err != nil {
		t.Fatalf("Failed to unmarshal file content: %v", err)
	}
	if result.Value != 3 {
		t.Errorf("Unexpected data in file: %+v", result)
	}
}

func TestNewFileWriter_InvalidPath(t *testing.T) {
	if _, err := NewFileWriter(FormatJSON, filepath.Join(t.TempDir(), "missing", "r.json")); err == nil {
		t.Error("expected error for missing directory")
	}
}
