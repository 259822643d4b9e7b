package doctor

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

func sampleReport() *DoctorReport {
	return &DoctorReport{
		Timestamp: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		Results: []*CheckResult{
			{Name: "component-registered", Category: "component", Status: SeverityPass, Message: "registered"},
			{Name: "extended-enumeration", Category: "component", Status: SeverityWarning, Message: "no --all", FixHint: "update the installer"},
			{Name: "config-valid", Category: "config", Status: SeverityInfo, Message: "defaults in use", Details: map[string]any{"path": "/tmp/config.yaml"}},
		},
		Summary: Summary{Passed: 1, Info: 1, Warnings: 1},
	}
}

func TestReporter_Text(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	tests := []struct {
		name        string
		verbose     bool
		contains    []string
		notContains []string
	}{
		{
			name: "problems only",
			contains: []string{
				"⚠ [component] extended-enumeration: no --all",
				"  hint: update the installer",
				"Summary: 1 passed, 1 info, 1 warnings, 0 errors",
			},
			notContains: []string{"component-registered", "config-valid"},
		},
		{
			name:    "verbose",
			verbose: true,
			contains: []string{
				"✓ [component] component-registered: registered",
				"ℹ [config] config-valid: defaults in use (path=/tmp/config.yaml)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewReporter(&buf, FormatText, tt.verbose).Report(sampleReport(), nil); err != nil {
				t.Fatalf("Report() error = %v", err)
			}
			out := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.notContains {
				if strings.Contains(out, s) {
					t.Errorf("output should not contain %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestReporter_Text_Fixes(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	fixes := []FixResult{
		{Path: "/a/config.yaml", Fixed: true, Description: "wrote default configuration"},
		{Path: "/b/config.yaml", Description: "permission denied"},
	}

	var buf bytes.Buffer
	if err := NewReporter(&buf, FormatText, false).Report(sampleReport(), fixes); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	for _, s := range []string{
		"fixed /a/config.yaml: wrote default configuration",
		"not fixed /b/config.yaml: permission denied",
	} {
		if !strings.Contains(buf.String(), s) {
			t.Errorf("output missing %q:\n%s", s, buf.String())
		}
	}
}

func TestReporter_JSON(t *testing.T) {
	var buf bytes.Buffer
	fixes := []FixResult{{Path: "/a/config.yaml", Fixed: true, Description: "wrote default configuration"}}
	if err := NewReporter(&buf, FormatJSON, false).Report(sampleReport(), fixes); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	var got struct {
		Results []CheckResult `json:"results"`
		Summary Summary       `json:"summary"`
		Fixes   []FixResult   `json:"fixes"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(got.Results) != 3 || got.Results[1].Status != SeverityWarning {
		t.Errorf("results = %+v", got.Results)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"status": "warning"`)) {
		t.Errorf("status not encoded by name:\n%s", buf.String())
	}
	if got.Summary != (Summary{Passed: 1, Info: 1, Warnings: 1}) {
		t.Errorf("summary = %+v", got.Summary)
	}
	if len(got.Fixes) != 1 || !got.Fixes[0].Fixed {
		t.Errorf("fixes = %+v", got.Fixes)
	}
}

func TestReporter_NilReport(t *testing.T) {
	var buf bytes.Buffer
	if err := NewReporter(&buf, FormatText, true).Report(nil, nil); err != nil {
		t.Fatalf("Report(nil) error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Report(nil) wrote %q", buf.String())
	}
}
