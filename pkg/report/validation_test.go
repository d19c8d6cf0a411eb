package report

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/seqweaver/hintcfg/pkg/extrinsic"
)

func TestAddErrorFromParseError(t *testing.T) {
	rec := NewValidation("broken.cfg")

	_, err := extrinsic.Parse(strings.NewReader("[SOURCES]\nM E\n[GENERAL]\nstart 1 1 M 1 1 W 1 1\n"))
	if err == nil {
		t.Fatal("Expected a parse error")
	}
	rec.AddError(err)
	rec.Finish(nil)

	if len(rec.Findings) != 1 {
		t.Fatalf("Expected 1 finding, got %d", len(rec.Findings))
	}
	f := rec.Findings[0]
	if f.Severity != SeverityError {
		t.Errorf("Expected error severity, got %s", f.Severity)
	}
	if f.Line != 4 {
		t.Errorf("Expected line 4, got %d", f.Line)
	}
	if f.Kind != "unknown source code" {
		t.Errorf("Expected unknown source code kind, got %q", f.Kind)
	}
	if rec.Passed {
		t.Error("Record with an error finding must not pass")
	}
}

func TestFinishRecordsStats(t *testing.T) {
	rec := NewValidation("ok.cfg")

	table, err := extrinsic.Parse(strings.NewReader("[SOURCES]\nM W\n[GENERAL]\nstart 1 1 M 1 1e+100 W 1 1\n"))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	for _, p := range table.Lint() {
		rec.AddWarning(p)
	}
	rec.Finish(table)

	if !rec.Passed {
		t.Error("Warnings alone must not fail a record")
	}
	if rec.Stats.Sources != 2 || rec.Stats.Rows != 1 {
		t.Errorf("Unexpected stats %+v", rec.Stats)
	}
	if rec.Count(SeverityWarning) == 0 {
		t.Error("Expected lint warnings for the sparse table")
	}
	if rec.Count(SeverityError) != 0 {
		t.Errorf("Expected no errors, got %d", rec.Count(SeverityError))
	}
}

func TestRender(t *testing.T) {
	color.NoColor = true
	rec := NewValidation("ok.cfg")
	rec.AddWarning(extrinsic.Problem{Subject: "X", Message: "source code is not one the predictor documents"})
	rec.Finish(&extrinsic.Table{Sources: []string{"M"}})

	var buf bytes.Buffer
	rec.Render(&buf)
	out := buf.String()

	if !strings.Contains(out, "ok.cfg") {
		t.Errorf("Render output misses the file name:\n%s", out)
	}
	if !strings.Contains(out, "warning") {
		t.Errorf("Render output misses the warning:\n%s", out)
	}
	if !strings.Contains(out, "ok") {
		t.Errorf("Render output misses the pass marker:\n%s", out)
	}
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	rec := NewValidation("ok.cfg")
	rec.Finish(nil)

	path, err := rec.WriteJSON(dir)
	if err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	var loaded Validation
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Report is not valid JSON: %v", err)
	}
	if loaded.ID != rec.ID {
		t.Errorf("Expected report ID %s, got %s", rec.ID, loaded.ID)
	}
	if !strings.Contains(path, rec.ID) {
		t.Errorf("Report file name %s does not carry the record ID", path)
	}
}
