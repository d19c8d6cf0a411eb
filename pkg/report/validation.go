package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/seqweaver/hintcfg/pkg/extrinsic"
)

// Severity of a finding.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Finding is one problem surfaced while checking a config file.
type Finding struct {
	Severity string `json:"severity"`
	Line     int    `json:"line,omitempty"`
	Kind     string `json:"kind,omitempty"`
	Message  string `json:"message"`
}

// Stats summarizes the parsed table.
type Stats struct {
	Sources    int `json:"sources"`
	Parameters int `json:"parameters"`
	Groups     int `json:"groups"`
	Rows       int `json:"rows"`
}

// Validation is the record of one validation run over one file.
type Validation struct {
	ID         string    `json:"id"`
	File       string    `json:"file"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Sources    []string  `json:"sources,omitempty"`
	Stats      Stats     `json:"stats"`
	Findings   []Finding `json:"findings"`
	Passed     bool      `json:"passed"`
}

// Color definitions
var (
	colorError   = color.New(color.FgRed, color.Bold)
	colorWarning = color.New(color.FgYellow)
	colorPass    = color.New(color.FgGreen)
	colorFile    = color.New(color.FgCyan, color.Bold)
	colorDim     = color.New(color.FgHiBlack)
)

// NewValidation starts a validation record for one file.
func NewValidation(file string) *Validation {
	return &Validation{
		ID:        uuid.New().String(),
		File:      file,
		StartedAt: time.Now(),
	}
}

// AddError records an error finding from a load failure. Parse errors
// contribute their line number and taxonomy kind.
func (v *Validation) AddError(err error) {
	f := Finding{Severity: SeverityError, Message: err.Error()}
	var pe *extrinsic.ParseError
	if errors.As(err, &pe) {
		f.Line = pe.Line
		f.Kind = pe.Kind.Error()
		f.Message = pe.Msg
	}
	v.Findings = append(v.Findings, f)
}

// AddWarning records a lint finding.
func (v *Validation) AddWarning(p extrinsic.Problem) {
	v.Findings = append(v.Findings, Finding{
		Severity: SeverityWarning,
		Message:  p.String(),
	})
}

// Count returns the number of findings at the given severity.
func (v *Validation) Count(severity string) int {
	n := 0
	for _, f := range v.Findings {
		if f.Severity == severity {
			n++
		}
	}
	return n
}

// Finish closes the record, filling the table statistics when the file
// parsed at all.
func (v *Validation) Finish(t *extrinsic.Table) {
	v.FinishedAt = time.Now()
	v.Passed = v.Count(SeverityError) == 0
	if t != nil {
		v.Sources = t.Sources
		v.Stats = Stats{
			Sources:    len(t.Sources),
			Parameters: len(t.Parameters),
			Groups:     len(t.Groups),
			Rows:       len(t.Rows),
		}
	}
}

// Render prints the record for a terminal.
func (v *Validation) Render(w io.Writer) {
	_, _ = colorFile.Fprintln(w, v.File)
	for _, f := range v.Findings {
		c := colorWarning
		if f.Severity == SeverityError {
			c = colorError
		}
		loc := ""
		if f.Line > 0 {
			loc = fmt.Sprintf("line %d: ", f.Line)
		}
		kind := ""
		if f.Kind != "" {
			kind = f.Kind + ": "
		}
		_, _ = fmt.Fprintf(w, "  %s %s%s%s\n", c.Sprint(f.Severity), colorDim.Sprint(loc), kind, f.Message)
	}
	if v.Passed {
		_, _ = fmt.Fprintf(w, "  %s %d sources, %d weight rows\n",
			colorPass.Sprint("ok"), v.Stats.Sources, v.Stats.Rows)
	} else {
		_, _ = fmt.Fprintf(w, "  %s %d error(s), %d warning(s)\n",
			colorError.Sprint("failed"), v.Count(SeverityError), v.Count(SeverityWarning))
	}
}

// WriteJSON writes the record to dir as hintcfg-<id>.json and returns
// the path.
func (v *Validation) WriteJSON(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}
	path := filepath.Join(dir, "hintcfg-"+v.ID+".json")

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
