package extrinsic

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const sampleConfig = `# test table
[SOURCES]
M RM E W T

[SOURCE-PARAMETERS]
E individual_liability

[GROUP]
clone42

[GENERAL]
start     1 1     M 1 1e+100  RM 1 1  E 1 1  W 1 1      T 1e3 1
exonpart  1 .992  M 1 1e+100  RM 1 1  E 1 1  W 1 1.002  T 2 1.5 10 1e100
`

func parseSample(t *testing.T) *Table {
	t.Helper()
	table, err := Parse(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("Failed to parse sample config: %v", err)
	}
	return table
}

func TestParseSources(t *testing.T) {
	table := parseSample(t)

	want := []string{"M", "RM", "E", "W", "T"}
	if !reflect.DeepEqual(table.Sources, want) {
		t.Errorf("Expected sources %v, got %v", want, table.Sources)
	}
}

func TestParseSourceParameters(t *testing.T) {
	table := parseSample(t)

	if len(table.Parameters) != 1 {
		t.Fatalf("Expected 1 source parameter, got %d", len(table.Parameters))
	}
	p := table.Parameters[0]
	if p.Code != "E" || p.Flag != "individual_liability" {
		t.Errorf("Unexpected source parameter: %+v", p)
	}

	flags := table.FlagsFor("E")
	if len(flags) != 1 || flags[0] != "individual_liability" {
		t.Errorf("FlagsFor(E) = %v", flags)
	}
}

func TestParseGroups(t *testing.T) {
	table := parseSample(t)

	if len(table.Groups) != 1 || table.Groups[0] != "clone42" {
		t.Errorf("Expected group clone42, got %v", table.Groups)
	}
}

func TestParseExonpartRow(t *testing.T) {
	table := parseSample(t)

	row := table.Row("exonpart")
	if row == nil {
		t.Fatal("exonpart row not found")
	}
	if row.Bonus != 1 {
		t.Errorf("Expected exonpart bonus 1, got %v", row.Bonus)
	}
	if row.Malus != 0.992 {
		t.Errorf("Expected exonpart malus 0.992, got %v", row.Malus)
	}
	if len(row.Weights) != 5 {
		t.Fatalf("Expected 5 source tuples, got %d", len(row.Weights))
	}

	w := table.Weight("exonpart", "W")
	if w == nil {
		t.Fatal("exonpart W tuple not found")
	}
	if w.Malus() != 1.002 {
		t.Errorf("Expected W malus slot 1.002, got %v", w.Malus())
	}

	tw := table.Weight("exonpart", "T")
	if tw == nil {
		t.Fatal("exonpart T tuple not found")
	}
	want := []float64{2, 1.5, 10, 1e100}
	if !reflect.DeepEqual(tw.Values, want) {
		t.Errorf("Expected T tuple %v, got %v", want, tw.Values)
	}
}

func TestWeightAccessors(t *testing.T) {
	single := SourceWeight{Code: "M", Values: []float64{2}}
	if single.Bonus() != 2 {
		t.Errorf("Bonus() = %v, want 2", single.Bonus())
	}
	if single.Malus() != 1 {
		t.Errorf("Single-value tuple Malus() = %v, want neutral 1", single.Malus())
	}
}

func TestMissingGeneralSection(t *testing.T) {
	input := "[SOURCES]\nM E\n"
	_, err := Parse(strings.NewReader(input))
	if !errors.Is(err, ErrMissingSection) {
		t.Errorf("Expected missing-section error, got %v", err)
	}
}

func TestMissingSourcesSection(t *testing.T) {
	input := "[GENERAL]\nstart 1 1 M 1 1\n"
	_, err := Parse(strings.NewReader(input))
	if !errors.Is(err, ErrMissingSection) {
		t.Errorf("Expected missing-section error, got %v", err)
	}
}

func TestUnknownSourceInRow(t *testing.T) {
	input := `[SOURCES]
M E
[GENERAL]
start 1 1 M 1 1e+100 E 1 1 W 1 1
`
	_, err := Parse(strings.NewReader(input))
	if !errors.Is(err, ErrUnknownSource) {
		t.Errorf("Expected unknown-source error, got %v", err)
	}
}

func TestUnknownSourceInParameters(t *testing.T) {
	input := `[SOURCES]
M E
[SOURCE-PARAMETERS]
W 1group1gene
[GENERAL]
start 1 1 M 1 1 E 1 1
`
	_, err := Parse(strings.NewReader(input))
	if !errors.Is(err, ErrUnknownSource) {
		t.Errorf("Expected unknown-source error, got %v", err)
	}
}

func TestMissingTuple(t *testing.T) {
	input := `[SOURCES]
M E W
[GENERAL]
start 1 1 M 1 1e+100 E 1 1
`
	_, err := Parse(strings.NewReader(input))
	if !errors.Is(err, ErrMalformedRow) {
		t.Errorf("Expected malformed-row error, got %v", err)
	}
}

func TestTuplesOutOfOrder(t *testing.T) {
	input := `[SOURCES]
M E
[GENERAL]
start 1 1 E 1 1 M 1 1e+100
`
	_, err := Parse(strings.NewReader(input))
	if !errors.Is(err, ErrMalformedRow) {
		t.Errorf("Expected malformed-row error, got %v", err)
	}
}

func TestNonNumericWeight(t *testing.T) {
	input := `[SOURCES]
M
[GENERAL]
start 1 high M 1 1
`
	_, err := Parse(strings.NewReader(input))
	if !errors.Is(err, ErrMalformedRow) {
		t.Errorf("Expected malformed-row error, got %v", err)
	}
}

func TestDuplicateFeatureRow(t *testing.T) {
	input := `[SOURCES]
M
[GENERAL]
start 1 1 M 1 1
start 1 1 M 1 1
`
	_, err := Parse(strings.NewReader(input))
	if !errors.Is(err, ErrDuplicateFeature) {
		t.Errorf("Expected duplicate-feature error, got %v", err)
	}
}

func TestDuplicateSourceCode(t *testing.T) {
	input := "[SOURCES]\nM E M\n[GENERAL]\n"
	_, err := Parse(strings.NewReader(input))
	if !errors.Is(err, ErrDuplicateSource) {
		t.Errorf("Expected duplicate-source error, got %v", err)
	}
}

func TestUnknownSectionHeader(t *testing.T) {
	input := "[SOURCES]\nM\n[WEIGHTS]\n"
	_, err := Parse(strings.NewReader(input))
	if !errors.Is(err, ErrUnknownSection) {
		t.Errorf("Expected unknown-section error, got %v", err)
	}
}

func TestDataBeforeSection(t *testing.T) {
	input := "M E\n[SOURCES]\nM E\n[GENERAL]\n"
	_, err := Parse(strings.NewReader(input))
	if !errors.Is(err, ErrMalformedRow) {
		t.Errorf("Expected malformed-row error, got %v", err)
	}
}

func TestParseErrorCarriesLine(t *testing.T) {
	input := `[SOURCES]
M E
[GENERAL]
start 1 1 M 1 1e+100 E 1 1
stop 1 1 M 1 1e+100 W 1 1
`
	_, err := Parse(strings.NewReader(input))

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected a ParseError, got %v", err)
	}
	if pe.Line != 5 {
		t.Errorf("Expected error on line 5, got line %d", pe.Line)
	}
}

func TestTrailingComments(t *testing.T) {
	input := `[SOURCES]
M E  # active sources

[GENERAL]
start 1 1 M 1 1e+100 E 1 1  # starts are trusted
`
	table, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to parse commented config: %v", err)
	}
	if len(table.Sources) != 2 {
		t.Errorf("Expected 2 sources, got %v", table.Sources)
	}
	if len(table.Rows) != 1 {
		t.Errorf("Expected 1 row, got %d", len(table.Rows))
	}
}
