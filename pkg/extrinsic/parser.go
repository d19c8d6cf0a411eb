package extrinsic

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Section header tokens.
const (
	sectionSources    = "[SOURCES]"
	sectionParameters = "[SOURCE-PARAMETERS]"
	sectionGroup      = "[GROUP]"
	sectionGeneral    = "[GENERAL]"
)

// Parse reads an extrinsic configuration file into a Table. The format
// is line oriented: "#" starts a comment, blank lines are skipped, and
// bracketed section headers switch the meaning of the following rows.
// Structural problems abort the parse with a ParseError; the predictor
// must never start a run on a half-read weight table.
func Parse(r io.Reader) (*Table, error) {
	t := &Table{}
	seen := map[string]bool{}
	section := ""
	features := map[string]int{} // feature name -> first line

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			switch line {
			case sectionSources, sectionParameters, sectionGroup, sectionGeneral:
				section = line
				seen[line] = true
			default:
				return nil, parseErrf(lineNo, ErrUnknownSection, "%s", line)
			}
			continue
		}

		switch section {
		case sectionSources:
			if err := parseSources(t, line, lineNo); err != nil {
				return nil, err
			}
		case sectionParameters:
			if err := parseParameter(t, line, lineNo); err != nil {
				return nil, err
			}
		case sectionGroup:
			if len(strings.Fields(line)) != 1 {
				return nil, parseErrf(lineNo, ErrMalformedRow, "group line must hold a single identifier: %q", line)
			}
			t.Groups = append(t.Groups, line)
		case sectionGeneral:
			row, err := parseGeneralRow(t, line, lineNo)
			if err != nil {
				return nil, err
			}
			if first, dup := features[row.Feature]; dup {
				return nil, parseErrf(lineNo, ErrDuplicateFeature, "%s already defined on line %d", row.Feature, first)
			}
			features[row.Feature] = lineNo
			t.Rows = append(t.Rows, *row)
		default:
			return nil, parseErrf(lineNo, ErrMalformedRow, "data before any section header: %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if !seen[sectionSources] {
		return nil, parseErrf(0, ErrMissingSection, "%s", sectionSources)
	}
	if !seen[sectionGeneral] {
		return nil, parseErrf(0, ErrMissingSection, "%s", sectionGeneral)
	}
	return t, nil
}

// ParseFile parses the file at path.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func parseSources(t *Table, line string, lineNo int) error {
	for _, code := range strings.Fields(line) {
		if t.HasSource(code) {
			return parseErrf(lineNo, ErrDuplicateSource, "%s", code)
		}
		t.Sources = append(t.Sources, code)
	}
	return nil
}

func parseParameter(t *Table, line string, lineNo int) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return parseErrf(lineNo, ErrMalformedRow, "want \"<source> <flag>\", got %q", line)
	}
	if len(t.Sources) == 0 {
		return parseErrf(lineNo, ErrMissingSection, "%s must precede %s", sectionSources, sectionParameters)
	}
	if !t.HasSource(fields[0]) {
		return parseErrf(lineNo, ErrUnknownSource, "%s is not declared in %s", fields[0], sectionSources)
	}
	t.Parameters = append(t.Parameters, SourceParameter{Code: fields[0], Flag: fields[1]})
	return nil
}

// parseGeneralRow parses one weight row: the feature name, two leading
// numeric fields, then one tuple per declared source in [SOURCES]
// order. Tuple arity is variable, so the next source code terminates
// the run of numbers belonging to the current one.
func parseGeneralRow(t *Table, line string, lineNo int) (*FeatureRow, error) {
	if len(t.Sources) == 0 {
		return nil, parseErrf(lineNo, ErrMissingSection, "%s must precede %s", sectionSources, sectionGeneral)
	}

	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nil, parseErrf(lineNo, ErrMalformedRow, "want \"<feature> <bonus> <malus> ...\", got %q", line)
	}
	row := &FeatureRow{Feature: fields[0]}

	var err error
	if row.Bonus, err = parseNumber(fields[1]); err != nil {
		return nil, parseErrf(lineNo, ErrMalformedRow, "%s bonus: %v", row.Feature, err)
	}
	if row.Malus, err = parseNumber(fields[2]); err != nil {
		return nil, parseErrf(lineNo, ErrMalformedRow, "%s malus: %v", row.Feature, err)
	}

	i := 3
	for _, want := range t.Sources {
		if i >= len(fields) {
			return nil, parseErrf(lineNo, ErrMalformedRow, "%s: missing tuple for source %s", row.Feature, want)
		}
		code := fields[i]
		if code != want {
			if !t.HasSource(code) {
				return nil, parseErrf(lineNo, ErrUnknownSource, "%s: %s is not declared in %s", row.Feature, code, sectionSources)
			}
			return nil, parseErrf(lineNo, ErrMalformedRow, "%s: tuple for %s where %s was expected (tuples must follow %s order)", row.Feature, code, want, sectionSources)
		}
		i++

		w := SourceWeight{Code: code}
		for i < len(fields) {
			v, err := parseNumber(fields[i])
			if err != nil {
				break
			}
			w.Values = append(w.Values, v)
			i++
		}
		if len(w.Values) == 0 {
			return nil, parseErrf(lineNo, ErrMalformedRow, "%s: source %s has no numeric fields", row.Feature, code)
		}
		row.Weights = append(row.Weights, w)
	}
	if i != len(fields) {
		// Leftover numerics would have been absorbed by the last tuple,
		// so anything here is a code outside the declared source list.
		return nil, parseErrf(lineNo, ErrUnknownSource, "%s: %s is not declared in %s", row.Feature, fields[i], sectionSources)
	}
	return row, nil
}

func parseNumber(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", tok)
	}
	return v, nil
}
