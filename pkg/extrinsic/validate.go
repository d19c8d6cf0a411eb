package extrinsic

import "fmt"

// Validate re-checks the structural invariants of a table. Parse
// enforces all of this against the raw file; Validate exists for tables
// assembled or edited in memory before they are written out.
func (t *Table) Validate() error {
	if len(t.Sources) == 0 {
		return parseErrf(0, ErrMissingSection, "%s", sectionSources)
	}

	seen := map[string]bool{}
	for _, code := range t.Sources {
		if seen[code] {
			return parseErrf(0, ErrDuplicateSource, "%s", code)
		}
		seen[code] = true
	}

	for _, p := range t.Parameters {
		if !seen[p.Code] {
			return parseErrf(0, ErrUnknownSource, "source parameter %s %s", p.Code, p.Flag)
		}
	}

	features := map[string]bool{}
	for _, r := range t.Rows {
		if features[r.Feature] {
			return parseErrf(0, ErrDuplicateFeature, "%s", r.Feature)
		}
		features[r.Feature] = true

		if len(r.Weights) != len(t.Sources) {
			return parseErrf(0, ErrMalformedRow, "%s: %d source tuples for %d declared sources", r.Feature, len(r.Weights), len(t.Sources))
		}
		for i, w := range r.Weights {
			if w.Code != t.Sources[i] {
				return parseErrf(0, ErrMalformedRow, "%s: tuple %d is for %s, want %s", r.Feature, i+1, w.Code, t.Sources[i])
			}
			if len(w.Values) == 0 {
				return parseErrf(0, ErrMalformedRow, "%s: source %s has no numeric fields", r.Feature, w.Code)
			}
		}
	}
	return nil
}

// Problem is a non-fatal finding from Lint. Strict consumers may treat
// these as errors.
type Problem struct {
	Subject string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Subject, p.Message)
}

// Lint reports conditions a valid file can still get wrong in practice:
// codes and flags the predictor does not document, canonical features
// with no weight row, and negative weight values.
func (t *Table) Lint() []Problem {
	var problems []Problem

	for _, code := range t.Sources {
		if !KnownSource(code) {
			problems = append(problems, Problem{
				Subject: code,
				Message: "source code is not one the predictor documents",
			})
		}
	}

	for _, p := range t.Parameters {
		if _, ok := KnownFlags[p.Flag]; !ok {
			problems = append(problems, Problem{
				Subject: p.Code,
				Message: fmt.Sprintf("unknown source parameter %q", p.Flag),
			})
		}
	}

	covered := map[string]bool{}
	for _, r := range t.Rows {
		covered[r.Feature] = true
		if !KnownFeature(r.Feature) {
			problems = append(problems, Problem{
				Subject: r.Feature,
				Message: "feature type is not one the predictor documents",
			})
		}
		for _, w := range r.Weights {
			for _, v := range w.Values {
				if v < 0 {
					problems = append(problems, Problem{
						Subject: r.Feature,
						Message: fmt.Sprintf("source %s carries a negative value %s", w.Code, FormatNumber(v)),
					})
					break
				}
			}
		}
	}
	for _, f := range Features {
		if !covered[f] {
			problems = append(problems, Problem{
				Subject: f,
				Message: "no weight row for this feature type",
			})
		}
	}
	return problems
}
