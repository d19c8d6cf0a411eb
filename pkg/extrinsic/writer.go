package extrinsic

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Write renders the table in canonical form: sources in declared order,
// feature rows in canonical order when every feature is a known one,
// columns aligned. Parsing the output yields an equivalent table.
func (t *Table) Write(w io.Writer) error {
	var b strings.Builder

	b.WriteString("# Extrinsic hint configuration.\n")
	b.WriteString("# Source codes:\n")
	for _, code := range t.Sources {
		if desc, ok := SourceDescriptions[code]; ok {
			fmt.Fprintf(&b, "#   %-2s  %s\n", code, desc)
		}
	}
	b.WriteString("\n[SOURCES]\n")
	b.WriteString(strings.Join(t.Sources, " "))
	b.WriteString("\n")

	if len(t.Parameters) > 0 {
		b.WriteString("\n[SOURCE-PARAMETERS]\n")
		for _, p := range t.Parameters {
			fmt.Fprintf(&b, "%s %s\n", p.Code, p.Flag)
		}
	}

	if len(t.Groups) > 0 {
		b.WriteString("\n[GROUP]\n")
		for _, g := range t.Groups {
			b.WriteString(g)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n[GENERAL]\n")
	writeRows(&b, canonicalRows(t.Rows))

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFile writes the canonical form to path.
func (t *Table) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if err := t.Write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// String returns the canonical text form.
func (t *Table) String() string {
	var b strings.Builder
	_ = t.Write(&b)
	return b.String()
}

// canonicalRows sorts rows into the canonical feature order when every
// feature is a known one; a table with custom features keeps its input
// order.
func canonicalRows(rows []FeatureRow) []FeatureRow {
	out := make([]FeatureRow, len(rows))
	copy(out, rows)
	for _, r := range out {
		if !KnownFeature(r.Feature) {
			return out
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return featureRank[out[i].Feature] < featureRank[out[j].Feature]
	})
	return out
}

// writeRows lays the weight rows out on a padded grid. Tuple arity may
// differ between sources, so alignment is per column, taking the widest
// cell in each.
func writeRows(b *strings.Builder, rows []FeatureRow) {
	cells := make([][]string, len(rows))
	var widths []int
	for i, r := range rows {
		row := []string{r.Feature, FormatNumber(r.Bonus), FormatNumber(r.Malus)}
		for _, w := range r.Weights {
			parts := make([]string, 0, len(w.Values)+1)
			parts = append(parts, w.Code)
			for _, v := range w.Values {
				parts = append(parts, FormatNumber(v))
			}
			row = append(row, strings.Join(parts, " "))
		}
		cells[i] = row
		for j, c := range row {
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			if len(c) > widths[j] {
				widths[j] = len(c)
			}
		}
	}

	for _, row := range cells {
		for j, c := range row {
			if j > 0 {
				b.WriteString("  ")
			}
			if j == 0 {
				fmt.Fprintf(b, "%*s", widths[j], c)
			} else if j == len(row)-1 {
				b.WriteString(c)
			} else {
				fmt.Fprintf(b, "%-*s", widths[j], c)
			}
		}
		b.WriteString("\n")
	}
}

// FormatNumber renders a weight value the way the config files spell
// them: shortest decimal form, scientific notation for the huge malus
// sentinels (1e+100).
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
