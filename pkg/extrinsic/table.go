package extrinsic

// Table is the parsed form of an extrinsic hints configuration file.
// The consuming predictor loads it once at startup and treats it as
// read-only for the whole run; this toolkit also builds and edits
// tables before writing them back out.
type Table struct {
	// Sources is the active source list from [SOURCES], in declared order.
	Sources []string

	// Parameters holds the [SOURCE-PARAMETERS] lines in file order.
	Parameters []SourceParameter

	// Groups holds the [GROUP] identifiers in file order.
	Groups []string

	// Rows holds the [GENERAL] weight rows in file order.
	Rows []FeatureRow
}

// SourceParameter is a behavioral flag attached to one hint source,
// e.g. "E individual_liability".
type SourceParameter struct {
	Code string
	Flag string
}

// FeatureRow is one [GENERAL] line: a structural feature type, its two
// leading numeric fields, and one weight tuple per active source.
type FeatureRow struct {
	Feature string
	Bonus   float64
	Malus   float64
	Weights []SourceWeight
}

// SourceWeight is the per-source tuple of a feature row. The first
// value is the bonus slot, the second (when present) the malus slot;
// any further values are source-specific extras such as a min-length,
// slope or radius parameter. Arity varies by source: "W 1 1.002" and
// "T 2 1.5 10 1e100" are both legal.
type SourceWeight struct {
	Code   string
	Values []float64
}

// Bonus returns the bonus slot of the tuple.
func (w SourceWeight) Bonus() float64 {
	if len(w.Values) == 0 {
		return 0
	}
	return w.Values[0]
}

// Malus returns the malus slot, or 1 when the tuple carries only a
// single value (no malus means no adjustment).
func (w SourceWeight) Malus() float64 {
	if len(w.Values) < 2 {
		return 1
	}
	return w.Values[1]
}

// HasSource reports whether code is in the active source list.
func (t *Table) HasSource(code string) bool {
	for _, s := range t.Sources {
		if s == code {
			return true
		}
	}
	return false
}

// Row returns the weight row for the named feature, or nil.
func (t *Table) Row(feature string) *FeatureRow {
	for i := range t.Rows {
		if t.Rows[i].Feature == feature {
			return &t.Rows[i]
		}
	}
	return nil
}

// Weight returns the tuple for (feature, source), or nil if either is
// absent from the table.
func (t *Table) Weight(feature, code string) *SourceWeight {
	row := t.Row(feature)
	if row == nil {
		return nil
	}
	for i := range row.Weights {
		if row.Weights[i].Code == code {
			return &row.Weights[i]
		}
	}
	return nil
}

// FlagsFor returns the parameter flags declared for one source.
func (t *Table) FlagsFor(code string) []string {
	var flags []string
	for _, p := range t.Parameters {
		if p.Code == code {
			flags = append(flags, p.Flag)
		}
	}
	return flags
}
