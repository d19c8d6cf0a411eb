package profile

import "github.com/seqweaver/hintcfg/pkg/extrinsic"

// WithSources derives a new table from base covering exactly the given
// sources, in the given order. Tuples present in base are carried over;
// sources base never mentions get the neutral tuple (manual hints get
// the usual 1e+100 bonus). Parameter flags for dropped sources are
// dropped with them.
func WithSources(base *extrinsic.Table, sources []string) *extrinsic.Table {
	t := &extrinsic.Table{Sources: append([]string(nil), sources...)}

	keep := map[string]bool{}
	for _, code := range sources {
		keep[code] = true
	}
	for _, p := range base.Parameters {
		if keep[p.Code] {
			t.Parameters = append(t.Parameters, p)
		}
	}
	t.Groups = append(t.Groups, base.Groups...)

	for _, row := range base.Rows {
		derived := extrinsic.FeatureRow{
			Feature: row.Feature,
			Bonus:   row.Bonus,
			Malus:   row.Malus,
		}
		for _, code := range sources {
			w := base.Weight(row.Feature, code)
			if w == nil {
				values := []float64{1, 1}
				if code == "M" {
					values = []float64{1, 1e100}
				}
				derived.Weights = append(derived.Weights, extrinsic.SourceWeight{Code: code, Values: values})
				continue
			}
			derived.Weights = append(derived.Weights, extrinsic.SourceWeight{
				Code:   code,
				Values: append([]float64(nil), w.Values...),
			})
		}
		t.Rows = append(t.Rows, derived)
	}
	return t
}
