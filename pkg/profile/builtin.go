package profile

import "github.com/seqweaver/hintcfg/pkg/extrinsic"

func init() {
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(DefaultRegistry.Register("default", "manual, protein, EST, combined and Dialign evidence", defaultProfile))
	must(DefaultRegistry.Register("rnaseq", "RNA-Seq coverage plus EST alignments and repeat hints", rnaseqProfile))
	must(DefaultRegistry.Register("transmap", "transMap projections layered over RNA-Seq evidence", transmapProfile))
	must(DefaultRegistry.Register("full", "every documented evidence source, neutral weights", fullProfile))
}

// tuples maps feature -> source -> weight tuple. Features or sources
// absent from the map fall back to the profile defaults.
type tuples map[string]map[string][]float64

// leading maps feature -> the two leading numeric fields of its row.
type leading map[string][2]float64

// build assembles a full-coverage table: one row per canonical feature,
// one tuple per source. Manual hints always carry the huge 1e+100
// bonus; everything else defaults to neutral (1 1) unless overridden.
func build(sources []string, params []extrinsic.SourceParameter, lead leading, tt tuples) *extrinsic.Table {
	t := &extrinsic.Table{Sources: sources, Parameters: params}
	for _, feature := range extrinsic.Features {
		row := extrinsic.FeatureRow{Feature: feature, Bonus: 1, Malus: 1}
		if l, ok := lead[feature]; ok {
			row.Bonus, row.Malus = l[0], l[1]
		}
		for _, code := range sources {
			values := []float64{1, 1}
			if code == "M" {
				values = []float64{1, 1e100}
			}
			if ft, ok := tt[feature]; ok {
				if v, ok := ft[code]; ok {
					values = append([]float64(nil), v...)
				}
			}
			row.Weights = append(row.Weights, extrinsic.SourceWeight{Code: code, Values: values})
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// softMalus are the leading fields used whenever partial hints cover a
// feature: a sub-unity malus so unsupported stretches cost a little.
var softMalus = leading{
	"exonpart":   {1, 0.992},
	"intronpart": {1, 0.985},
	"CDSpart":    {1, 0.985},
	"UTRpart":    {1, 0.985},
	"intron":     {1, 0.34},
}

func defaultProfile() *extrinsic.Table {
	return build(
		[]string{"M", "P", "E", "C", "D"},
		nil,
		softMalus,
		tuples{
			"exon":   {"P": {1e3, 1}, "E": {1e4, 1}},
			"intron": {"E": {1e6, 1}},
			"start":  {"P": {100, 1}},
			"stop":   {"P": {100, 1}},
		},
	)
}

func rnaseqProfile() *extrinsic.Table {
	return build(
		[]string{"M", "RM", "E", "W"},
		[]extrinsic.SourceParameter{{Code: "E", Flag: "individual_liability"}},
		softMalus,
		tuples{
			"exonpart":    {"W": {1, 1.002}},
			"intron":      {"E": {1e6, 1}, "W": {1e3, 1}},
			"nonexonpart": {"RM": {1, 1.15}},
		},
	)
}

func transmapProfile() *extrinsic.Table {
	return build(
		[]string{"M", "RM", "E", "W", "T"},
		[]extrinsic.SourceParameter{
			{Code: "E", Flag: "individual_liability"},
			{Code: "T", Flag: "1group1gene"},
		},
		softMalus,
		tuples{
			"exonpart":    {"W": {1, 1.002}, "T": {2, 1.5, 10, 1e100}},
			"intronpart":  {"T": {2, 1.5, 10, 1e100}},
			"CDSpart":     {"T": {2, 1.5, 10, 1e100}},
			"UTRpart":     {"T": {2, 1.5, 10, 1e100}},
			"exon":        {"T": {1e4, 1}},
			"intron":      {"E": {1e6, 1}, "W": {1e3, 1}, "T": {1e5, 1}},
			"start":       {"T": {1e3, 1}},
			"stop":        {"T": {1e3, 1}},
			"tss":         {"T": {100, 1}},
			"tts":         {"T": {100, 1}},
			"nonexonpart": {"RM": {1, 1.15}},
		},
	)
}

func fullProfile() *extrinsic.Table {
	return build(
		[]string{"M", "P", "E", "C", "D", "R", "RM", "T", "W"},
		nil,
		softMalus,
		tuples{
			"nonexonpart": {"RM": {1, 1.15}},
		},
	)
}
