package extrinsic

// SourceDescriptions maps the source codes the predictor understands to
// the kind of evidence they carry. Codes are one or two letters; "RM"
// is a single compound token, not R followed by M.
var SourceDescriptions = map[string]string{
	"M":  "manual annotation",
	"P":  "protein alignment hit",
	"E":  "EST/cDNA alignment hit",
	"C":  "combined evidence",
	"D":  "Dialign alignment",
	"R":  "retroposed gene",
	"RM": "repeat masking",
	"T":  "transMap projection",
	"W":  "wiggle coverage (RNA-Seq)",
}

// KnownSource reports whether code is one the predictor documents.
// Unknown codes still parse; strict validation flags them.
func KnownSource(code string) bool {
	_, ok := SourceDescriptions[code]
	return ok
}

// Features lists the structural feature types in their canonical order.
// The writer emits rows in this order when a table covers only known
// features.
var Features = []string{
	"start",
	"stop",
	"tss",
	"tts",
	"ass",
	"dss",
	"exonpart",
	"exon",
	"intronpart",
	"intron",
	"CDSpart",
	"CDS",
	"UTRpart",
	"UTR",
	"irpart",
	"nonexonpart",
	"genicpart",
}

var featureRank = func() map[string]int {
	m := make(map[string]int, len(Features))
	for i, f := range Features {
		m[f] = i
	}
	return m
}()

// KnownFeature reports whether name is a canonical feature type.
func KnownFeature(name string) bool {
	_, ok := featureRank[name]
	return ok
}

// KnownFlags are the source-parameter flags the predictor understands.
var KnownFlags = map[string]string{
	"individual_liability": "an unsatisfiable hint penalizes only itself, not its whole group",
	"1group1gene":          "all hints of a group must support the same gene",
}
