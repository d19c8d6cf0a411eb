package profile

import (
	"reflect"
	"testing"

	"github.com/seqweaver/hintcfg/pkg/extrinsic"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{"default", "rnaseq", "transmap", "full"} {
		if _, err := DefaultRegistry.Get(name); err != nil {
			t.Errorf("Built-in profile %s not registered: %v", name, err)
		}
	}
}

func TestBuiltinsAreValid(t *testing.T) {
	for _, info := range DefaultRegistry.List() {
		table, err := DefaultRegistry.Get(info.Name)
		if err != nil {
			t.Fatalf("Failed to get profile %s: %v", info.Name, err)
		}
		if err := table.Validate(); err != nil {
			t.Errorf("Profile %s is invalid: %v", info.Name, err)
		}
		if len(table.Rows) != len(extrinsic.Features) {
			t.Errorf("Profile %s covers %d features, want %d", info.Name, len(table.Rows), len(extrinsic.Features))
		}
		if len(table.Lint()) != 0 {
			t.Errorf("Profile %s has lint findings: %v", info.Name, table.Lint())
		}
	}
}

func TestTransmapProfileWeights(t *testing.T) {
	table, err := DefaultRegistry.Get("transmap")
	if err != nil {
		t.Fatalf("Failed to get transmap profile: %v", err)
	}

	w := table.Weight("exonpart", "T")
	if w == nil {
		t.Fatal("transmap profile has no exonpart T tuple")
	}
	want := []float64{2, 1.5, 10, 1e100}
	if !reflect.DeepEqual(w.Values, want) {
		t.Errorf("Expected exonpart T tuple %v, got %v", want, w.Values)
	}

	ww := table.Weight("exonpart", "W")
	if ww == nil || ww.Malus() != 1.002 {
		t.Errorf("Expected exonpart W malus slot 1.002, got %+v", ww)
	}

	m := table.Weight("start", "M")
	if m == nil || m.Malus() != 1e100 {
		t.Errorf("Expected manual start bonus 1e+100, got %+v", m)
	}
}

func TestProfilesRoundTrip(t *testing.T) {
	for _, info := range DefaultRegistry.List() {
		table, err := DefaultRegistry.Get(info.Name)
		if err != nil {
			t.Fatalf("Failed to get profile %s: %v", info.Name, err)
		}
		reparsed, err := extrinsic.ParseFile(writeTemp(t, table))
		if err != nil {
			t.Fatalf("Profile %s does not reparse: %v", info.Name, err)
		}
		if !reflect.DeepEqual(table.Sources, reparsed.Sources) {
			t.Errorf("Profile %s source order changed: %v vs %v", info.Name, table.Sources, reparsed.Sources)
		}
		if len(reparsed.Rows) != len(table.Rows) {
			t.Errorf("Profile %s row count changed: %d vs %d", info.Name, len(table.Rows), len(reparsed.Rows))
		}
	}
}

func writeTemp(t *testing.T, table *extrinsic.Table) string {
	t.Helper()
	path := t.TempDir() + "/extrinsic.cfg"
	if err := table.WriteFile(path); err != nil {
		t.Fatalf("Failed to write table: %v", err)
	}
	return path
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	factory := func() *extrinsic.Table { return &extrinsic.Table{} }

	if err := r.Register("dup", "first", factory); err != nil {
		t.Fatalf("First registration failed: %v", err)
	}
	if err := r.Register("dup", "second", factory); err == nil {
		t.Error("Expected an error registering the same name twice")
	}
}

func TestGetUnknownProfile(t *testing.T) {
	if _, err := NewRegistry().Get("nope"); err == nil {
		t.Error("Expected an error for an unknown profile")
	}
}

func TestWithSources(t *testing.T) {
	base, err := DefaultRegistry.Get("transmap")
	if err != nil {
		t.Fatalf("Failed to get transmap profile: %v", err)
	}

	derived := WithSources(base, []string{"M", "W", "P"})
	if err := derived.Validate(); err != nil {
		t.Fatalf("Derived table is invalid: %v", err)
	}

	want := []string{"M", "W", "P"}
	if !reflect.DeepEqual(derived.Sources, want) {
		t.Errorf("Expected sources %v, got %v", want, derived.Sources)
	}

	// Carried over from the base.
	if w := derived.Weight("exonpart", "W"); w == nil || w.Malus() != 1.002 {
		t.Errorf("Expected exonpart W tuple carried over, got %+v", w)
	}
	// P is new to the base, so it gets the neutral tuple.
	if w := derived.Weight("exonpart", "P"); w == nil || w.Bonus() != 1 || w.Malus() != 1 {
		t.Errorf("Expected neutral tuple for new source P, got %+v", w)
	}
	// Flags for dropped sources go away.
	for _, p := range derived.Parameters {
		if p.Code == "E" || p.Code == "T" {
			t.Errorf("Parameter for dropped source survived: %+v", p)
		}
	}
}
