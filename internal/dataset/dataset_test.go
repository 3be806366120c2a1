package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewRecordAssignsDistinctIDs(t *testing.T) {
	a := NewRecord(map[string]string{"species": "Adelie"})
	b := NewRecord(map[string]string{"species": "Adelie"})
	if a.ID == b.ID {
		t.Fatalf("expected distinct IDs, both got %d", a.ID)
	}
}

func TestCloneFreshIdentitySameFields(t *testing.T) {
	orig := NewRecord(map[string]string{"species": "Gentoo", "body_mass_g": "5000"})
	clone := orig.Clone()

	if clone.ID == orig.ID {
		t.Fatalf("clone shares identity %d with original", orig.ID)
	}
	if len(clone.Fields) != len(orig.Fields) {
		t.Fatalf("clone has %d fields, want %d", len(clone.Fields), len(orig.Fields))
	}
	for k, v := range orig.Fields {
		if clone.Fields[k] != v {
			t.Errorf("field %q = %q, want %q", k, clone.Fields[k], v)
		}
	}

	// Mutating the clone must not touch the original.
	clone.Fields["species"] = "Chinstrap"
	if orig.Get("species") != "Gentoo" {
		t.Errorf("original mutated through clone: species = %q", orig.Get("species"))
	}
}

func TestLookupFirstNonEmptyAlias(t *testing.T) {
	r := NewRecord(map[string]string{
		"species": "",
		"Species": "Adelie",
		"island":  "Biscoe",
	})
	if got := r.Lookup("species", "Species"); got != "Adelie" {
		t.Errorf("Lookup(species, Species) = %q, want Adelie", got)
	}
	if got := r.Lookup("island", "Island"); got != "Biscoe" {
		t.Errorf("Lookup(island, Island) = %q, want Biscoe", got)
	}
	if got := r.Lookup("sex", "Sex"); got != "" {
		t.Errorf("Lookup on missing aliases = %q, want empty", got)
	}
}

func TestDatasetNewPreservesOrder(t *testing.T) {
	rows := []map[string]string{
		{"species": "Adelie"},
		{"species": "Gentoo"},
		{"species": "Chinstrap"},
	}
	ds := New(rows)
	if len(ds) != 3 {
		t.Fatalf("len = %d, want 3", len(ds))
	}
	for i, want := range []string{"Adelie", "Gentoo", "Chinstrap"} {
		if got := ds[i].Get("species"); got != want {
			t.Errorf("row %d species = %q, want %q", i, got, want)
		}
	}
}

func TestCopySharesIdentities(t *testing.T) {
	ds := New([]map[string]string{{"species": "Adelie"}, {"species": "Gentoo"}})
	cp := ds.Copy()
	if len(cp) != len(ds) {
		t.Fatalf("copy len = %d, want %d", len(cp), len(ds))
	}
	for i := range ds {
		if cp[i].ID != ds[i].ID {
			t.Errorf("record %d: copy ID %d != original ID %d", i, cp[i].ID, ds[i].ID)
		}
	}
	// Reordering the copy must not disturb the original.
	cp[0], cp[1] = cp[1], cp[0]
	if ds[0].Get("species") != "Adelie" {
		t.Errorf("original reordered through copy")
	}
}

func TestHasColumnAndIDSet(t *testing.T) {
	ds := New([]map[string]string{{"species": "Adelie", "body_mass_g": "3750"}})
	if !ds.HasColumn("species") {
		t.Errorf("HasColumn(species) = false, want true")
	}
	if ds.HasColumn("beak_color") {
		t.Errorf("HasColumn(beak_color) = true, want false")
	}
	if (Dataset{}).HasColumn("species") {
		t.Errorf("empty dataset HasColumn = true, want false")
	}

	set := ds.IDSet()
	if len(set) != 1 || !set[ds[0].ID] {
		t.Errorf("IDSet = %v, want {%d}", set, ds[0].ID)
	}
}

func TestDefaultSchemaClassify(t *testing.T) {
	s := DefaultSchema()
	tests := []struct {
		column string
		want   Kind
	}{
		{"body_mass_g", Numeric},
		{"Body Mass (g)", Numeric},
		{"flipper_length_mm", Numeric},
		{"species", Categorical},
		{"Island", Categorical},
		{"beak_color", Categorical}, // unknown columns are opaque
	}
	for _, tt := range tests {
		if got := s.Classify(tt.column); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.column, got, tt.want)
		}
	}
	if s.Known("beak_color") {
		t.Errorf("Known(beak_color) = true, want false")
	}
	if !s.Known("sex") {
		t.Errorf("Known(sex) = false, want true")
	}
}

func TestLoadSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	content := `numeric:
  - weight_kg
categorical:
  - colony
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write schema file: %v", err)
	}

	s, err := LoadSchema(path)
	if err != nil {
		t.Fatalf("LoadSchema: %v", err)
	}
	if !s.IsNumeric("weight_kg") {
		t.Errorf("weight_kg not numeric")
	}
	if s.Classify("colony") != Categorical {
		t.Errorf("colony not categorical")
	}
	if s.IsNumeric("body_mass_g") {
		t.Errorf("override schema should not carry defaults")
	}
}

func TestLoadSchemaErrors(t *testing.T) {
	if _, err := LoadSchema(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("numeric: {not: a list}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadSchema(path); err == nil {
		t.Fatalf("expected error for malformed schema")
	}
}
