package engine

import (
	"errors"
	"testing"

	"github.com/pygoscelis/penguin-cli/internal/dataset"
)

func TestFilterNumericStrictlyGreater(t *testing.T) {
	e := testEngine(1)
	ds := fourPenguins()

	got, err := e.Filter(ds, "body_mass_g", "4000")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 1 || got[0].Get("species") != "Gentoo" {
		t.Fatalf("filter > 4000 = %v, want the single Gentoo row", masses(t, got))
	}

	// Boundary is strict: a row equal to the threshold is excluded.
	got, err = e.Filter(ds, "body_mass_g", "3750")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("filter > 3750 kept %d rows, want 1", len(got))
	}
}

func TestFilterNumericDropsUnparsableCells(t *testing.T) {
	e := testEngine(1)
	ds := fourPenguins()
	ds = append(ds, dataset.NewRecord(penguin("Adelie", "Biscoe", "40.0", "18.0", "190", "??", "MALE")))

	got, err := e.Filter(ds, "body_mass_g", "0")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("filter kept %d rows, want 4 (unparsable row dropped)", len(got))
	}
}

func TestFilterNonNumericValueIsSilentNoop(t *testing.T) {
	e := testEngine(1)
	ds := fourPenguins()

	got, err := e.Filter(ds, "body_mass_g", "heavy")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != len(ds) {
		t.Fatalf("noop filter changed length: %d != %d", len(got), len(ds))
	}
	for i := range ds {
		if got[i].ID != ds[i].ID {
			t.Fatalf("noop filter reordered rows")
		}
	}
}

func TestFilterCategoricalExactMatch(t *testing.T) {
	e := testEngine(1)
	ds := fourPenguins()

	got, err := e.Filter(ds, "species", "Adelie")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("species filter kept %d rows, want 2", len(got))
	}

	// Case-sensitive: lowercase does not match.
	got, err = e.Filter(ds, "species", "adelie")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("lowercase species matched %d rows, want 0", len(got))
	}
}

func TestFilterPreservesRelativeOrder(t *testing.T) {
	e := testEngine(1)
	ds := fourPenguins()

	got, err := e.Filter(ds, "body_mass_g", "3000")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	want := []string{"3750", "5000", "3200", "3750"}
	for i, m := range masses(t, got) {
		if m != want[i] {
			t.Fatalf("order = %v, want %v", masses(t, got), want)
		}
	}
}

func TestFilterErrors(t *testing.T) {
	e := testEngine(1)

	if _, err := e.Filter(nil, "species", "Adelie"); !errors.Is(err, dataset.ErrNotLoaded) {
		t.Fatalf("empty: err = %v, want ErrNotLoaded", err)
	}

	var colErr *dataset.InvalidColumnError
	if _, err := e.Filter(fourPenguins(), "wingspan", "1"); !errors.As(err, &colErr) {
		t.Fatalf("unknown column: err = %v, want InvalidColumnError", err)
	}
	if colErr.Column != "wingspan" {
		t.Fatalf("column in error = %q, want wingspan", colErr.Column)
	}
}
