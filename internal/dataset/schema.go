package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Kind classifies a column for comparison and generation purposes.
type Kind int

const (
	// Categorical columns compare as raw text. Unknown columns are
	// treated as categorical/opaque.
	Categorical Kind = iota
	// Numeric columns parse to float64; parse failure coerces to +Inf.
	Numeric
)

// Schema is the fixed partition of known column names into numeric and
// categorical sets. Classification is declared, not inferred at runtime.
type Schema struct {
	Numeric     map[string]bool
	Categorical map[string]bool
}

// schemaFile is the YAML shape for an on-disk schema override.
type schemaFile struct {
	Numeric     []string `yaml:"numeric"`
	Categorical []string `yaml:"categorical"`
}

// DefaultSchema covers the penguin fieldset in both raw-header and
// snake_case spellings, matching the cleaned and uncleaned CSV variants.
func DefaultSchema() Schema {
	return Schema{
		Numeric: toSet(
			"Flipper Length (mm)", "Culmen Length (mm)", "Culmen Depth (mm)", "Body Mass (g)",
			"flipper_length_mm", "culmen_length_mm", "culmen_depth_mm", "body_mass_g",
		),
		Categorical: toSet(
			"Species", "Island", "Sex",
			"species", "island", "sex",
		),
	}
}

// LoadSchema reads a YAML schema override from path.
func LoadSchema(path string) (Schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("read schema: %w", err)
	}
	var sf schemaFile
	if err := yaml.Unmarshal(b, &sf); err != nil {
		return Schema{}, fmt.Errorf("parse schema: %w", err)
	}
	return Schema{
		Numeric:     toSet(sf.Numeric...),
		Categorical: toSet(sf.Categorical...),
	}, nil
}

// Classify returns the declared kind of a column. Columns absent from both
// sets are opaque and therefore categorical.
func (s Schema) Classify(column string) Kind {
	if s.Numeric[column] {
		return Numeric
	}
	return Categorical
}

// IsNumeric reports whether the column is in the declared numeric set.
func (s Schema) IsNumeric(column string) bool { return s.Numeric[column] }

// Known reports whether the column belongs to either declared set.
func (s Schema) Known(column string) bool {
	return s.Numeric[column] || s.Categorical[column]
}

func toSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
