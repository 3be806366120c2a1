// Package engine implements the record-processing core: typed value
// coercion, filtering, descriptive statistics, five comparison sorts,
// dataset augmentation, random sampling, and two combinatorial search
// procedures over small datasets.
//
// Every operation is synchronous, runs to completion, and returns a new
// dataset or result without mutating its input. The engine holds no
// mutable state across calls beyond its injected random source.
package engine

import (
	"math/rand"
	"time"

	"github.com/pygoscelis/penguin-cli/internal/dataset"
)

// Column aliases: datasets exist in raw-header and snake_case variants,
// and the engine must resolve species and body mass in either.
var (
	speciesColumns = []string{"species", "Species"}
	massColumns    = []string{"body_mass_g", "Body Mass (g)"}
)

// Engine bundles the column schema with an injectable random source.
// All methods are re-entrant; the random source is only touched by
// augmentation and sampling.
type Engine struct {
	schema dataset.Schema
	rng    *rand.Rand
}

// New builds an engine. A nil rng gets a time-seeded source; tests pass
// a fixed-seed rand.New to make sampling and augmentation deterministic.
func New(schema dataset.Schema, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{schema: schema, rng: rng}
}

// Schema exposes the engine's column classification.
func (e *Engine) Schema() dataset.Schema { return e.schema }
