package forest

import (
	"context"
	"fmt"

	"forest-ca/internal/core"
)

// World adapts a Grid to the core.Sim contract: it owns the seeded random
// source, plants the initial forest and keeps a palette-indexed display
// buffer in sync with the grid.
type World struct {
	cfg   Config
	grid  *Grid
	rng   *core.RNG
	seed  int64
	steps int

	display *core.ByteGrid
	shade   *core.ByteGrid
}

// NewWorld returns a canonical-variant world of the given size using defaults.
func NewWorld(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from cfg. The grid starts as bare
// soil until Reset plants it.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	w := &World{
		cfg:     cfg,
		grid:    grid,
		rng:     core.NewRNG(cfg.Seed),
		display: core.NewByteGrid(cfg.Width, cfg.Height),
		shade:   core.NewByteGrid(cfg.Width, cfg.Height),
	}
	w.rebuildDisplay()
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string {
	if w.cfg.Variant == VariantB {
		return "forest-b"
	}
	return "forest"
}

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Cells exposes the display buffer: one palette index per cell.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Grid exposes the underlying automaton.
func (w *World) Grid() *Grid { return w.grid }

// Config returns the active configuration, including HUD edits.
func (w *World) Config() Config { return w.cfg }

// Rules returns the thresholds currently applied by Step.
func (w *World) Rules() Rules { return w.cfg.Params.Rules }

// Seed returns the seed the last Reset planted with.
func (w *World) Seed() int64 { return w.seed }

// Steps returns the number of generations since the last Reset.
func (w *World) Steps() int { return w.steps }

// Census tallies the current generation.
func (w *World) Census() Census { return w.grid.Census() }

// Reset replants the forest. A zero seed reuses the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.seed = effective
	w.steps = 0

	p := w.cfg.Params
	cells := w.grid.Cells()
	for i := range cells {
		roll := w.rng.Float64()
		switch {
		case roll < p.SeedMatureChance:
			cells[i] = NewCell(KindMature)
		case roll < p.SeedMatureChance+p.SeedSproutChance:
			cells[i] = NewCell(KindSprout)
		case roll < p.SeedMatureChance+p.SeedSproutChance+p.SeedDeadChance:
			cells[i] = NewCell(KindDead)
		default:
			cells[i] = NewCell(KindEmpty)
		}
	}
	w.rebuildDisplay()
}

// Step advances the forest by one generation.
func (w *World) Step() {
	rules := w.cfg.Params.Rules
	if w.cfg.Workers > 1 {
		// Background is never cancelled, so the pass always completes.
		_ = w.grid.StepParallel(context.Background(), rules, w.rng, w.cfg.Workers)
	} else {
		w.grid.Step(rules, w.rng)
	}
	w.steps++
	w.rebuildDisplay()
}

// ShadeMap returns the number of mature neighbours of every cell, row-major.
// It is recomputed from the live grid on every call.
func (w *World) ShadeMap() []uint8 {
	width, height := w.grid.Width(), w.grid.Height()
	out := w.shade.Cells()
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			out[w.shade.Index(i, j)] = uint8(w.grid.Shade(i, j))
		}
	}
	return out
}

func init() {
	core.Register("forest", factoryFor(VariantA))
	core.Register("forest-b", factoryFor(VariantB))
}

func factoryFor(v Variant) core.Factory {
	return func(cfg map[string]string) core.Sim {
		merged := map[string]string{"variant": string(v)}
		for k, val := range cfg {
			if k == "variant" {
				continue
			}
			merged[k] = val
		}
		world, err := NewWithConfig(FromMap(merged))
		if err != nil {
			// FromMap only yields positive sizes and known variants.
			panic(err)
		}
		world.Reset(0)
		return world
	}
}

// Status summarises the generation for status lines.
func (w *World) Status() string {
	c := w.grid.Census()
	return fmt.Sprintf("step %d  living %d  mature %d  dead %d", w.steps, c.Living(), c.Mature, c.Dead)
}
