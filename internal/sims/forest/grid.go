package forest

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"runtime"

	"forest-ca/internal/core"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidSize is returned when a grid is requested with a non-positive
// width or height.
var ErrInvalidSize = errors.New("forest: grid dimensions must be positive")

// RingSize is the number of neighbours sampled around a cell.
const RingSize = 8

// Direction indexes a ring returned by Adjacency.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = [RingSize]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (d Direction) String() string {
	if d < 0 || int(d) >= RingSize {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ringOffsets are subtracted from the centre coordinate. The sign only
// decides which label each neighbour gets; the sampled set is the same.
var ringOffsets = [RingSize][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// Grid is a fixed-size forest stored row-major, with one scratch buffer used
// to build each generation.
type Grid struct {
	w, h int
	cur  []Cell
	nxt  []Cell
}

// New allocates a w×h grid of empty soil.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	total := w * h
	return &Grid{w: w, h: h, cur: make([]Cell, total), nxt: make([]Cell, total)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Cells exposes the live buffer in row-major order. The slice is replaced on
// every step, so callers must not hold on to it across steps.
func (g *Grid) Cells() []Cell { return g.cur }

// InBounds reports whether (i, j) addresses a cell of the grid.
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.w && j >= 0 && j < g.h
}

// At returns the cell at column i, row j. It panics when out of range.
func (g *Grid) At(i, j int) Cell {
	g.mustContain(i, j)
	return g.cur[j*g.w+i]
}

// Set stores c at column i, row j. It panics when out of range.
func (g *Grid) Set(i, j int, c Cell) {
	g.mustContain(i, j)
	g.cur[j*g.w+i] = c
}

// SetKind plants a fresh cell of kind k at (i, j).
func (g *Grid) SetKind(i, j int, k Kind) {
	g.Set(i, j, NewCell(k))
}

func (g *Grid) mustContain(i, j int) {
	if !g.InBounds(i, j) {
		panic(fmt.Sprintf("forest: cell (%d,%d) outside %dx%d grid", i, j, g.w, g.h))
	}
}

// Adjacency returns the eight neighbours of (i, j) clockwise from north.
// Positions off the grid read as empty soil.
func (g *Grid) Adjacency(i, j int) [RingSize]Cell {
	var ring [RingSize]Cell
	for k, off := range ringOffsets {
		x, y := i-off[0], j-off[1]
		if x < 0 || x >= g.w || y < 0 || y >= g.h {
			continue
		}
		ring[k] = g.cur[y*g.w+x]
	}
	return ring
}

// Shade counts mature neighbours of (i, j).
func (g *Grid) Shade(i, j int) int {
	shade := 0
	for _, n := range g.Adjacency(i, j) {
		if n.kind == KindMature {
			shade++
		}
	}
	return shade
}

// Step advances every cell by one generation. Each cell reads its ring from
// the pre-step buffer only; the new generation replaces it once the pass is
// complete.
func (g *Grid) Step(rules Rules, rng Rand) {
	for j := 0; j < g.h; j++ {
		g.reactRow(j, rules, rng)
	}
	g.cur, g.nxt = g.nxt, g.cur
}

// StepParallel advances the grid like Step, spreading rows across up to
// workers goroutines (GOMAXPROCS when workers <= 0). One seed is drawn from
// rng per step and each row draws from its own PCG stream of that seed, so
// the outcome does not depend on the worker count. When ctx is cancelled the
// live buffer is left untouched and the context error is returned.
func (g *Grid) StepParallel(ctx context.Context, rules Rules, rng *core.RNG, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	base := rng.Uint64()

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for j := 0; j < g.h; j++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g.reactRow(j, rules, core.NewRNGStream(base, uint64(j)))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	g.cur, g.nxt = g.nxt, g.cur
	return nil
}

func (g *Grid) reactRow(j int, rules Rules, rng Rand) {
	row := j * g.w
	for i := 0; i < g.w; i++ {
		g.nxt[row+i] = g.cur[row+i].React(g.Adjacency(i, j), rules, rng)
	}
}

// Clone returns an independent copy of the grid, ages included.
func (g *Grid) Clone() *Grid {
	c := &Grid{w: g.w, h: g.h, cur: make([]Cell, len(g.cur)), nxt: make([]Cell, len(g.nxt))}
	copy(c.cur, g.cur)
	return c
}

// Hash fingerprints the dimensions and every cell kind in row-major order.
// Ages do not contribute.
func (g *Grid) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	write := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	write(uint64(g.w))
	write(uint64(g.h))
	for _, c := range g.cur {
		write(c.Hash())
	}
	return d.Sum64()
}

// Equal reports whether o has the same dimensions and the same kind at every
// coordinate.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i := range g.cur {
		if !g.cur[i].Equal(o.cur[i]) {
			return false
		}
	}
	return true
}
