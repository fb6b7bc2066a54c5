package forest

import "strconv"

// Kind identifies the growth stage held by a cell.
type Kind int8

const (
	KindDead    Kind = -1
	KindEmpty   Kind = 0
	KindSprout  Kind = 1
	KindSapling Kind = 2
	KindPole    Kind = 3
	KindMature  Kind = 4
)

// Kinds lists every recognised kind, dead first.
var Kinds = [...]Kind{KindDead, KindEmpty, KindSprout, KindSapling, KindPole, KindMature}

func (k Kind) String() string {
	switch k {
	case KindDead:
		return "dead"
	case KindEmpty:
		return "empty"
	case KindSprout:
		return "sprout"
	case KindSapling:
		return "sapling"
	case KindPole:
		return "pole"
	case KindMature:
		return "mature"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Growing reports whether k is one of the growth stages 1 through 4.
func (k Kind) Growing() bool { return k >= KindSprout && k <= KindMature }

// Cell is a single forest tile. Cells are values: transitions return a new
// Cell and never touch the receiver.
//
// Identity is the kind alone. Two cells of the same kind compare equal and
// hash the same whatever their ages.
type Cell struct {
	kind Kind
	age  int
}

// NewCell returns a fresh cell of kind k with age 0.
func NewCell(k Kind) Cell { return Cell{kind: k} }

// NewCellAged returns a cell of kind k that has already held its kind for age
// steps. Negative ages are clamped to 0.
func NewCellAged(k Kind, age int) Cell {
	if age < 0 {
		age = 0
	}
	return Cell{kind: k, age: age}
}

// Kind returns the growth stage of the cell.
func (c Cell) Kind() Kind { return c.kind }

// Age returns the number of consecutive steps the cell kept its kind.
func (c Cell) Age() int { return c.age }

// SetKind assigns a new kind and restarts the age counter, even when k equals
// the current kind.
func (c *Cell) SetKind(k Kind) {
	c.kind = k
	c.age = 0
}

// Equal compares kinds only.
func (c Cell) Equal(o Cell) bool { return c.kind == o.kind }

// Hash returns the kind as a hash value; age never contributes.
func (c Cell) Hash() uint64 { return uint64(int64(c.kind)) }

// Next returns the successor in the growth cycle, ignoring neighbours:
// 1→2→3→4, with 0, 4 and -1 as fixed points. Unknown kinds fall back to empty
// soil. The result is always a fresh cell.
func (c Cell) Next() Cell {
	switch c.kind {
	case KindSprout:
		return NewCell(KindSapling)
	case KindSapling:
		return NewCell(KindPole)
	case KindPole, KindMature:
		return NewCell(KindMature)
	case KindDead:
		return NewCell(KindDead)
	default:
		return NewCell(KindEmpty)
	}
}

// Rand is the random source consulted by React. *core.RNG and *rand.Rand both
// satisfy it.
type Rand interface {
	Float64() float64
}

// React computes the cell's next state from its ring of eight neighbours.
// rng is only drawn from when an empty cell sits in shade.
func (c Cell) React(ring [RingSize]Cell, rules Rules, rng Rand) Cell {
	survived := Cell{kind: c.kind, age: c.age + 1}

	shade := 0
	nearDead := false
	for _, n := range ring {
		switch n.kind {
		case KindMature:
			shade++
		case KindDead:
			nearDead = true
		}
	}

	if rules.LethalDead && c.kind > KindEmpty && nearDead {
		return NewCell(KindEmpty)
	}

	switch {
	case c.kind == KindEmpty:
		if shade == 0 {
			return survived
		}
		if rng.Float64() < rules.SproutChance {
			return NewCell(KindSprout)
		}
		return survived
	case c.kind == KindDead:
		if rules.RegrowShade >= 0 && shade <= rules.RegrowShade {
			return NewCell(KindSapling)
		}
		return c.Next()
	case c.kind.Growing():
		if shade >= rules.DeathShade || (rules.DeathAge > 0 && survived.age >= rules.DeathAge) {
			return NewCell(KindDead)
		}
		if shade >= rules.StallShade {
			return survived
		}
		return c.Next()
	default:
		return c.Next()
	}
}
