package forest

import (
	"fmt"
	"strings"
)

// Census counts cells per kind.
type Census struct {
	Dead    int
	Empty   int
	Sprout  int
	Sapling int
	Pole    int
	Mature  int
	Other   int
}

// Census tallies the live buffer.
func (g *Grid) Census() Census {
	var c Census
	for _, cell := range g.cur {
		c.add(cell.kind)
	}
	return c
}

func (c *Census) add(k Kind) {
	switch k {
	case KindDead:
		c.Dead++
	case KindEmpty:
		c.Empty++
	case KindSprout:
		c.Sprout++
	case KindSapling:
		c.Sapling++
	case KindPole:
		c.Pole++
	case KindMature:
		c.Mature++
	default:
		c.Other++
	}
}

// Count returns the tally for one kind.
func (c Census) Count(k Kind) int {
	switch k {
	case KindDead:
		return c.Dead
	case KindEmpty:
		return c.Empty
	case KindSprout:
		return c.Sprout
	case KindSapling:
		return c.Sapling
	case KindPole:
		return c.Pole
	case KindMature:
		return c.Mature
	default:
		return c.Other
	}
}

// Living is the number of cells in a growth stage.
func (c Census) Living() int { return c.Sprout + c.Sapling + c.Pole + c.Mature }

// Total is the number of cells counted.
func (c Census) Total() int { return c.Dead + c.Empty + c.Living() + c.Other }

func (c Census) String() string {
	parts := make([]string, 0, len(Kinds))
	for _, k := range Kinds {
		parts = append(parts, fmt.Sprintf("%s=%d", k, c.Count(k)))
	}
	return strings.Join(parts, " ")
}
