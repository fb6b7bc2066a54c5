package forest

import "strings"

// Symbol maps a cell to its ASCII glyph.
func Symbol(c Cell) rune {
	switch c.kind {
	case KindSprout:
		return '.'
	case KindSapling:
		return 'o'
	case KindPole:
		return 'O'
	case KindMature:
		return '@'
	case KindDead:
		return 'X'
	default:
		return ' '
	}
}

// Block maps growth stages to shaded block glyphs; everything else is blank.
func Block(c Cell) rune {
	switch c.kind {
	case KindSprout:
		return '░'
	case KindSapling:
		return '▒'
	case KindPole:
		return '▓'
	case KindMature:
		return '█'
	default:
		return ' '
	}
}

// ToText renders one line per row, top row first, each terminated by '\n'.
// A nil symbol uses Symbol.
func (g *Grid) ToText(symbol func(Cell) rune) string {
	if symbol == nil {
		symbol = Symbol
	}
	var b strings.Builder
	b.Grow(g.h * (g.w + 1))
	for j := 0; j < g.h; j++ {
		row := g.cur[j*g.w : (j+1)*g.w]
		for _, c := range row {
			b.WriteRune(symbol(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the grid with the ASCII glyphs.
func (g *Grid) String() string { return g.ToText(nil) }
