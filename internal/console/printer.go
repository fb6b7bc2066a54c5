// Package console prints forest generations as text frames.
package console

import (
	"fmt"
	"io"
	"os"

	"forest-ca/internal/sims/forest"

	"github.com/mattn/go-isatty"
)

const (
	ansiHome  = "\x1b[H"
	ansiClear = "\x1b[2J"
)

// Glyphs names a kind→rune projection.
type Glyphs string

const (
	GlyphsASCII Glyphs = "ascii"
	GlyphsBlock Glyphs = "block"
)

// SymbolFunc returns the projection for g, defaulting to ASCII.
func (g Glyphs) SymbolFunc() func(forest.Cell) rune {
	if g == GlyphsBlock {
		return forest.Block
	}
	return forest.Symbol
}

// Printer writes frames to an output. On a terminal each frame redraws in
// place; otherwise frames are appended with a header line so the stream can
// be piped into a file.
type Printer struct {
	out         io.Writer
	interactive bool
	symbol      func(forest.Cell) rune
	frames      int
}

// NewPrinter returns a printer for out. Interactive mode is enabled when out is
// an *os.File attached to a terminal.
func NewPrinter(out io.Writer, glyphs Glyphs) *Printer {
	return &Printer{out: out, interactive: IsTerminal(out), symbol: glyphs.SymbolFunc()}
}

// IsTerminal reports whether w is a terminal (including Cygwin/MSYS ptys).
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Interactive reports whether frames redraw in place.
func (p *Printer) Interactive() bool { return p.interactive }

// Frame writes one generation with a status line.
func (p *Printer) Frame(step int, g *forest.Grid, census forest.Census) error {
	var header string
	if p.interactive {
		header = ansiHome
		if p.frames == 0 {
			header = ansiClear + ansiHome
		}
	}
	p.frames++
	_, err := fmt.Fprintf(p.out, "%s-- step %d -- %s\n%s", header, step, census, g.ToText(p.symbol))
	return err
}
