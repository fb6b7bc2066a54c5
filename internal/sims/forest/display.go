package forest

import "image/color"

// Display values are kind+1 so that dead cells map to palette slot 0.
const displayOffset = -int(KindDead)

var forestPalette = []color.RGBA{
	{R: 90, G: 70, B: 60, A: 255},   // dead
	{R: 38, G: 30, B: 22, A: 255},   // soil
	{R: 150, G: 200, B: 90, A: 255}, // sprout
	{R: 90, G: 170, B: 70, A: 255},  // sapling
	{R: 50, G: 130, B: 55, A: 255},  // pole
	{R: 25, G: 85, B: 40, A: 255},   // mature
}

// Palette exposes the colors indexed by the display buffer.
func (w *World) Palette() []color.RGBA {
	return forestPalette
}

// DisplayValue encodes a kind as a palette index. Unknown kinds render as soil.
func DisplayValue(k Kind) uint8 {
	if k < KindDead || k > KindMature {
		k = KindEmpty
	}
	return uint8(int(k) + displayOffset)
}

func (w *World) rebuildDisplay() {
	out := w.display.Cells()
	for i, c := range w.grid.Cells() {
		out[i] = DisplayValue(c.kind)
	}
}
