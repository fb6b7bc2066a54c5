package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values past
// the end of the palette use its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillShadeRGBA tints buf with col, scaling alpha by each cell's shade out of
// maxShade. Unshaded cells stay fully transparent.
func FillShadeRGBA(buf []byte, shade []uint8, maxShade uint8, col color.RGBA) {
	if maxShade == 0 {
		maxShade = 1
	}
	for i, s := range shade {
		base := i * 4
		if s == 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		if s > maxShade {
			s = maxShade
		}
		alpha := uint16(col.A) * uint16(s) / uint16(maxShade)
		// Premultiplied, as ebiten expects.
		buf[base+0] = uint8(uint16(col.R) * alpha / 255)
		buf[base+1] = uint8(uint16(col.G) * alpha / 255)
		buf[base+2] = uint8(uint16(col.B) * alpha / 255)
		buf[base+3] = uint8(alpha)
	}
}
