//go:build ebiten

package ui

import (
	"image/color"

	"forest-ca/internal/core"
	"forest-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type shadeProvider interface {
	ShadeMap() []uint8
}

var shadeTint = color.RGBA{R: 20, G: 10, B: 60, A: 200}

// Overlay tints cells by how many mature neighbours shade them. Toggle with H.
type Overlay struct {
	sim       core.Sim
	scale     int
	showShade bool
	img       *ebiten.Image
	buf       []byte
}

// NewOverlay constructs an overlay for sim drawn at the given scale.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showShade = !o.showShade
	}
}

// Draw paints the active overlays on top of the simulation view.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.showShade {
		return
	}
	provider, ok := o.sim.(shadeProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	shade := provider.ShadeMap()
	if len(shade) != size.Area() {
		return
	}
	if o.img == nil {
		o.img = ebiten.NewImage(size.W, size.H)
		o.buf = make([]byte, 4*size.Area())
	}
	render.FillShadeRGBA(o.buf, shade, 8, shadeTint)
	o.img.WritePixels(o.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.img, op)
}
