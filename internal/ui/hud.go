//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"forest-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// statusProvider is implemented by sims that summarise their state in a line.
type statusProvider interface {
	Status() string
}

var (
	colorPanel    = color.RGBA{R: 16, G: 20, B: 16, A: 255}
	colorTitle    = color.RGBA{R: 200, G: 220, B: 200, A: 255}
	colorText     = color.RGBA{R: 220, G: 230, B: 220, A: 255}
	colorMuted    = color.RGBA{R: 150, G: 160, B: 150, A: 255}
	colorButton   = color.RGBA{R: 50, G: 64, B: 52, A: 255}
	colorDisabled = color.RGBA{R: 30, G: 36, B: 32, A: 255}
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	status     string

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
		}
		h.layoutControls()
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes cached values from the simulation and handles clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	if sp, ok := h.sim.(statusProvider); ok {
		h.status = sp.Status()
	}
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(colorPanel)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.sim.Name(), face, panelPadding, panelPadding+headerBaseline, colorTitle)
	if h.status != "" {
		text.Draw(h.panel, h.status, face, panelPadding, panelPadding+headerBaseline+statusSpacing, colorMuted)
	}
	h.drawControls()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			continue
		}
		state.current = parsed
		state.hasValue = true
		if state.control.Type == core.ParamTypeInt {
			state.value = strconv.Itoa(int(parsed))
		} else {
			state.value = strconv.FormatFloat(parsed, 'f', 2, 64)
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.panelOffsetX
	if px < 0 {
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		switch {
		case image.Pt(px, my).In(state.minusRect):
			h.apply(state, -1)
			return
		case image.Pt(px, my).In(state.plusRect):
			h.apply(state, 1)
			return
		}
	}
}

// target returns the value one step away in direction and whether it stays
// inside the control bounds.
func (s *hudControlState) target(direction int) (float64, bool) {
	step := s.control.Step
	if step <= 0 {
		step = 1
	}
	v := s.current + float64(direction)*step
	if s.control.HasMin && v < s.control.Min-1e-9 {
		return s.control.Min, false
	}
	if s.control.HasMax && v > s.control.Max+1e-9 {
		return s.control.Max, false
	}
	return v, true
}

func (h *HUD) apply(state *hudControlState, direction int) {
	v, ok := state.target(direction)
	if !ok {
		return
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil {
			h.intSetter.SetIntParameter(state.control.Key, int(math.Round(v)))
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil {
			h.floatSetter.SetFloatParameter(state.control.Key, v)
		}
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, controlsTop, colorMuted)
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, colorText)

		valueColor := colorText
		if !state.hasValue {
			valueColor = colorMuted
		}
		valueWidth := text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, state.minusRect.Min.X-buttonGap-valueWidth, labelY, valueColor)

		_, minusOK := state.target(-1)
		_, plusOK := state.target(1)
		h.drawButton(state.minusRect, "-", state.hasValue && minusOK)
		h.drawButton(state.plusRect, "+", state.hasValue && plusOK)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg, fg := colorButton, colorText
	if !enabled {
		bg, fg = colorDisabled, colorMuted
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

type hudControlState struct {
	control  core.ParameterControl
	value    string
	current  float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 32
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	statusSpacing  = 16
	labelBaseline  = 21
	controlsTop    = panelPadding + headerBaseline + statusSpacing + 14
)
