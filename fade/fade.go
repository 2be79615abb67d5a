// Package fade draws the timed black overlay that masks scene loads and
// time travel.
package fade

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultFrames is the fade duration used when config doesn't override it.
const DefaultFrames = 30

type phase int

const (
	idle phase = iota
	fadingOut
	fadingIn
)

// Controller runs fade-to-black and fade-from-black sequences as explicit
// per-frame steps. Alpha moves from 0 to 1 over the configured frame count
// on fade-out, and back on fade-in. While disabled, starting a fade is a
// no-op and Done always reports true so callers never stall on it.
type Controller struct {
	frames  int
	enabled bool

	phase phase
	timer int
	alpha float64

	overlay *ebiten.Image
}

// New returns an enabled controller fading over the given frame count.
func New(frames int) *Controller {
	if frames <= 0 {
		frames = DefaultFrames
	}
	return &Controller{frames: frames, enabled: true}
}

func (c *Controller) SetEnabled(enabled bool) {
	c.enabled = enabled
	if !enabled {
		c.phase = idle
		c.timer = 0
		c.alpha = 0
	}
}

func (c *Controller) Enabled() bool { return c.enabled }

// StartFadeOut begins darkening the screen.
func (c *Controller) StartFadeOut() {
	if !c.enabled {
		return
	}
	c.phase = fadingOut
	c.timer = c.frames
}

// StartFadeIn begins revealing the screen from black.
func (c *Controller) StartFadeIn() {
	if !c.enabled {
		return
	}
	c.phase = fadingIn
	c.timer = c.frames
	c.alpha = 1
}

// Step advances the active fade by one frame.
func (c *Controller) Step() {
	if c.phase == idle {
		return
	}
	if c.timer > 0 {
		c.timer--
	}
	switch c.phase {
	case fadingOut:
		c.alpha = 1 - float64(c.timer)/float64(c.frames)
		if c.timer <= 0 {
			c.alpha = 1
			c.phase = idle
		}
	case fadingIn:
		c.alpha = float64(c.timer) / float64(c.frames)
		if c.timer <= 0 {
			c.alpha = 0
			c.phase = idle
		}
	}
}

// Done reports whether no fade is mid-flight.
func (c *Controller) Done() bool { return c.phase == idle }

// Alpha is the current overlay opacity in [0, 1].
func (c *Controller) Alpha() float64 { return c.alpha }

// Draw fills the screen with black scaled by the current alpha.
func (c *Controller) Draw(screen *ebiten.Image) {
	if c.alpha <= 0 {
		return
	}
	if c.overlay == nil {
		c.overlay = ebiten.NewImage(1, 1)
		c.overlay.Fill(color.Black)
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.ColorScale.ScaleAlpha(float32(c.alpha))
	screen.DrawImage(c.overlay, op)
}
